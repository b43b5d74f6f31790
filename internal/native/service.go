package native

import (
	"errors"
	"fmt"
)

// CallbackFunc turns the interceptor into a procedure pointer the OS can
// call, e.g. windows.NewCallback.
type CallbackFunc func(fn func(hwnd, msg, wParam, lParam uintptr) uintptr) uintptr

// Service owns the subclass registry and the interceptor for the process.
// The OS callback carries no per-window context, so the procedure pointer is
// bound to one Service and looks windows up in its registry.
type Service struct {
	sys         System
	registry    *Registry
	interceptor *Interceptor
	styles      Styles
}

// NewService builds a service over sys. The interceptor procedure is
// created once through callback.
func NewService(sys System, callback CallbackFunc) *Service {
	s := &Service{sys: sys, styles: NewStyles(sys)}
	s.registry = newRegistry(sys)
	s.interceptor = newInterceptor(sys, s.registry)
	s.registry.proc = callback(s.interceptor.wndproc)
	return s
}

func (s *Service) Registry() *Registry { return s.registry }

func (s *Service) Interceptor() *Interceptor { return s.interceptor }

func (s *Service) Styles() Styles { return s.styles }

// Install subclasses h on behalf of owner.
func (s *Service) Install(h Handle, owner Owner) (*Subclass, error) {
	return s.registry.Install(h, owner)
}

// Close restores every window still subclassed. Entries left at this point
// missed their exit notification.
func (s *Service) Close() error {
	var errs []error
	for _, h := range s.registry.handles() {
		if err := s.registry.Uninstall(h); err != nil && !errors.Is(err, ErrNotFound) {
			errs = append(errs, fmt.Errorf("hwnd %#x: %w", uintptr(h), err))
		}
	}
	return errors.Join(errs...)
}
