package native

import (
	"errors"
	"fmt"

	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/style"
)

// nativeWindow drives a realized OS window. Engine-side effects (content
// scale, clear color, transparent background) go through the embedded
// fallback.
type nativeWindow struct {
	*Fallback
	svc    *Service
	handle Handle
	owner  Owner
	sub    *Subclass
}

func newNativeWindow(svc *Service, h Handle, host Host, owner Owner) *nativeWindow {
	return &nativeWindow{
		Fallback: NewFallback(host),
		svc:      svc,
		handle:   h,
		owner:    owner,
	}
}

func (w *nativeWindow) Valid() bool { return w.handle != 0 }

func (w *nativeWindow) OnReady() {
	logger.Debug("subclassing window", "hwnd", uintptr(w.handle))
	sub, err := w.svc.Install(w.handle, w.owner)
	if err != nil {
		logger.Error("failed to subclass window procedure", "hwnd", uintptr(w.handle), "err", err)
		return
	}
	w.sub = sub
}

func (w *nativeWindow) OnExit() {
	if w.sub == nil {
		return
	}
	logger.Debug("restoring window procedure", "hwnd", uintptr(w.handle))
	err := w.sub.Release()
	var restoreErr *RestoreError
	switch {
	case err == nil:
	case errors.As(err, &restoreErr):
		logger.Error("failed to restore window procedure", "hwnd", uintptr(w.handle), "err", err, "leak", true)
	case errors.Is(err, ErrNotFound):
		logger.Debug("window procedure already restored", "hwnd", uintptr(w.handle))
	default:
		logger.Error("failed to release subclass", "hwnd", uintptr(w.handle), "err", err)
	}
}

func (w *nativeWindow) Minimize() error {
	if err := w.svc.sys.ShowWindow(w.handle, swMinimize); err != nil {
		return fmt.Errorf("minimize: %w", err)
	}
	return nil
}

func (w *nativeWindow) Maximize(toggle bool) error {
	cmd := int32(swMaximize)
	if toggle {
		show, err := w.svc.sys.ShowState(w.handle)
		if err != nil {
			return fmt.Errorf("window placement: %w", err)
		}
		if show == swShowMaximized {
			cmd = swRestore
		}
	}
	if err := w.svc.sys.ShowWindow(w.handle, cmd); err != nil {
		return fmt.Errorf("show window %d: %w", cmd, err)
	}
	return nil
}

func (w *nativeWindow) Close() error {
	if err := w.svc.sys.PostMessage(w.handle, wmClose, 0, 0); err != nil {
		return fmt.Errorf("post WM_CLOSE: %w", err)
	}
	return nil
}

func (w *nativeWindow) SetAlwaysOnTop(on bool) error {
	return w.svc.styles.SetAlwaysOnTop(w.handle, on)
}

func (w *nativeWindow) SetFrame(f style.Frame) error {
	return w.svc.styles.SetFrame(w.handle, f)
}

func (w *nativeWindow) SetBackdrop(b style.Backdrop) error {
	if err := w.svc.styles.SetBackdrop(w.handle, b); err != nil {
		return err
	}
	return w.Fallback.SetBackdrop(b)
}

func (w *nativeWindow) SetCorner(c style.Corner) error {
	return w.svc.styles.SetCorner(w.handle, c)
}

func (w *nativeWindow) SetBorderColor(c style.Color) error {
	return w.svc.styles.SetBorderColor(w.handle, c)
}

func (w *nativeWindow) SetTitleBarColor(c style.Color) error {
	return w.svc.styles.SetTitleBarColor(w.handle, c)
}

func (w *nativeWindow) SetTextColor(c style.Color) error {
	return w.svc.styles.SetTextColor(w.handle, c)
}
