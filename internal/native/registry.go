package native

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"AcrylicWindow/internal/style"
)

var (
	ErrAlreadyInstalled = errors.New("window procedure already subclassed")
	ErrNotFound         = errors.New("window is not subclassed")
	ErrInstallFailed    = errors.New("failed to subclass window procedure")
)

// RestoreError reports that the original window procedure could not be put
// back. The interceptor may still be reachable from the OS, so callers treat
// it as a leak rather than an ordinary failure.
type RestoreError struct {
	Handle Handle
	Err    error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("restore window procedure of %#x: %v", uintptr(e.Handle), e.Err)
}

func (e *RestoreError) Unwrap() error { return e.Err }

// Owner is the logical window behind a subclassed handle, as seen from the
// message interceptor.
type Owner interface {
	Frame() style.Frame
	DragByContent() bool
	DragByRightClick() bool
	DimOnDeactivate() bool
	// HasOpenPopup reports whether a popup is open in the content tree.
	HasOpenPopup() bool
	// BlocksMouse reports whether a control at p (client coordinates)
	// consumes mouse input.
	BlocksMouse(p image.Point) bool
	Dim(on bool)
	Maximize(toggle bool) error
}

// Entry is the record kept per subclassed handle.
type Entry struct {
	Handle Handle
	Owner  Owner
	// Prev is the window procedure that was active before subclassing.
	Prev uintptr
}

// Registry maps subclassed handles to their entries. Every operation runs
// under one mutex that is held only around the map access and the procedure
// swap.
type Registry struct {
	sys     System
	proc    uintptr
	mu      sync.Mutex
	entries map[Handle]Entry
}

func newRegistry(sys System) *Registry {
	return &Registry{sys: sys, entries: make(map[Handle]Entry)}
}

// Install subclasses h with the interceptor procedure. The entry is inserted
// before the swap, inside the same critical section, so the first message
// routed through the interceptor always finds it.
func (r *Registry) Install(h Handle, owner Owner) (*Subclass, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[h]; ok {
		return nil, ErrAlreadyInstalled
	}
	r.entries[h] = Entry{Handle: h, Owner: owner}

	prev, err := r.sys.SetWindowProc(h, r.proc)
	if err != nil {
		delete(r.entries, h)
		return nil, fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}
	r.entries[h] = Entry{Handle: h, Owner: owner, Prev: prev}

	return &Subclass{registry: r, handle: h, prev: prev}, nil
}

// Lookup returns a copy of the entry for h.
func (r *Registry) Lookup(h Handle) (Entry, bool) {
	r.mu.Lock()
	e, ok := r.entries[h]
	r.mu.Unlock()
	return e, ok
}

// Uninstall restores the captured procedure and then erases the entry. The
// entry is erased even when the restore fails; the failure comes back as a
// *RestoreError.
func (r *Registry) Uninstall(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return ErrNotFound
	}
	_, err := r.sys.SetWindowProc(h, e.Prev)
	delete(r.entries, h)
	if err != nil {
		return &RestoreError{Handle: h, Err: err}
	}
	return nil
}

// Len returns the number of subclassed handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) handles() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Handle, 0, len(r.entries))
	for h := range r.entries {
		out = append(out, h)
	}
	return out
}

// Subclass is the right to intercept messages for one handle. Release must
// be called exactly when the window leaves the engine; extra calls are
// no-ops.
type Subclass struct {
	registry *Registry
	handle   Handle
	prev     uintptr
	once     sync.Once
	err      error
}

// Handle returns the subclassed handle.
func (s *Subclass) Handle() Handle { return s.handle }

// Prev returns the procedure captured at install time.
func (s *Subclass) Prev() uintptr { return s.prev }

// Release uninstalls the subclass.
func (s *Subclass) Release() error {
	s.once.Do(func() {
		s.err = s.registry.Uninstall(s.handle)
	})
	return s.err
}
