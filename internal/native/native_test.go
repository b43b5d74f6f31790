package native

import (
	"testing"

	"AcrylicWindow/internal/style"
)

func newTestWindow(t *testing.T) (*fakeSystem, *Service, *fakeHost, *nativeWindow) {
	t.Helper()
	sys := newFakeSystem()
	svc := newTestService(sys)
	h := &fakeHost{id: 1}
	return sys, svc, h, newNativeWindow(svc, testHandle, h, &fakeOwner{})
}

func TestNativeWindowLifecycle(t *testing.T) {
	sys, svc, _, w := newTestWindow(t)

	w.OnReady()
	if svc.Registry().Len() != 1 || sys.proc(testHandle) != testProc {
		t.Fatal("OnReady did not subclass the window")
	}
	w.OnExit()
	if svc.Registry().Len() != 0 || sys.proc(testHandle) != testOrigProc {
		t.Fatal("OnExit did not restore the window procedure")
	}
	w.OnExit()
}

func TestNativeWindowExitAfterDestroy(t *testing.T) {
	sys, svc, _, w := newTestWindow(t)
	w.OnReady()
	svc.Interceptor().Dispatch(testHandle, wmNCDestroy, 0, 0)

	w.OnExit()
	if sys.setProcs != 2 {
		t.Errorf("SetWindowProc calls = %d, want install and one restore", sys.setProcs)
	}
}

func TestNativeWindowMaximize(t *testing.T) {
	tests := []struct {
		name   string
		show   uint32
		toggle bool
		want   int32
	}{
		{"maximize", 1, false, swMaximize},
		{"toggle from normal", 1, true, swMaximize},
		{"toggle from maximized", swShowMaximized, true, swRestore},
		{"maximize when maximized", swShowMaximized, false, swMaximize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, _, _, w := newTestWindow(t)
			sys.showState = tt.show
			if err := w.Maximize(tt.toggle); err != nil {
				t.Fatalf("Maximize: %v", err)
			}
			if len(sys.shows) != 1 || sys.shows[0] != tt.want {
				t.Errorf("ShowWindow = %v, want [%d]", sys.shows, tt.want)
			}
		})
	}
}

func TestNativeWindowCommands(t *testing.T) {
	sys, _, h, w := newTestWindow(t)

	if err := w.Minimize(); err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(sys.shows) != 1 || sys.shows[0] != swMinimize {
		t.Errorf("ShowWindow = %v", sys.shows)
	}
	if len(sys.posts) != 1 || sys.posts[0] != wmClose {
		t.Errorf("posted = %v, want WM_CLOSE", sys.posts)
	}
	if h.quit {
		t.Error("Close quit the engine instead of closing the window")
	}
}

func TestNativeWindowBackdropReachesEngine(t *testing.T) {
	sys, _, h, w := newTestWindow(t)
	if err := w.SetBackdrop(style.BackdropMica); err != nil {
		t.Fatalf("SetBackdrop: %v", err)
	}
	if sys.dwm[dwmwaSystemBackdropType] != dwmsbtMainWindow {
		t.Error("backdrop type not written")
	}
	if !h.transparent {
		t.Error("engine background not made transparent")
	}
}
