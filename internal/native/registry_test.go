package native

import (
	"errors"
	"testing"
)

func TestRegistryInstallUninstall(t *testing.T) {
	sys := newFakeSystem()
	svc := newTestService(sys)
	reg := svc.Registry()
	owner := &fakeOwner{}

	sub, err := reg.Install(testHandle, owner)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if got := sys.proc(testHandle); got != testProc {
		t.Errorf("procedure after install = %#x, want %#x", got, testProc)
	}
	if sub.Prev() != testOrigProc {
		t.Errorf("Prev = %#x, want %#x", sub.Prev(), testOrigProc)
	}
	e, ok := reg.Lookup(testHandle)
	if !ok || e.Prev != testOrigProc || e.Owner != owner {
		t.Fatalf("Lookup = %+v, %v", e, ok)
	}

	if _, err := reg.Install(testHandle, owner); !errors.Is(err, ErrAlreadyInstalled) {
		t.Errorf("second Install error = %v, want ErrAlreadyInstalled", err)
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}

	if err := reg.Uninstall(testHandle); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}
	if got := sys.proc(testHandle); got != testOrigProc {
		t.Errorf("procedure after uninstall = %#x, want %#x", got, testOrigProc)
	}
	if _, ok := reg.Lookup(testHandle); ok {
		t.Error("entry still present after Uninstall")
	}
	if err := reg.Uninstall(testHandle); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Uninstall error = %v, want ErrNotFound", err)
	}
}

func TestRegistryEntryVisibleBeforeSwap(t *testing.T) {
	sys := newFakeSystem()
	reg := newTestService(sys).Registry()

	var seen bool
	sys.onSetProc = func(h Handle, proc uintptr) {
		if proc == testProc {
			_, seen = reg.entries[h]
		}
	}
	if _, err := reg.Install(testHandle, &fakeOwner{}); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if !seen {
		t.Error("entry was not registered when the procedure was swapped")
	}
}

func TestRegistryInstallFailure(t *testing.T) {
	sys := newFakeSystem()
	sys.installErr = errFake
	reg := newTestService(sys).Registry()

	_, err := reg.Install(testHandle, &fakeOwner{})
	if !errors.Is(err, ErrInstallFailed) || !errors.Is(err, errFake) {
		t.Fatalf("Install error = %v, want ErrInstallFailed wrapping the OS error", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d after failed install, want 0", reg.Len())
	}
	if got := sys.proc(testHandle); got != testOrigProc {
		t.Errorf("procedure = %#x, want untouched %#x", got, testOrigProc)
	}
}

func TestRegistryRestoreFailure(t *testing.T) {
	sys := newFakeSystem()
	reg := newTestService(sys).Registry()
	if _, err := reg.Install(testHandle, &fakeOwner{}); err != nil {
		t.Fatalf("Install: %v", err)
	}

	sys.restoreErr = errFake
	err := reg.Uninstall(testHandle)
	var restoreErr *RestoreError
	if !errors.As(err, &restoreErr) {
		t.Fatalf("Uninstall error = %v, want *RestoreError", err)
	}
	if restoreErr.Handle != testHandle || !errors.Is(err, errFake) {
		t.Errorf("RestoreError = %+v", restoreErr)
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want entry erased despite failure", reg.Len())
	}
}

func TestSubclassReleaseOnce(t *testing.T) {
	sys := newFakeSystem()
	reg := newTestService(sys).Registry()
	sub, err := reg.Install(testHandle, &fakeOwner{})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := sub.Release(); err != nil {
			t.Fatalf("Release #%d: %v", i, err)
		}
	}
	if sys.setProcs != 2 {
		t.Errorf("SetWindowProc calls = %d, want 2 (install and one restore)", sys.setProcs)
	}
	if sub.Handle() != testHandle {
		t.Errorf("Handle = %#x", sub.Handle())
	}
}

func TestServiceCloseRestoresAll(t *testing.T) {
	sys := newFakeSystem()
	sys.procs[0x43] = 0x2000
	svc := newTestService(sys)
	for _, h := range []Handle{testHandle, 0x43} {
		if _, err := svc.Install(h, &fakeOwner{}); err != nil {
			t.Fatalf("Install %#x: %v", h, err)
		}
	}

	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if svc.Registry().Len() != 0 {
		t.Errorf("Len = %d after Close", svc.Registry().Len())
	}
	if sys.proc(testHandle) != testOrigProc || sys.proc(0x43) != 0x2000 {
		t.Errorf("procedures not restored: %#x %#x", sys.proc(testHandle), sys.proc(0x43))
	}
}

func TestServiceCloseReportsLeaks(t *testing.T) {
	sys := newFakeSystem()
	svc := newTestService(sys)
	if _, err := svc.Install(testHandle, &fakeOwner{}); err != nil {
		t.Fatalf("Install: %v", err)
	}
	sys.restoreErr = errFake

	err := svc.Close()
	var restoreErr *RestoreError
	if !errors.As(err, &restoreErr) {
		t.Fatalf("Close error = %v, want *RestoreError", err)
	}
}
