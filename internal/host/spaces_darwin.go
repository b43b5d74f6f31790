//go:build darwin

package host

import (
	"AcrylicWindow/internal/logger"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// NSWindowCollectionBehaviorCanJoinAllSpaces: window appears on all spaces.
const nsWindowCollectionBehaviorCanJoinAllSpaces = 1

var (
	sel_sharedApplication     = objc.RegisterName("sharedApplication")
	sel_mainWindow            = objc.RegisterName("mainWindow")
	sel_keyWindow             = objc.RegisterName("keyWindow")
	sel_collectionBehavior    = objc.RegisterName("collectionBehavior")
	sel_setCollectionBehavior = objc.RegisterName("setCollectionBehavior:")
	mainQueue                 uintptr
	dispatchAsync             func(queue, block uintptr)
)

func init() {
	if _, err := purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_NOW|purego.RTLD_GLOBAL); err != nil {
		logger.Debug("spaces: AppKit Dlopen failed", "err", err)
		return
	}
	libdispatch, err := purego.Dlopen("/usr/lib/system/libdispatch.dylib", purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		logger.Debug("spaces: libdispatch Dlopen failed", "err", err)
		return
	}
	sym, err := purego.Dlsym(libdispatch, "_dispatch_main_q")
	if err != nil {
		logger.Debug("spaces: Dlsym _dispatch_main_q failed", "err", err)
		return
	}
	mainQueue = sym
	purego.RegisterLibFunc(&dispatchAsync, libdispatch, "dispatch_async")
}

// appWindow returns the main or key NSWindow, or 0 before one exists.
func appWindow() objc.ID {
	appClass := objc.GetClass("NSApplication")
	if appClass == 0 {
		return 0
	}
	app := objc.ID(appClass).Send(sel_sharedApplication)
	if app == 0 {
		return 0
	}
	window := app.Send(sel_mainWindow)
	if window == 0 {
		window = app.Send(sel_keyWindow)
	}
	return window
}

// setAllSpaces schedules the join-all-spaces behavior of the app window to
// follow pinned. AppKit must run on the main thread; this is called from the
// game thread. It returns false while dispatch is unavailable.
func setAllSpaces(pinned bool) bool {
	if mainQueue == 0 || dispatchAsync == nil {
		return false
	}
	// The block runs asynchronously and must not be released before then; one
	// block leaks per successful call.
	block := objc.NewBlock(func(_ objc.Block) {
		window := appWindow()
		if window == 0 {
			return
		}
		// Keep the flags GLFW set.
		current := objc.Send[uintptr](window, sel_collectionBehavior)
		next := current &^ nsWindowCollectionBehaviorCanJoinAllSpaces
		if pinned {
			next |= nsWindowCollectionBehaviorCanJoinAllSpaces
		}
		window.Send(sel_setCollectionBehavior, next)
	})
	dispatchAsync(mainQueue, uintptr(block))
	return true
}
