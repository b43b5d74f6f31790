// Package server exposes the window properties of the demo over a local HTTP
// API so they can be changed while the window runs.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"AcrylicWindow/internal/acrylic"
	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/style"
)

const maxBodyBytes = 64 << 10

// Controller is the running window as seen by the API. Submit queues a change
// to run on the window's own thread.
type Controller interface {
	Properties() acrylic.Properties
	Submit(change func(w *acrylic.Window)) bool
}

// Run starts the HTTP server (call from main with go server.Run(port, ctrl)).
func Run(port int, ctrl Controller) {
	if port == 0 {
		port = 8765
	}
	addr := fmt.Sprintf("localhost:%d", port)
	logger.Info("control server listening", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, Handler(ctrl)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("control server stopped", "err", err)
	}
}

// Handler returns the API routes.
func Handler(ctrl Controller) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/api/window", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getWindow(w, ctrl)
		case http.MethodPost:
			postWindow(w, r, ctrl)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/window/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		postCommand(w, r.URL.Path[len("/api/window/"):], ctrl)
	})
	return mux
}

// windowState is the JSON view of acrylic.Properties. Enums and colors
// marshal as text.
type windowState struct {
	TextSize         float64        `json:"textSize"`
	AlwaysOnTop      bool           `json:"alwaysOnTop"`
	DragByContent    bool           `json:"dragByContent"`
	DragByRightClick bool           `json:"dragByRightClick"`
	DimStrength      float64        `json:"dimStrength"`
	DimOnDeactivate  bool           `json:"dimOnDeactivate"`
	Frame            style.Frame    `json:"frame"`
	Backdrop         style.Backdrop `json:"backdrop"`
	Corner           style.Corner   `json:"corner"`
	AutohideTitleBar style.Autohide `json:"autohideTitleBar"`
	AccentTitleBar   style.Accent   `json:"accentTitleBar"`
	AutoColors       bool           `json:"autoColors"`
	BaseColor        style.Color    `json:"baseColor"`
	BorderColor      style.Color    `json:"borderColor"`
	TitleBarColor    style.Color    `json:"titleBarColor"`
	TextColor        style.Color    `json:"textColor"`
	ClearColor       style.Color    `json:"clearColor"`
}

func stateOf(p acrylic.Properties) windowState {
	return windowState(p)
}

// windowPatch carries only the fields a client sent.
type windowPatch struct {
	TextSize         *float64        `json:"textSize"`
	AlwaysOnTop      *bool           `json:"alwaysOnTop"`
	DragByContent    *bool           `json:"dragByContent"`
	DragByRightClick *bool           `json:"dragByRightClick"`
	DimStrength      *float64        `json:"dimStrength"`
	DimOnDeactivate  *bool           `json:"dimOnDeactivate"`
	Frame            *style.Frame    `json:"frame"`
	Backdrop         *style.Backdrop `json:"backdrop"`
	Corner           *style.Corner   `json:"corner"`
	AutohideTitleBar *style.Autohide `json:"autohideTitleBar"`
	AccentTitleBar   *style.Accent   `json:"accentTitleBar"`
	AutoColors       *bool           `json:"autoColors"`
	BaseColor        *style.Color    `json:"baseColor"`
	BorderColor      *style.Color    `json:"borderColor"`
	TitleBarColor    *style.Color    `json:"titleBarColor"`
	TextColor        *style.Color    `json:"textColor"`
	ClearColor       *style.Color    `json:"clearColor"`
}

func (p windowPatch) validate() error {
	if p.TextSize != nil && *p.TextSize <= 0 {
		return errors.New("textSize must be positive")
	}
	if p.DimStrength != nil && (*p.DimStrength < 0 || *p.DimStrength > 1) {
		return errors.New("dimStrength must be within [0, 1]")
	}
	return nil
}

// apply runs the setters for every field present. Auto colors go first so
// explicit colors in the same patch are judged against the new mode.
func (p windowPatch) apply(w *acrylic.Window) {
	if p.AutoColors != nil {
		w.SetAutoColors(*p.AutoColors)
	}
	if p.BaseColor != nil {
		w.SetBaseColor(*p.BaseColor)
	}
	if p.TextSize != nil {
		w.SetTextSize(*p.TextSize)
	}
	if p.AlwaysOnTop != nil {
		w.SetAlwaysOnTop(*p.AlwaysOnTop)
	}
	if p.DragByContent != nil {
		w.SetDragByContent(*p.DragByContent)
	}
	if p.DragByRightClick != nil {
		w.SetDragByRightClick(*p.DragByRightClick)
	}
	if p.DimStrength != nil {
		w.SetDimStrength(*p.DimStrength)
	}
	if p.DimOnDeactivate != nil {
		w.SetDimOnDeactivate(*p.DimOnDeactivate)
	}
	if p.Frame != nil {
		w.SetFrame(*p.Frame)
	}
	if p.Backdrop != nil {
		w.SetBackdrop(*p.Backdrop)
	}
	if p.Corner != nil {
		w.SetCorner(*p.Corner)
	}
	if p.AutohideTitleBar != nil {
		w.SetAutohideTitleBar(*p.AutohideTitleBar)
	}
	if p.AccentTitleBar != nil {
		w.SetAccentTitleBar(*p.AccentTitleBar)
	}
	if p.BorderColor != nil {
		w.SetBorderColor(*p.BorderColor)
	}
	if p.TitleBarColor != nil {
		w.SetTitleBarColor(*p.TitleBarColor)
	}
	if p.TextColor != nil {
		w.SetTextColor(*p.TextColor)
	}
	if p.ClearColor != nil {
		w.SetClearColor(*p.ClearColor)
	}
}

func getWindow(w http.ResponseWriter, ctrl Controller) {
	writeJSON(w, http.StatusOK, stateOf(ctrl.Properties()))
}

func postWindow(w http.ResponseWriter, r *http.Request, ctrl Controller) {
	var patch windowPatch
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := patch.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ctrl.Submit(patch.apply) {
		http.Error(w, "window busy", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func postCommand(w http.ResponseWriter, name string, ctrl Controller) {
	var run func(*acrylic.Window) error
	switch name {
	case "minimize":
		run = (*acrylic.Window).Minimize
	case "maximize":
		run = func(win *acrylic.Window) error { return win.Maximize(true) }
	case "close":
		run = (*acrylic.Window).Close
	default:
		http.Error(w, "unknown command", http.StatusNotFound)
		return
	}
	ok := ctrl.Submit(func(win *acrylic.Window) {
		if err := run(win); err != nil {
			logger.Error("window command failed", "command", name, "err", err)
		}
	})
	if !ok {
		http.Error(w, "window busy", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("write response", "err", err)
	}
}
