// Package overlay is the demo application: an Ebiten window styled through
// the acrylic facade, with its own title bar buttons.
package overlay

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"runtime"
	"sync/atomic"

	"AcrylicWindow/internal/acrylic"
	"AcrylicWindow/internal/chrome"
	"AcrylicWindow/internal/config"
	"AcrylicWindow/internal/display"
	"AcrylicWindow/internal/host"
	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/native"
	"AcrylicWindow/internal/scene"
	"AcrylicWindow/internal/server"
	"AcrylicWindow/internal/style"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Queued changes from other goroutines, drained once per tick.
const maxPendingChanges = 32

const helpText = "T always on top   B backdrop   F frame   C corner\n" +
	"A auto colors   R random base   P popup   S save"

// Game implements ebiten.Game for the demo window.
type Game struct {
	cfg  *config.Config
	host *host.Host
	win  *acrylic.Window

	pending   chan func(*acrylic.Window)
	chrome    atomic.Pointer[chrome.Chrome]
	pixel     *ebiten.Image
	font      *text.GoTextFaceSource
	fallback  *text.GoXFace
	started   bool
	focused   bool
	popupOpen bool
	width     int
	height    int
}

func newGame(cfg *config.Config) *Game {
	g := &Game{
		cfg:     cfg,
		host:    host.New(cfg.Overlay.Title),
		pending: make(chan func(*acrylic.Window), maxPendingChanges),
		focused: true,
		width:   cfg.Overlay.Width,
		height:  cfg.Overlay.Height,
	}
	g.win = acrylic.New(acrylic.Options{
		Host:         g.host,
		Display:      g.host,
		Root:         g.root,
		ContentPoint: g.contentPoint,
	}, cfg.Window)
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logger.Error("font load failed, using basic font", "err", err)
		g.fallback = text.NewGoXFace(basicfont.Face7x13)
	} else {
		g.font = src
	}
	g.relayout()
	return g
}

// Properties reports the live window properties.
func (g *Game) Properties() acrylic.Properties {
	return g.win.Properties()
}

// Submit queues change for the next tick. It reports false when the queue is
// full.
func (g *Game) Submit(change func(w *acrylic.Window)) bool {
	select {
	case g.pending <- change:
		return true
	default:
		return false
	}
}

func (g *Game) drain() {
	for {
		select {
		case change := <-g.pending:
			change(g.win)
		default:
			return
		}
	}
}

func (g *Game) root() scene.Node {
	c := g.chrome.Load()
	if c == nil {
		return nil
	}
	return c.Root
}

// contentPoint maps a client point from the window procedure, which is in
// physical pixels, to the layout's coordinates.
func (g *Game) contentPoint(p image.Point) image.Point {
	return chrome.FromDevice(p, g.host.DeviceScale())
}

func (g *Game) titleVisible() bool {
	switch g.win.AutohideTitleBar() {
	case style.AutohideAlways:
		return g.hoveringTop()
	case style.AutohideMaximized:
		return !ebiten.IsWindowMaximized() || g.hoveringTop()
	default:
		return true
	}
}

func (g *Game) hoveringTop() bool {
	_, y := ebiten.CursorPosition()
	return y >= 0 && float64(y) < chrome.TitleBarHeight*g.host.ContentScale()
}

func (g *Game) relayout() {
	g.chrome.Store(chrome.Layout(g.width, g.height, g.host.ContentScale(), g.titleVisible(), g.popupOpen))
}

// Update runs each tick.
func (g *Game) Update() error {
	if !g.started {
		g.started = true
		g.host.Start()
		g.win.Ready()
		logger.Debug("overlay ready", "realized", g.win.Realized())
	}
	if ebiten.IsWindowBeingClosed() || g.host.Quitting() {
		g.win.Exit()
		return ebiten.Termination
	}

	g.host.Tick()
	g.drain()
	g.win.Update(1 / float64(ebiten.TPS()))
	g.trackFocus()
	g.handleKeys()
	g.relayout()
	g.handleClick()
	return nil
}

// trackFocus dims on focus loss where the window procedure does not report
// activation itself.
func (g *Game) trackFocus() {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	if runtime.GOOS == "windows" && g.win.Realized() && g.win.Frame().Chromeless() {
		return
	}
	if g.win.DimOnDeactivate() {
		g.win.Dim(!focused)
	}
}

func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	var err error
	switch g.chrome.Load().Hit(image.Pt(x, y)) {
	case chrome.ActionMinimize:
		err = g.win.Minimize()
	case chrome.ActionMaximize:
		err = g.win.Maximize(true)
	case chrome.ActionClose:
		err = g.win.Close()
	default:
		return
	}
	if err != nil {
		logger.Error("title bar action failed", "err", err)
	}
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.win.SetAlwaysOnTop(!g.win.AlwaysOnTop())
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.win.SetBackdrop(chrome.NextBackdrop(g.win.Backdrop()))
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.win.SetFrame(chrome.NextFrame(g.win.Frame()))
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.win.SetCorner(chrome.NextCorner(g.win.Corner()))
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.win.SetAutoColors(!g.win.AutoColors())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.win.SetBaseColor(chrome.RandomBase(g.win.BaseColor().A))
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.popupOpen = !g.popupOpen
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case runtime.GOOS != "windows" && inpututil.IsKeyJustPressed(ebiten.KeyF11):
		if err := g.win.Maximize(true); err != nil {
			logger.Error("maximize failed", "err", err)
		}
	}
}

func (g *Game) save() {
	cfg := *g.cfg
	cfg.Window = g.win.Properties()
	if err := config.Save(&cfg); err != nil {
		logger.Error("config save failed", "err", err)
		return
	}
	logger.Info("config saved")
}

// Draw renders the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.host.TakeRedraw()
	screen.Fill(g.host.Background().NRGBA())

	c := g.chrome.Load()
	p := g.win.Properties()
	pad := 8 * g.host.ContentScale()
	bar := c.TitleBar.Bounds
	mid := float64(bar.Min.Y+bar.Max.Y) / 2
	if !c.TitleBar.Hidden {
		if g.accented(p.AccentTitleBar) {
			g.fill(screen, bar, p.TitleBarColor)
		}
		g.drawText(screen, g.cfg.Overlay.Title, pad, mid, text.AlignStart, text.AlignCenter, p.TextColor)
		for _, b := range c.Buttons {
			r := b.Box.Bounds
			g.drawText(screen, b.Label, float64(r.Min.X+r.Max.X)/2, mid, text.AlignCenter, text.AlignCenter, p.TextColor)
		}
	}
	g.drawText(screen, helpText, pad, float64(bar.Max.Y)+pad, text.AlignStart, text.AlignStart, p.TextColor)
	if !c.Popup.Hidden {
		r := c.Popup.Bounds
		g.fill(screen, r, p.BaseColor.Opaque())
		g.drawText(screen, "popup open: no dragging", float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2,
			text.AlignCenter, text.AlignCenter, p.TextColor)
	}

	if a := g.win.DimAlpha(); a > 0 {
		g.fill(screen, screen.Bounds(), style.RGBA(0, 0, 0, a))
	}
}

func (g *Game) accented(a style.Accent) bool {
	switch a {
	case style.AccentAlways:
		return true
	case style.AccentMouseOver:
		return g.hoveringTop()
	default:
		return false
	}
}

// drawText draws s at (x, y) at the current text size.
func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, primary, secondary text.Align, c style.Color) {
	size := chrome.TextSize(g.host.ContentScale())
	op := &text.DrawOptions{}
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	var face text.Face
	if g.font != nil {
		face = &text.GoTextFace{Source: g.font, Size: size}
		op.LineSpacing = size * chrome.LineHeight
	} else {
		// The bitmap face has a fixed size; scale its glyphs instead.
		k := size / chrome.FontSize
		face = g.fallback
		op.LineSpacing = chrome.FontSize * chrome.LineHeight
		op.GeoM.Scale(k, k)
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	text.Draw(dst, s, face, op)
}

// fill blends c over r.
func (g *Game) fill(dst *ebiten.Image, r image.Rectangle, c style.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	dst.DrawImage(g.pixel, op)
}

// Layout follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run starts the demo window and blocks until it exits. When serve is set
// the control API runs alongside it.
func Run(cfg *config.Config, serve bool) error {
	logger.Debug("overlay Run start", "title", cfg.Overlay.Title, "serve", serve)
	game := newGame(cfg)
	if serve {
		go server.Run(cfg.Server.Port, game)
	}

	ebiten.SetWindowTitle(cfg.Overlay.Title)
	ebiten.SetWindowSize(cfg.Overlay.Width, cfg.Overlay.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowFloating(cfg.Window.AlwaysOnTop)
	ebiten.SetWindowClosingHandled(true)
	if displays, err := display.List(); err != nil {
		logger.Warn("display list failed", "err", err)
	} else if pos, err := display.Center(displays, cfg.Overlay.Display, cfg.Overlay.Width, cfg.Overlay.Height); err == nil {
		ebiten.SetWindowPosition(pos.X, pos.Y)
	}

	err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{ScreenTransparent: true})
	game.win.Exit()
	if serr := native.Shutdown(); serr != nil {
		logger.Error("failed to restore window procedures", "err", serr, "leak", true)
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

var _ server.Controller = (*Game)(nil)
