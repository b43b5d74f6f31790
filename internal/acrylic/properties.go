package acrylic

import "AcrylicWindow/internal/style"

// Properties is the full configurable state of a window.
type Properties struct {
	TextSize         float64        `yaml:"text_size"`
	AlwaysOnTop      bool           `yaml:"always_on_top"`
	DragByContent    bool           `yaml:"drag_by_content"`
	DragByRightClick bool           `yaml:"drag_by_right_click"`
	DimStrength      float64        `yaml:"dim_strength"`
	DimOnDeactivate  bool           `yaml:"dim_on_deactivate"`
	Frame            style.Frame    `yaml:"frame"`
	Backdrop         style.Backdrop `yaml:"backdrop"`
	Corner           style.Corner   `yaml:"corner"`
	AutohideTitleBar style.Autohide `yaml:"autohide_title_bar"`
	AccentTitleBar   style.Accent   `yaml:"accent_title_bar"`

	// AutoColors derives the four colors below BaseColor from it.
	AutoColors    bool        `yaml:"auto_colors"`
	BaseColor     style.Color `yaml:"base_color"`
	BorderColor   style.Color `yaml:"border_color"`
	TitleBarColor style.Color `yaml:"title_bar_color"`
	TextColor     style.Color `yaml:"text_color"`
	ClearColor    style.Color `yaml:"clear_color"`
}

// DefaultProperties returns the stock look: dark acrylic with a custom frame.
func DefaultProperties() Properties {
	p := Properties{
		TextSize:         1.25,
		AlwaysOnTop:      true,
		DragByContent:    false,
		DragByRightClick: true,
		DimStrength:      0.4,
		DimOnDeactivate:  true,
		Frame:            style.FrameCustom,
		Backdrop:         style.BackdropAcrylic,
		Corner:           style.CornerDefault,
		AutohideTitleBar: style.AutohideMaximized,
		AccentTitleBar:   style.AccentMouseOver,
		AutoColors:       true,
		BaseColor:        style.RGBA(0.133, 0.145, 0.149, 0.741),
		BorderColor:      style.Black,
		TitleBarColor:    style.Black,
		TextColor:        style.White,
		ClearColor:       style.Black,
	}
	p.deriveColors()
	return p
}

const (
	// Above this luminance the text switches to black.
	textLuminanceThreshold = 0.65
	borderTintFactor       = 0.75
	clearDarkening         = 0.85
)

// deriveColors recomputes the border, title bar, text and clear colors from
// the base color.
func (p *Properties) deriveColors() {
	base := p.BaseColor
	l := base.Luminance()
	tint := style.RGB(l, l, l).Scaled(borderTintFactor)
	p.BorderColor = base.Lerp(tint, 1-base.A)
	p.TitleBarColor = p.BorderColor
	if l < textLuminanceThreshold {
		p.TextColor = style.White
	} else {
		p.TextColor = style.Black
	}
	p.ClearColor = base.Darkened(clearDarkening)
}
