package chrome

import (
	"math/rand"

	"AcrylicWindow/internal/style"
)

func NextBackdrop(b style.Backdrop) style.Backdrop {
	return (b + 1) % (style.BackdropTabbed + 1)
}

func NextFrame(f style.Frame) style.Frame {
	return (f + 1) % (style.FrameCustom + 1)
}

func NextCorner(c style.Corner) style.Corner {
	return (c + 1) % (style.CornerRoundSmall + 1)
}

// RandomBase picks a base color with the given alpha.
func RandomBase(alpha float64) style.Color {
	return style.RGBA(rand.Float64(), rand.Float64(), rand.Float64(), alpha)
}
