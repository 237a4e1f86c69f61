package screenshot

import (
	"errors"
	"image"

	"github.com/kbinani/screenshot"
)

// Display describes one attached monitor in enumeration order.
type Display struct {
	Index  int
	X      int
	Y      int
	Bounds image.Rectangle
}

// ErrNoDisplay is returned when no monitor could be enumerated.
var ErrNoDisplay = errors.New("no display found")

// List enumerates the active displays. Enumeration order is OS-defined and
// carries no meaning beyond being stable for the duration of a call.
func List() ([]Display, error) {
	n := screenshot.NumActiveDisplays()
	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		displays = append(displays, Display{Index: i, X: b.Min.X, Y: b.Min.Y, Bounds: b})
	}
	return displays, nil
}

// SelectPrimary picks the display whose origin is (0,0). When no display
// sits at the origin the first enumerated one is used. An empty list fails
// with ErrNoDisplay.
func SelectPrimary(displays []Display) (Display, error) {
	if len(displays) == 0 {
		return Display{}, ErrNoDisplay
	}
	for _, d := range displays {
		if d.X == 0 && d.Y == 0 {
			return d, nil
		}
	}
	return displays[0], nil
}

// Grab captures a still image of the given display.
func Grab(d Display) (*image.RGBA, error) {
	return screenshot.CaptureRect(d.Bounds)
}
