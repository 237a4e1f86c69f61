package capture

import (
	"image"
	"image/png"
	"log"
	"os"

	"github.com/danico-oss/hypergrab/src/naming"
	"github.com/danico-oss/hypergrab/src/screenshot"
)

// Indirection points for tests; production code never swaps these.
var (
	listDisplays = screenshot.List
	grabDisplay  = screenshot.Grab
)

// Execute performs one grab-to-file capture: enumerate displays, pick the
// primary one, grab its pixels, allocate a collision-free name for the
// identifier and write the PNG into dir. It returns the exact path written,
// which may carry a numeric suffix when the plain name was taken.
//
// Execute blocks for the duration of the platform grab; callers run it off
// the UI path (see the worker pool).
func Execute(dir, identifier string) (string, error) {
	displays, err := listDisplays()
	if err != nil {
		return "", &EnumerationError{Err: err}
	}

	target, err := screenshot.SelectPrimary(displays)
	if err != nil {
		return "", err
	}
	log.Printf("Capture: using display %d at (%d,%d)", target.Index, target.X, target.Y)

	img, err := grabDisplay(target)
	if err != nil {
		return "", &GrabError{Err: err}
	}

	path := naming.Allocate(dir, identifier)
	if err := writePNG(path, img); err != nil {
		return "", &EncodeError{Err: err}
	}

	log.Printf("Capture: saved %s", path)
	return path, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
