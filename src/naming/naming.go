package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Placeholder replaces every non-alphanumeric rune in an identifier.
const Placeholder = '_'

// Sanitize maps an identifier to a filesystem-safe filename stem. Every rune
// that is not a letter or digit becomes the placeholder; length and ordering
// are preserved. An identifier that sanitizes to nothing yields a lone
// placeholder rather than an empty stem.
func Sanitize(identifier string) string {
	var b strings.Builder
	for _, r := range identifier {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	if b.Len() == 0 {
		return string(Placeholder)
	}
	return b.String()
}

// Allocate returns the first free PNG path for identifier inside dir,
// trying <stem>.png, then <stem>_1.png, <stem>_2.png and so on. The
// existence check and the later write are not atomic: two processes racing
// on the same directory can pick the same name (TOCTOU). Accepted for a
// single-operator tool.
//
// Allocate never creates the file.
func Allocate(dir, identifier string) string {
	stem := Sanitize(identifier)
	candidate := filepath.Join(dir, stem+".png")
	for n := 1; exists(candidate); n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.png", stem, n))
	}
	return candidate
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
