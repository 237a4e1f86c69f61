// Package opener hands files and directories to the platform's default
// handler (explorer, open, xdg-open). Launches are fire-and-forget: the
// spawned process is not waited on.
package opener

// Open launches the platform handler for path.
func Open(path string) error {
	return openPath(path)
}
