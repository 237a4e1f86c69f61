//go:build !windows && !darwin

package opener

import "os/exec"

func openPath(path string) error {
	return exec.Command("xdg-open", path).Start()
}
