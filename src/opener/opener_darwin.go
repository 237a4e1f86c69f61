//go:build darwin

package opener

import "os/exec"

func openPath(path string) error {
	return exec.Command("open", path).Start()
}
