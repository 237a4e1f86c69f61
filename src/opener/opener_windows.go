//go:build windows

package opener

import "os/exec"

func openPath(path string) error {
	return exec.Command("explorer", path).Start()
}
