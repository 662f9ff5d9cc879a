//go:build !windows

package util

import (
	"errors"
	"os/exec"
	"runtime"
)

func browserCommand(browser, url string) (*exec.Cmd, error) {
	if url == "" {
		return nil, errors.New("empty url")
	}
	if browser != "" {
		return exec.Command(browser, url), nil
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url), nil
	default:
		return exec.Command("xdg-open", url), nil
	}
}
