package util

import "fmt"

// OpenBrowser launches the user's default browser with the provided URL.
func OpenBrowser(url string) error {
	return OpenBrowserWith("", url)
}

// OpenBrowserWith launches browser with the provided URL, falling back to
// the platform default handler when browser is empty. The spawned process is
// started but never waited for.
func OpenBrowserWith(browser, url string) error {
	cmd, err := browserCommand(browser, url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	return nil
}
