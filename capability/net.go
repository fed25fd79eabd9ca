// ==============================================================================================
// FILE: capability/net.go
// ==============================================================================================
package capability

import (
	"io"
	"net/http"
	"os/exec"
	"runtime"
	"time"
)

// httpClient is the stdlib net/http-backed default HTTPClient. No
// third-party HTTP client is grounded anywhere in the pack, so this stays
// on the standard library (the idiomatic Go default regardless).
type httpClient struct {
	client *http.Client
}

// NewHTTPClient returns the default blocking HTTP client used by `request`.
func NewHTTPClient() HTTPClient {
	return httpClient{client: &http.Client{Timeout: 30 * time.Second}}
}

func (h httpClient) Get(url string) (string, error) {
	resp, err := h.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// osOpener opens a file or URL with the platform's default handler by
// shelling out to the OS's own "open" utility, the same dispatch-by-GOOS
// idiom used for the ScreenClearer (screen.go) and AudioPlayer (audio.go).
type osOpener struct{}

// NewOpener returns the default platform opener used by `open`.
func NewOpener() Opener { return osOpener{} }

func (osOpener) Open(name string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", name)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", name)
	default:
		cmd = exec.Command("xdg-open", name)
	}
	return cmd.Run()
}
