// ==============================================================================================
// FILE: capability/screen.go
// ==============================================================================================
package capability

import (
	"os"
	"os/exec"
	"runtime"
)

// osScreenClearer clears the terminal by invoking the platform's own clear
// utility (no third-party "clearscreen"-style library is grounded
// anywhere in the pack, unlike the Rust original which pulls in the
// `clearscreen` crate).
type osScreenClearer struct{}

// NewScreenClearer returns the default platform terminal clearer used by
// `cls`/`clear`.
func NewScreenClearer() ScreenClearer { return osScreenClearer{} }

func (osScreenClearer) Clear() error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	return cmd.Run()
}
