// ==============================================================================================
// FILE: capability/default.go
// ==============================================================================================
package capability

import "os"

// Default wires the real, OS-backed implementation of every capability
// into a single Bundle, plumbing os.Stdin/os.Stdout as the evaluator's
// In/Out streams. cmd/stack uses this directly; tests construct their own
// Bundle with fakes instead.
func Default() *Bundle {
	return &Bundle{
		HTTP:      NewHTTPClient(),
		Opener:    NewOpener(),
		FS:        NewFileSystem(),
		Clipboard: NewClipboard(),
		SysInfo:   NewSysInfo(),
		Screen:    NewScreenClearer(),
		Audio:     NewAudioPlayer(),
		In:        os.Stdin,
		Out:       os.Stdout,
	}
}
