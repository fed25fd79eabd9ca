// ==============================================================================================
// FILE: capability/capability.go
// ==============================================================================================
// PACKAGE: capability
// PURPOSE: Defines the external collaborators the language core is deliberately specified
//          against (spec.md §6): HTTP, filesystem, clipboard, system info, terminal clearing,
//          and audio. The evaluator never talks to an OS API directly — it calls one of these
//          interfaces and maps any failure to the documented error code. The teacher has no
//          analogous seam (its builtins call fmt/os straight from the command switch); this
//          package exists because spec.md frames these specifically as swappable "external
//          collaborators" rather than as part of the core.
// ==============================================================================================

package capability

import "io"

// HTTPClient performs a blocking GET and returns the response body.
type HTTPClient interface {
	Get(url string) (string, error)
}

// Opener opens a file or URL with the platform's default handler.
type Opener interface {
	Open(name string) error
}

// FileSystem bundles every filesystem capability the dispatcher needs:
// shell-like operations (mkdir/rm/rename/cp/size/ls/folder/cd/pwd) plus
// plain file read/write.
type FileSystem interface {
	ReadFile(path string) (string, error)
	// WriteFile creates path and writes content to it. A failure during
	// creation is reported as a *WriteFileError with DuringCreate set, so
	// `write-file` can still distinguish its two documented error codes
	// (create-file vs write-file) through the capability seam instead of
	// opening the file itself.
	WriteFile(path, content string) error
	Mkdir(path string) error
	Remove(path string) error
	Rename(from, to string) error
	Copy(from, to string) (int64, error)
	SizeOf(path string) (int64, error)
	// ReadDir lists entry names in the current directory. An empty
	// pattern lists everything; a non-empty pattern filters names
	// through a glob matcher (the doublestar-backed enrichment spec.md
	// itself does not require but does not exclude either).
	ReadDir(pattern string) ([]string, error)
	IsDir(path string) bool
	Cd(path string) error
	Pwd() (string, error)
}

// WriteFileError reports which phase of WriteFile failed: opening/creating
// the destination, or writing its content. `write-file` unwraps this to
// choose between its two documented error codes.
type WriteFileError struct {
	Err          error
	DuringCreate bool
}

func (e *WriteFileError) Error() string { return e.Err.Error() }
func (e *WriteFileError) Unwrap() error { return e.Err }

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	Get() (string, error)
	Set(content string) error
}

// SysInfo answers the fixed set of system-info probes `sys-info` exposes.
type SysInfo interface {
	OSRelease() (string, error)
	OSType() (string, error)
	CPUNum() (float64, error)
	CPUSpeed() (float64, error)
	HostName() (string, error)
	MemSize() (float64, error)
	MemUsed() (float64, error)
}

// ScreenClearer clears the terminal screen.
type ScreenClearer interface {
	Clear() error
}

// AudioPlayer plays a synthesized tone or an existing sound file, blocking
// until playback completes.
type AudioPlayer interface {
	PlaySound(frequencyHz, durationSecs float64) error
	PlayFile(path string) error
}

// Bundle groups every capability the evaluator consumes, plus the standard
// input/output streams (`input`, `print`, `println` and debug tracing all
// flow through In/Out rather than the global os.Stdin/os.Stdout, the same
// seam the teacher's repl.Start(in io.Reader, out io.Writer) uses).
type Bundle struct {
	HTTP      HTTPClient
	Opener    Opener
	FS        FileSystem
	Clipboard Clipboard
	SysInfo   SysInfo
	Screen    ScreenClearer
	Audio     AudioPlayer

	In  io.Reader
	Out io.Writer
}
