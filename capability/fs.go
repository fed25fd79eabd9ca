// ==============================================================================================
// FILE: capability/fs.go
// ==============================================================================================
package capability

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// osFileSystem is the stdlib-backed default FileSystem. ReadDir's optional
// glob filtering is the one place a non-teacher pack dependency
// (doublestar, concretely used by gazelle_cc's language/cc/resolve.go)
// earns a home — see SPEC_FULL.md's Domain Stack table.
type osFileSystem struct{}

// NewFileSystem returns the default, OS-backed FileSystem.
func NewFileSystem() FileSystem { return osFileSystem{} }

func (osFileSystem) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(strings.TrimSpace(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (osFileSystem) WriteFile(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteFileError{Err: err, DuringCreate: true}
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return &WriteFileError{Err: err}
	}
	return nil
}

func (osFileSystem) Mkdir(path string) error {
	return os.Mkdir(path, 0o755)
}

func (osFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (osFileSystem) Rename(from, to string) error {
	return os.Rename(from, to)
}

func (osFileSystem) Copy(from, to string) (int64, error) {
	src, err := os.Open(from)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := os.Create(to)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	return io.Copy(dst, src)
}

func (osFileSystem) SizeOf(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (osFileSystem) ReadDir(pattern string) ([]string, error) {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if pattern == "" {
			names = append(names, name)
			continue
		}
		if ok, _ := doublestar.Match(pattern, name); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func (osFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (osFileSystem) Cd(path string) error {
	return os.Chdir(path)
}

func (osFileSystem) Pwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Clean(dir), nil
}
