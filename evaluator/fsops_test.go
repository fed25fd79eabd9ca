// ==============================================================================================
// FILE: evaluator/fsops_test.go
// ==============================================================================================
package evaluator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stack-community/stack-lang/capability"
	"github.com/stack-community/stack-lang/value"
)

// fakeFS is an in-memory capability.FileSystem stand-in so these tests
// never touch the real disk.
type fakeFS struct {
	dirs        map[string]bool
	renamed     map[string]string
	written     map[string]string
	cwd         string
	failOn      string
	lastPattern string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		dirs:    map[string]bool{},
		renamed: map[string]string{},
		written: map[string]string{},
		cwd:     "/home/stack",
	}
}

func (f *fakeFS) ReadFile(path string) (string, error) { return "", nil }

func (f *fakeFS) WriteFile(path, content string) error {
	switch f.failOn {
	case "create-file":
		return &capability.WriteFileError{Err: errors.New("boom"), DuringCreate: true}
	case "write-file":
		return &capability.WriteFileError{Err: errors.New("boom")}
	}
	f.written[path] = content
	return nil
}

// lastPattern records whatever pattern ls last forwarded, so tests can
// confirm the evaluator actually pops and passes one through rather than
// always querying with "" (the unfiltered case the doublestar matcher
// never touches).
func (f *fakeFS) ReadDir(pattern string) ([]string, error) {
	f.lastPattern = pattern
	if f.failOn == "ls" {
		return nil, errors.New("boom")
	}
	if pattern == "*.txt" {
		return []string{"a.txt", "b.txt"}, nil
	}
	if pattern != "" {
		return nil, nil
	}
	return []string{"a.txt", "b.txt", "c.md"}, nil
}

func (f *fakeFS) Mkdir(path string) error {
	if f.failOn == "mkdir" {
		return errors.New("boom")
	}
	f.dirs[path] = true
	return nil
}

func (f *fakeFS) Remove(path string) error {
	if f.failOn == "rm" {
		return errors.New("boom")
	}
	delete(f.dirs, path)
	return nil
}

func (f *fakeFS) Rename(from, to string) error {
	if f.failOn == "rename" {
		return errors.New("boom")
	}
	f.renamed[from] = to
	return nil
}

func (f *fakeFS) Copy(from, to string) (int64, error) {
	if f.failOn == "cp" {
		return 0, errors.New("boom")
	}
	return 42, nil
}

func (f *fakeFS) SizeOf(path string) (int64, error) {
	if f.failOn == "size-file" {
		return 0, errors.New("boom")
	}
	return 99, nil
}

func (f *fakeFS) IsDir(path string) bool { return f.dirs[path] }

func (f *fakeFS) Cd(path string) error {
	if f.failOn == "cd" {
		return errors.New("boom")
	}
	f.cwd = path
	return nil
}

func (f *fakeFS) Pwd() (string, error) {
	if f.failOn == "pwd" {
		return "", errors.New("boom")
	}
	return f.cwd, nil
}

func newFSTestEvaluator(fs *fakeFS) *Evaluator {
	var out bytes.Buffer
	caps := &capability.Bundle{
		In:  bytes.NewBufferString(""),
		Out: &out,
		FS:  fs,
	}
	return New(caps)
}

func TestMkdirRmRoundTrip(t *testing.T) {
	fs := newFakeFS()
	e := newFSTestEvaluator(fs)
	e.Run("(scratch) mkdir")
	if !fs.dirs["scratch"] {
		t.Fatalf("mkdir did not create scratch dir")
	}
	top := e.Stack[len(e.Stack)-1]
	if top.ToString() != "scratch" {
		t.Fatalf("mkdir pushed %v, want String(scratch)", top)
	}

	e.Run("(scratch) rm")
	if fs.dirs["scratch"] {
		t.Fatalf("rm did not remove scratch dir")
	}
}

func TestMkdirErrorPushesDocumentedCode(t *testing.T) {
	fs := newFakeFS()
	fs.failOn = "mkdir"
	e := newFSTestEvaluator(fs)
	e.Run("(scratch) mkdir")
	top := e.Stack[len(e.Stack)-1]
	if top.Kind() != value.KindError || top.ErrorCode() != "mkdir" {
		t.Fatalf("got %v, want error:mkdir", top)
	}
}

func TestRenamePushesDestinationName(t *testing.T) {
	fs := newFakeFS()
	e := newFSTestEvaluator(fs)
	e.Run("(old.txt) (new.txt) rename")
	if fs.renamed["old.txt"] != "new.txt" {
		t.Fatalf("rename did not record old.txt -> new.txt")
	}
	top := e.Stack[len(e.Stack)-1]
	if top.ToString() != "new.txt" {
		t.Fatalf("rename pushed %v, want String(new.txt)", top)
	}
}

func TestCpPushesByteCount(t *testing.T) {
	fs := newFakeFS()
	e := newFSTestEvaluator(fs)
	e.Run("(src.txt) (dst.txt) cp")
	top := e.Stack[len(e.Stack)-1]
	if top.Kind() != value.KindNumber || top.ToNumber() != 42 {
		t.Fatalf("cp = %v, want Number(42)", top)
	}
}

func TestSizeFileErrorPushesDocumentedCode(t *testing.T) {
	fs := newFakeFS()
	fs.failOn = "size-file"
	e := newFSTestEvaluator(fs)
	e.Run("(missing.txt) size-file")
	top := e.Stack[len(e.Stack)-1]
	if top.Kind() != value.KindError || top.ErrorCode() != "size-file" {
		t.Fatalf("got %v, want error:size-file", top)
	}
}

func TestLsWithNoPatternListsEverything(t *testing.T) {
	fs := newFakeFS()
	e := newFSTestEvaluator(fs)
	e.Run("ls")
	if fs.lastPattern != "" {
		t.Fatalf("ls with nothing pushed forwarded pattern %q, want \"\"", fs.lastPattern)
	}
	top := e.Stack[len(e.Stack)-1]
	list := top.Elements()
	if len(list) != 3 {
		t.Fatalf("ls = %v, want 3 unfiltered entries", top.Display())
	}
}

func TestLsForwardsGlobPatternFromStack(t *testing.T) {
	fs := newFakeFS()
	e := newFSTestEvaluator(fs)
	e.Run("(*.txt) ls")
	if fs.lastPattern != "*.txt" {
		t.Fatalf("ls did not forward pushed pattern: got %q, want *.txt", fs.lastPattern)
	}
	top := e.Stack[len(e.Stack)-1]
	list := top.Elements()
	if len(list) != 2 || list[0].ToString() != "a.txt" || list[1].ToString() != "b.txt" {
		t.Fatalf("ls(*.txt) = %v, want [a.txt b.txt]", top.Display())
	}
}

func TestFolderReportsDirectoryness(t *testing.T) {
	fs := newFakeFS()
	fs.dirs["real-dir"] = true
	e := newFSTestEvaluator(fs)

	e.Run("(real-dir) folder")
	if !e.Stack[len(e.Stack)-1].ToBool() {
		t.Fatalf("folder(real-dir) = false, want true")
	}

	e.Run("(not-a-dir) folder")
	if e.Stack[len(e.Stack)-1].ToBool() {
		t.Fatalf("folder(not-a-dir) = true, want false")
	}
}

func TestCdAndPwd(t *testing.T) {
	fs := newFakeFS()
	e := newFSTestEvaluator(fs)
	e.Run("(/tmp/project) cd pwd")
	top := e.Stack[len(e.Stack)-1]
	if top.ToString() != "/tmp/project" {
		t.Fatalf("pwd after cd = %v, want /tmp/project", top)
	}
}

func TestCdErrorPushesDocumentedCode(t *testing.T) {
	fs := newFakeFS()
	fs.failOn = "cd"
	e := newFSTestEvaluator(fs)
	e.Run("(/no/such/dir) cd")
	top := e.Stack[len(e.Stack)-1]
	if top.Kind() != value.KindError || top.ErrorCode() != "cd" {
		t.Fatalf("got %v, want error:cd", top)
	}
}
