// ==============================================================================================
// FILE: evaluator/fsops.go
// ==============================================================================================
// Grounded on functions.rs's shell-like filesystem match arms (`"cd"`, `"mkdir"`, `"rm"`,
// `"rename"`, `"cp"`, `"size-file"`, `"ls"`, `"folder"`, `"pwd"`), routed through
// capability.FileSystem per spec.md §6 instead of calling std::fs/os directly.
// ==============================================================================================

package evaluator

import "github.com/stack-community/stack-lang/value"

func init() {
	registerCommand("cd", func(e *Evaluator) {
		name := e.popString()
		if err := e.Caps.FS.Cd(name); err != nil {
			e.logError(err)
			e.pushError("cd")
			return
		}
		e.Push(value.String(name))
	})

	registerCommand("pwd", func(e *Evaluator) {
		dir, err := e.Caps.FS.Pwd()
		if err != nil {
			e.logError(err)
			e.pushError("cd")
			return
		}
		e.Push(value.String(dir))
	})

	registerCommand("mkdir", func(e *Evaluator) {
		name := e.popString()
		if err := e.Caps.FS.Mkdir(name); err != nil {
			e.logError(err)
			e.pushError("mkdir")
			return
		}
		e.Push(value.String(name))
	})

	registerCommand("rm", func(e *Evaluator) {
		name := e.popString()
		if err := e.Caps.FS.Remove(name); err != nil {
			e.logError(err)
			e.pushError("rm")
			return
		}
		e.Push(value.String(name))
	})

	registerCommand("rename", func(e *Evaluator) {
		to := e.popString()
		from := e.popString()
		if err := e.Caps.FS.Rename(from, to); err != nil {
			e.logError(err)
			e.pushError("rename")
			return
		}
		e.Push(value.String(to))
	})

	registerCommand("cp", func(e *Evaluator) {
		to := e.popString()
		from := e.popString()
		n, err := e.Caps.FS.Copy(from, to)
		if err != nil {
			e.logError(err)
			e.pushError("cp")
			return
		}
		e.Push(value.Number(float64(n)))
	})

	registerCommand("size-file", func(e *Evaluator) {
		path := e.popString()
		n, err := e.Caps.FS.SizeOf(path)
		if err != nil {
			e.logError(err)
			e.pushError("size-file")
			return
		}
		e.Push(value.Number(float64(n)))
	})

	registerCommand("ls", func(e *Evaluator) {
		// Popping on an empty stack yields String("") per the evaluator's
		// documented leniency, which doubles as "no pattern" here — so
		// `ls` with nothing pushed behaves exactly like the original's
		// zero-arg, unfiltered directory listing.
		pattern := e.popString()
		names, err := e.Caps.FS.ReadDir(pattern)
		if err != nil {
			e.logError(err)
			e.pushError("ls")
			return
		}
		items := make([]value.Value, len(names))
		for i, n := range names {
			items[i] = value.String(n)
		}
		e.Push(value.List(items))
	})

	registerCommand("folder", func(e *Evaluator) {
		path := e.popString()
		e.Push(value.Bool(e.Caps.FS.IsDir(path)))
	})
}
