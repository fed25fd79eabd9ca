// ==============================================================================================
// FILE: evaluator/io.go
// ==============================================================================================
// Grounded on functions.rs's I/O match arms. The commands that talk to the outside world
// (`request`, `open`, filesystem, clipboard, sys-info, `cls`/`clear`, `play-sound`/`play-file`)
// go through capability.Bundle instead of calling os/net/exec directly, the external-collaborator
// seam spec.md §6 specifies — the teacher has no equivalent boundary, so this is adapted from the
// teacher's repl.Start(io.Reader, io.Writer) stream-abstraction idiom, widened to cover every
// external effect this language has.
// ==============================================================================================

package evaluator

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/stack-community/stack-lang/capability"
	"github.com/stack-community/stack-lang/value"
)

func init() {
	registerCommand("write-file", func(e *Evaluator) {
		path := e.popString()
		content := e.popString()
		if err := e.Caps.FS.WriteFile(path, content); err != nil {
			e.logError(err)
			var wfErr *capability.WriteFileError
			if errors.As(err, &wfErr) && wfErr.DuringCreate {
				e.pushError("create-file")
			} else {
				e.pushError("write-file")
			}
		}
	})

	registerCommand("read-file", func(e *Evaluator) {
		path := e.popString()
		text, err := e.Caps.FS.ReadFile(path)
		if err != nil {
			e.logError(err)
			e.pushError("read-file")
			return
		}
		e.Push(value.String(text))
	})

	registerCommand("input", func(e *Evaluator) {
		prompt := e.popString()
		fmt.Fprint(e.Caps.Out, prompt)
		scanner := bufio.NewScanner(e.Caps.In)
		line := ""
		if scanner.Scan() {
			line = scanner.Text()
		}
		e.Push(value.String(line))
	})

	registerCommand("print", func(e *Evaluator) {
		e.writeOutput(e.popString(), false)
	})

	registerCommand("println", func(e *Evaluator) {
		e.writeOutput(e.popString(), true)
	})

	registerCommand("args-cmd", func(e *Evaluator) {
		items := make([]value.Value, len(os.Args))
		for i, a := range os.Args {
			items[i] = value.String(a)
		}
		e.Push(value.List(items))
	})

	registerCommand("request", func(e *Evaluator) {
		url := e.popString()
		body, err := e.Caps.HTTP.Get(url)
		if err != nil {
			e.logError(err)
			e.pushError("request")
			return
		}
		e.Push(value.String(body))
	})

	registerCommand("open", func(e *Evaluator) {
		name := e.popString()
		if err := e.Caps.Opener.Open(name); err != nil {
			e.logError(err)
			e.pushError("open")
		}
	})

	registerCommand("get-clipboard", func(e *Evaluator) {
		text, err := e.Caps.Clipboard.Get()
		if err != nil {
			e.logError(err)
			e.pushError("get-clipboard")
			return
		}
		e.Push(value.String(text))
	})

	registerCommand("set-clipboard", func(e *Evaluator) {
		text := e.popString()
		if err := e.Caps.Clipboard.Set(text); err != nil {
			e.logError(err)
			e.pushError("set-clipboard")
		}
	})

	registerCommand("sys-info", func(e *Evaluator) {
		kind := e.popString()
		var (
			s   string
			n   float64
			err error
			num bool
		)
		switch kind {
		case "os-release":
			s, err = e.Caps.SysInfo.OSRelease()
		case "os-type":
			s, err = e.Caps.SysInfo.OSType()
		case "cpu-num":
			n, err = e.Caps.SysInfo.CPUNum()
			num = true
		case "cpu-speed":
			n, err = e.Caps.SysInfo.CPUSpeed()
			num = true
		case "host-name":
			s, err = e.Caps.SysInfo.HostName()
		case "mem-size":
			n, err = e.Caps.SysInfo.MemSize()
			num = true
		case "mem-used":
			n, err = e.Caps.SysInfo.MemUsed()
			num = true
		default:
			e.pushError("sys-info")
			return
		}
		if err != nil {
			e.logError(err)
			e.pushError("sys-info")
			return
		}
		if num {
			e.Push(value.Number(n))
		} else {
			e.Push(value.String(s))
		}
	})

	clearScreen := func(e *Evaluator) {
		if err := e.Caps.Screen.Clear(); err != nil {
			e.logError(err)
			e.pushError("failed-to-clear-screen")
		}
	}
	registerCommand("cls", clearScreen)
	registerCommand("clear", clearScreen)

	registerCommand("play-sound", func(e *Evaluator) {
		duration := e.popNumber()
		frequency := e.popNumber()
		if err := e.Caps.Audio.PlaySound(frequency, duration); err != nil {
			e.logError(err)
		}
	})

	registerCommand("play-file", func(e *Evaluator) {
		path := e.popString()
		if err := e.Caps.Audio.PlayFile(path); err != nil {
			e.logError(err)
			e.pushError("play-file")
			return
		}
		e.Push(value.String(path))
	})
}

// writeOutput performs the three escape substitutions spec.md §4.4
// documents (the two-character sequences the lexer preserved get turned
// back into real control bytes here, the last step of the round trip that
// starts at Reescape) and applies the debug-mode `[Output]: ` prefix.
func (e *Evaluator) writeOutput(text string, newline bool) {
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\t`, "\t")
	text = strings.ReplaceAll(text, `\r`, "\r")

	if e.Debug {
		fmt.Fprintf(e.Caps.Out, "[Output]: %s\n", text)
		return
	}
	if newline {
		fmt.Fprintln(e.Caps.Out, text)
	} else {
		fmt.Fprint(e.Caps.Out, text)
	}
}

// logError writes an advisory diagnostic in debug mode without ever
// aborting the evaluator, matching functions.rs's executor.log_print calls.
func (e *Evaluator) logError(err error) {
	if e.Debug {
		fmt.Fprintf(e.Caps.Out, "[Output]: error: %s\n", err)
	}
}
