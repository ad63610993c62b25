// Command monkey runs Monkey programs and hosts the interactive REPL.
//
// Usage:
//
//	monkey run <file.mk>    Run a script.
//	monkey repl             Start the REPL.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	monkey "github.com/RafRunner/ts-rust-zig-deez"
)

const (
	appName     = "monkey"
	historyFile = ".monkey_history"
	promptMain  = ">> "
	promptCont  = ".. "
)

const banner = "Monkey REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Monkey interpreter

Usage:
  %s run <file.mk>    Run a script.
  %s repl             Start the REPL.

`, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.mk>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	ip := monkey.NewInterpreter()
	if _, err := ip.EvalPersistentSource(string(src)); err != nil {
		fmt.Fprintln(os.Stderr, monkey.WrapErrorWithName(err, file, string(src)).Error())
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := monkey.NewInterpreter()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		v, err := ip.EvalPersistentSource(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(monkey.WrapErrorWithSource(err, code).Error()))
			continue
		}
		fmt.Println(blue(v.Inspect()))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe reads lines until the accumulated input parses, or fails
// with an error that is not plain end-of-input. Incomplete input keeps the
// continuation prompt going so multi-line functions can be typed naturally.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C: drop the partial input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := monkey.Parse(src); perr == nil || !monkey.IsIncomplete(perr) {
			return src, true
		}
	}
}
