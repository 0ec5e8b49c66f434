// Package repl implements the Read-Eval-Print Loop for lci.
//
// The REPL wraps each line the user types as a standalone `HAI 1.2 ...
// KTHXBYE` program, parses and evaluates it against one persistent
// Evaluator (so declarations and IT survive across lines), and prints
// the resulting IT value the way VISIBLE would.
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/golci/lci/config"
	"github.com/golci/lci/eval"
	"github.com/golci/lci/objects"
	"github.com/golci/lci/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const exitCommand = ":EXIT"

// Repl is a configured interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Cfg     *config.Config
}

// New creates a Repl with the given banner and chrome.
func New(banner, version, author, line, license, prompt string, cfg *config.Config) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Cfg: cfg}
}

// PrintBannerInfo writes the welcome banner and usage instructions to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to lci, the LOLCODE interpreter!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of LOLCODE and press enter. No HAI/KTHXBYE needed.")
	cyanColor.Fprintf(writer, "%s\n", "Type ':EXIT' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop, reading lines via readline and writing
// results/diagnostics to writer. It returns once the user exits or EOFs.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := eval.New(writer, bufio.NewReader(reader), r.Cfg, "<repl>")

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, exitCommand) {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, ev)
	}
}

// evalLine wraps line as a one-statement program, parses and runs it
// against ev, and prints IT on success or the diagnostic on failure. A
// panic recovered here (an interpreter bug, not a LOLCODE-level error)
// is reported the same way a runtime error would be, and the REPL keeps
// going either way.
func (r *Repl) evalLine(writer io.Writer, line string, ev *eval.Evaluator) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", rec)
		}
	}()

	src := "HAI 1.2\n" + line + "\nKTHXBYE\n"
	main, perr := parser.Parse(src, "<repl>")
	if perr != nil {
		redColor.Fprintf(writer, "%s\n", perr.Error())
		return
	}

	if rerr := ev.Run(main); rerr != nil {
		redColor.Fprintf(writer, "%s\n", rerr.Error())
		return
	}

	if ev.Global.It == nil {
		return
	}
	if _, isNil := ev.Global.It.(objects.Nil); isNil {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", ev.Global.It.String())
}

// Banner is the default ASCII-art greeting shown at REPL startup.
var Banner = strings.TrimRight(`
   _            _
  | |   ___ (_)
  | |  / __|| |
  | | | (__ | |
  |_|  \___||_|
`, "\n")

// Line is the default separator drawn above and below the banner.
var Line = strings.Repeat("-", 60)
