package editor

import (
	"fmt"
	"log"
	"os"

	"github.com/gokilo/editor/internal/buffer"
	"github.com/gokilo/editor/internal/syntax"
	"github.com/gokilo/editor/internal/terminal"
	"github.com/gokilo/editor/internal/viewport"
)

const statusHelp = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Run wires a Terminal, Buffer, Viewport and Controller together and
// drives the controller loop until the user quits or a fatal error
// occurs (spec.md §4.H, §5, §7). It returns the process exit code.
func Run(cfg Config) int {
	logger, logFile, err := newSessionLogger()
	if err == nil {
		defer logFile.Close()
	}

	term := terminal.New(os.Stdin, os.Stdout)
	if err := term.EnableRaw(); err != nil {
		return die(term, logger, fmt.Errorf("enable raw mode: %w", err))
	}
	defer term.Restore()

	defs, err := syntax.LoadDatabase()
	if err != nil {
		return die(term, logger, fmt.Errorf("load syntax database: %w", err))
	}

	buf := buffer.New(defs)
	if cfg.Path != "" {
		if err := buf.Load(cfg.Path); err != nil {
			return die(term, logger, fmt.Errorf("open %s: %w", cfg.Path, err))
		}
	}

	cols, rows, err := term.Size()
	if err != nil {
		return die(term, logger, fmt.Errorf("probe window size: %w", err))
	}

	view := viewport.New(rows-2, cols)
	ctrl := NewController(term, buf, view, logger)
	ctrl.status.Set(statusHelp)

	for {
		running, err := ctrl.Tick()
		if err != nil {
			return die(term, logger, err)
		}
		if !running {
			break
		}
	}

	fmt.Print("\x1b[2J\x1b[H")
	return 0
}

// die restores the terminal, clears the screen, prints a strerror-style
// message and returns the exit code (spec.md §7(a): "fatal, surfaced via
// die() which clears screen, prints message, and exits with code 1").
func die(term *terminal.Terminal, logger *log.Logger, err error) int {
	term.Restore()
	fmt.Print("\x1b[2J\x1b[H")
	fmt.Fprintln(os.Stderr, err)
	if logger != nil {
		logger.Printf("fatal: %s", err)
	}
	return 1
}
