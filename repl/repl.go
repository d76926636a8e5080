// Package repl implements tack's interactive read-eval-print loop.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/pgavlin/tack"
)

// HistoryFile is the name of the history file in the user's home directory.
const HistoryFile = ".tack_history"

// LineReader reads one line of input. *liner.State satisfies this interface.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Config configures a REPL session.
type Config struct {
	// Prompt is printed before each line. It may be empty.
	Prompt string

	// Input supplies lines. Run reads until it returns io.EOF.
	Input LineReader

	// Output receives the rendering of each result.
	Output io.Writer

	// Env is the session environment. If nil, a fresh one is created.
	Env *tack.Env

	// Logger receives diagnostics. If nil, log.Default() is used.
	Logger *log.Logger

	// History, if non-nil, is called with each evaluated line.
	History func(line string)
}

// Run evaluates lines from cfg.Input until end of input or until ctx is done.
// Each line is evaluated whole against one long-lived environment, so
// definitions persist from line to line.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Input == nil || cfg.Output == nil {
		return errors.New("repl: Input and Output are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	env := cfg.Env
	if env == nil {
		env = tack.NewEnv(tack.WithLogger(logger))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := cfg.Input.Prompt(cfg.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if cfg.History != nil {
			cfg.History(line)
		}

		if err := tack.Encode(cfg.Output, env.EvalString(line)); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		if _, err := io.WriteString(cfg.Output, "\n"); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
}

// RunTerminal runs a REPL on the controlling terminal with line editing and
// persistent history.
func RunTerminal(ctx context.Context, prompt string, out io.Writer, logger *log.Logger) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, HistoryFile)
		if f, err := os.Open(histPath); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				logger.Printf("reading history: %v", err)
			}
			f.Close()
		}
	}

	err := Run(ctx, Config{
		Prompt:  prompt,
		Input:   ln,
		Output:  out,
		Logger:  logger,
		History: ln.AppendHistory,
	})

	if histPath != "" {
		if werr := writeHistory(ln, histPath); werr != nil {
			logger.Printf("%v", werr)
		}
	}
	return err
}

func writeHistory(ln *liner.State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}
