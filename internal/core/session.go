package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mxgoldstein/log-current/internal/config"
	"github.com/mxgoldstein/log-current/internal/filesystem"
	"github.com/mxgoldstein/log-current/internal/report"
	"github.com/mxgoldstein/log-current/internal/selector"
	"github.com/mxgoldstein/log-current/internal/shell"
	"github.com/mxgoldstein/log-current/pkg/models"
	"go.uber.org/zap"
)

// NoActiveMessage is printed when the changed set is empty
const NoActiveMessage = "No log files are currently active."

// Executor runs the configured command against a file path
type Executor interface {
	Run(ctx context.Context, template, path string) error
}

// Session is one observation run: scan, wait, scan, diff, select, execute
type Session struct {
	config   *config.Config
	logger   *zap.Logger
	out      io.Writer
	in       io.Reader
	sleep    func(time.Duration)
	selector selector.Selector
	executor Executor
}

// NewSession creates a session on the process's standard streams
func NewSession(cfg *config.Config, logger *zap.Logger) *Session {
	return &Session{
		config:   cfg,
		logger:   logger,
		out:      os.Stdout,
		in:       os.Stdin,
		sleep:    time.Sleep,
		executor: shell.NewRunner(logger),
	}
}

// SetOutput sets where console text goes
func (s *Session) SetOutput(w io.Writer) {
	s.out = w
}

// SetInput sets where the interactive selection is read from
func (s *Session) SetInput(r io.Reader) {
	s.in = r
}

// SetSleeper replaces the blocking wait between snapshots
func (s *Session) SetSleeper(fn func(time.Duration)) {
	s.sleep = fn
}

// SetSelector overrides the selector derived from the configuration
func (s *Session) SetSelector(sel selector.Selector) {
	s.selector = sel
}

// SetExecutor sets the command executor
func (s *Session) SetExecutor(e Executor) {
	s.executor = e
}

// Run performs the observation. The directory handle is released on every
// return path.
func (s *Session) Run(ctx context.Context) (*models.RunResult, error) {
	mode := s.config.GetMode()
	result := &models.RunResult{
		Mode:      mode.String(),
		StartTime: time.Now(),
	}
	defer func() {
		result.Duration = time.Since(result.StartTime)
	}()

	s.logger.Info("Starting observation",
		zap.String("directory", s.config.DirectoryPath()),
		zap.String("mode", mode.String()),
		zap.Int("wait", s.config.Wait))

	dir, err := filesystem.OpenDirectory(s.config, s.logger)
	if err != nil {
		return nil, err
	}
	defer dir.Close()
	result.Directory = dir.Path()

	before, err := dir.Snapshot()
	if err != nil {
		return nil, err
	}
	result.Before = before.Len()

	s.wait(mode)

	after, err := dir.Snapshot()
	if err != nil {
		return nil, err
	}
	result.After = after.Len()

	// Auto selection only ever uses the first record, also when listing
	if s.config.Auto {
		result.Changed = FirstChanged(before, after)
	} else {
		result.Changed = Diff(before, after)
	}

	s.logger.Info("Compared snapshots",
		zap.Int("before", result.Before),
		zap.Int("after", result.After),
		zap.Int("changed", result.Changed.Len()))

	if !result.HasChanges() {
		if mode != config.ModeList {
			fmt.Fprintln(s.out, NoActiveMessage)
		}
		return result, nil
	}

	if mode == config.ModeList {
		if err := report.NewGenerator(s.config, s.logger).Generate(s.out, result.Changed); err != nil {
			return result, err
		}
		return result, nil
	}

	idx, err := s.selectorFor(mode).Select(ctx, result.Changed)
	if err != nil {
		return result, fmt.Errorf("selection failed: %w", err)
	}
	if idx == selector.None {
		s.logger.Info("No file selected")
		return result, nil
	}

	selected := result.Changed.At(idx)
	result.Selected = &selected
	path := dir.Path() + selected.Name
	result.Command = shell.Compose(s.config.Command, path)

	s.logger.Info("Selected file",
		zap.String("name", selected.Name),
		zap.Int64("size", selected.Size),
		zap.String("command", result.Command))

	if err := s.executor.Run(ctx, s.config.Command, path); err != nil {
		return result, err
	}
	result.CommandRan = true

	return result, nil
}

// wait blocks for the configured number of whole seconds
func (s *Session) wait(mode config.Mode) {
	seconds := s.config.Wait
	if mode != config.ModeList {
		plural := "s"
		if seconds == 1 {
			plural = ""
		}
		fmt.Fprintf(s.out, "Waiting %d second%s...\n", seconds, plural)
	}
	if seconds > 0 {
		s.sleep(time.Duration(seconds) * time.Second)
	}
}

func (s *Session) selectorFor(mode config.Mode) selector.Selector {
	if s.selector != nil {
		return s.selector
	}
	switch {
	case mode == config.ModeAuto:
		return selector.NewAuto(s.out)
	case s.config.Fuzzy:
		return selector.NewFuzzy()
	default:
		return selector.NewPrompt(s.in, s.out)
	}
}
