package selector

import (
	"context"
	"errors"
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/mxgoldstein/log-current/pkg/models"
)

// Fuzzy lets the operator pick a changed file with a fuzzy finder
type Fuzzy struct{}

// NewFuzzy creates a fuzzy finder selector
func NewFuzzy() *Fuzzy {
	return &Fuzzy{}
}

// Select opens the finder on the terminal; Esc or Ctrl+C means no selection
func (f *Fuzzy) Select(ctx context.Context, changed *models.Snapshot) (int, error) {
	if changed.Len() == 0 {
		return None, nil
	}
	if err := ctx.Err(); err != nil {
		return None, err
	}

	records := changed.Records()
	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			return records[i].Name
		},
		fuzzyfinder.WithPromptString("log> "),
		fuzzyfinder.WithPreviewWindow(preview(records)),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return None, nil
		}
		return None, fmt.Errorf("fuzzy finder error: %w", err)
	}

	return idx, nil
}

func preview(records []models.FileRecord) func(i, w, h int) string {
	return func(i, w, h int) string {
		if i < 0 || i >= len(records) {
			return "Select the log file to open. Press Enter to confirm, Esc to quit."
		}
		return fmt.Sprintf("Name: %s\nSize: %d bytes", records[i].Name, records[i].Size)
	}
}
