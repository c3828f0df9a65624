package selector

import (
	"context"
	"fmt"
	"io"

	"github.com/mxgoldstein/log-current/pkg/models"
)

// Auto always selects the first changed file without prompting
type Auto struct {
	out io.Writer
}

// NewAuto creates an auto selector that announces its pick on out
func NewAuto(out io.Writer) *Auto {
	return &Auto{out: out}
}

// Select returns 0 for a non-empty set
func (a *Auto) Select(_ context.Context, changed *models.Snapshot) (int, error) {
	if changed.Len() == 0 {
		return None, nil
	}
	fmt.Fprintf(a.out, "Active log files:\n\n%s\n", changed.At(0).Name)
	return 0, nil
}
