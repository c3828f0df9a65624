// Package selector picks one file out of the changed set.
package selector

import (
	"context"
	"fmt"

	"github.com/mxgoldstein/log-current/pkg/models"
)

// None is returned when no file was selected
const None = -1

// Selector picks an index into the changed snapshot, or None
type Selector interface {
	Select(ctx context.Context, changed *models.Snapshot) (int, error)
}

// InputError is an operator selection that is not an integer in range.
// It is recoverable: the prompt asks again.
type InputError struct {
	Input string
	Max   int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("Invalid selection %q, enter a number between 0 and %d", e.Input, e.Max)
}
