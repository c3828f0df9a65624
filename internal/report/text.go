package report

import (
	"fmt"
	"io"

	"github.com/mxgoldstein/log-current/pkg/models"
)

// generateText prints one name per line
func generateText(w io.Writer, changed *models.Snapshot) error {
	for _, name := range changed.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
