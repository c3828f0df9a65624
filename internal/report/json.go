package report

import (
	"encoding/json"
	"io"

	"github.com/mxgoldstein/log-current/pkg/models"
)

// generateJSON prints the records as an indented JSON array
func generateJSON(w io.Writer, changed *models.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(changed))
}
