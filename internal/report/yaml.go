package report

import (
	"io"

	"github.com/mxgoldstein/log-current/pkg/models"
	"gopkg.in/yaml.v3"
)

// generateYAML prints the records as a YAML sequence
func generateYAML(w io.Writer, changed *models.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(changed)); err != nil {
		return err
	}
	return enc.Close()
}
