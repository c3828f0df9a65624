package report

import (
	"fmt"
	"io"

	"github.com/mxgoldstein/log-current/internal/config"
	"github.com/mxgoldstein/log-current/pkg/models"
	"go.uber.org/zap"
)

// Generator renders the changed set for list-only runs
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new listing generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate writes changed to w in the configured format
func (g *Generator) Generate(w io.Writer, changed *models.Snapshot) error {
	format := g.config.Format
	if format == "" {
		format = config.FormatText
	}

	g.logger.Debug("Generating listing",
		zap.String("format", format),
		zap.Int("files", changed.Len()))

	var err error
	switch format {
	case config.FormatText:
		err = generateText(w, changed)
	case config.FormatJSON:
		err = generateJSON(w, changed)
	case config.FormatYAML:
		err = generateYAML(w, changed)
	default:
		return fmt.Errorf("unknown listing format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("failed to generate %s listing: %w", format, err)
	}
	return nil
}

// records never returns nil so empty sets encode as [] rather than null
func records(changed *models.Snapshot) []models.FileRecord {
	recs := changed.Records()
	if recs == nil {
		recs = []models.FileRecord{}
	}
	return recs
}
