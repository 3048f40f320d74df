package exporter

import (
	"github.com/spf13/afero"

	"specforge/internal/config"
	"specforge/internal/model"
)

// Exporter is the unified interface for all reporting strategies
type Exporter interface {
	// Name is the report kind as written in contracts.reports
	Name() string
	Export(fsys afero.Fs, index *model.ContractIndex, cfg *config.Config) (string, error)
}
