package contract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"specforge/internal/analyzer"
	"specforge/internal/logger"
	"specforge/internal/model"
)

const controllerSuffix = "Controller.java"

// ProcessDirectory generates a contract for every *Controller.java under root.
// Output mirrors the controller's directory below outRoot as <Entity>_api.<ext>.
// The first failing controller aborts the run.
func (g *Generator) ProcessDirectory(ctx context.Context, root, outRoot string) (*model.ContractIndex, error) {
	controllers, err := analyzer.ScanDirectory(g.fs, root, g.excludes, func(path string) bool {
		return strings.HasSuffix(filepath.Base(path), controllerSuffix)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Found %d controllers under %s", len(controllers), root)
	if g.tracker != nil {
		g.tracker.SetTotal(len(controllers))
	}

	index := &model.ContractIndex{
		SourceRoot:  root,
		OutputRoot:  outRoot,
		GeneratedAt: time.Now(),
		Contracts:   make([]*model.ContractResult, 0, len(controllers)),
	}

	for _, controllerPath := range controllers {
		dir := filepath.Dir(controllerPath)
		entity := strings.TrimSuffix(filepath.Base(controllerPath), controllerSuffix)

		rel, err := filepath.Rel(root, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to relativize %s: %w", dir, err)
		}

		outputPath := filepath.Join(outRoot, rel, fmt.Sprintf("%s_api.%s", entity, g.format.Ext()))
		result, err := g.Generate(ctx, controllerPath,
			filepath.Join(dir, entity+"Request.java"),
			filepath.Join(dir, entity+"Response.java"),
			outputPath)
		if err != nil {
			logger.LogParseError(controllerPath, err, "contract generation")
			return nil, err
		}

		index.Contracts = append(index.Contracts, result)
		logger.Info("Contract generated: %s", outputPath)
		if g.tracker != nil {
			g.tracker.Increment()
		}
	}

	return index, nil
}
