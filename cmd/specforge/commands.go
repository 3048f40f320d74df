package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"specforge/internal/cleanup"
	"specforge/internal/config"
	"specforge/internal/contract"
	"specforge/internal/dto"
	"specforge/internal/exporter"
	"specforge/internal/logger"
	"specforge/internal/mirror"
	"specforge/internal/tsmodel"
	"specforge/internal/ui"
)

// app carries the state shared by every subcommand
type app struct {
	configPath  string
	rootDir     string
	verbose     bool
	interactive bool
	quiet       bool

	cfg *config.Config
	fs  afero.Fs
}

func newRootCommand() *cobra.Command {
	a := &app{fs: afero.NewOsFs()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: appDesc,
		Long: color.CyanString(`specforge - generators and cleanup passes for Spring + TypeScript codebases

  contracts   synthesize OpenAPI contracts from *Controller.java files
  models      @Entity classes -> TypeScript interfaces
  dto         @Entity classes -> {Entity}Request / {Entity}Response POJOs
  mirror      recreate a directory layout under another root
  strip-logs  remove console.log/error/warn/info calls
  squeeze     collapse runs of blank lines`),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "specforge.yaml", "Path to configuration file")
	flags.StringVar(&a.rootDir, "root", "", "Override project.root_dir")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging (DEBUG level)")
	flags.BoolVarP(&a.interactive, "interactive", "i", false, "Prompt for the source root")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Disable banner and progress bars")

	rootCmd.AddCommand(
		newVersionCommand(),
		a.newContractsCommand(),
		a.newModelsCommand(),
		a.newDTOCommand(),
		a.newMirrorCommand(),
		a.newCleanupCommand("strip-logs", "Remove console.log/error/warn/info calls", cleanup.StripConsoleCalls),
		a.newCleanupCommand("squeeze", "Collapse runs of blank lines into one", cleanup.SqueezeBlankLines),
	)

	return rootCmd
}

// setup loads configuration, applies root overrides and starts the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if !a.quiet {
		printBanner()
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.rootDir != "" {
		if err := cfg.SetRootDir(a.rootDir); err != nil {
			return err
		}
	}

	if a.interactive {
		root := cfg.Project.RootDir
		prompt := &survey.Input{
			Message: "Source root directory:",
			Default: root,
		}
		if err := survey.AskOne(prompt, &root, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
		if err := cfg.SetRootDir(root); err != nil {
			return err
		}
	}

	if err := logger.Init(os.Stdout, cfg.Log.File, a.verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if logger.IsVerbose() {
		cfg.Print()
	}

	a.cfg = cfg
	return nil
}

func (a *app) pipeline(phases ...ui.Phase) *ui.Pipeline {
	p := ui.NewPipeline(phases)
	if a.quiet {
		p.Disable()
	}
	return p
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// No configuration or log file needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			titleColor.Fprintf(cmd.OutOrStdout(), "%s ", appName)
			fmt.Fprintf(cmd.OutOrStdout(), "v%s (%s)\n%s\n", appVersion, runtime.Version(), appDesc)
		},
	}
}

func (a *app) newContractsCommand() *cobra.Command {
	var (
		outputDir  string
		format     string
		detectMode string
		reports    []string
	)

	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Generate OpenAPI contracts for every *Controller.java",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if outputDir != "" {
				abs, err := filepath.Abs(outputDir)
				if err != nil {
					return err
				}
				cfg.Contracts.OutputDir = abs
			}
			if cmd.Flags().Changed("format") {
				cfg.Contracts.Format = format
			}
			if cmd.Flags().Changed("detect-mode") {
				cfg.Contracts.DetectMode = detectMode
			}
			if cmd.Flags().Changed("reports") {
				cfg.Contracts.Reports = reports
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := cfg.EnsureOutputDir(); err != nil {
				return err
			}

			fmtKind, err := contract.ParseFormat(cfg.Contracts.Format)
			if err != nil {
				return err
			}
			mode, err := contract.ParseDetectMode(cfg.Contracts.DetectMode)
			if err != nil {
				return err
			}

			pipeline := a.pipeline(ui.PhaseGenerating, ui.PhaseReporting)

			// --- Phase 1: Contracts ---
			logger.Info("Phase 1: Generating contracts from %s...", cfg.Project.RootDir)
			genBar := pipeline.NextPhase(0)
			index, err := contract.NewGenerator(a.fs, mode, fmtKind).
				WithExcludes(cfg.Analysis.ExcludeDirs).
				WithTracker(genBar).
				ProcessDirectory(cmd.Context(), cfg.Project.RootDir, cfg.Contracts.OutputDir)
			if err != nil {
				pipeline.Finish()
				return fmt.Errorf("contract generation failed: %w", err)
			}

			// --- Phase 2: Reports ---
			exporters := exporter.GetExporters(cfg.Contracts.Reports)
			logger.Info("Phase 2: Writing %d reports...", len(exporters))
			reportBar := pipeline.NextPhase(len(exporters))

			var (
				written      []string
				exportErrors []error
			)
			for _, exp := range exporters {
				reportBar.Describe(exp.Name())
				path, err := exp.Export(a.fs, index, cfg)
				if err != nil {
					logger.Error("%s export failed: %v", exp.Name(), err)
					exportErrors = append(exportErrors, err)
				} else {
					logger.Debug("Report written: %s", path)
					written = append(written, path)
				}
				reportBar.Increment()
			}
			pipeline.Finish()

			for _, path := range written {
				pipeline.PrintSummary("  → " + path)
			}

			if len(exportErrors) > 0 {
				return fmt.Errorf("one or more exports failed: %d errors", len(exportErrors))
			}

			logger.Success("Generated %d contracts (%d endpoints, %d synthesized). Check [%s] directory.",
				len(index.Contracts), index.EndpointCount(), index.SynthesizedCount(), cfg.Contracts.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Override contracts.output_dir")
	cmd.Flags().StringVar(&format, "format", "yaml", "Contract format (yaml, json)")
	cmd.Flags().StringVar(&detectMode, "detect-mode", "complete", "Missing-endpoint detection (complete, tagged)")
	cmd.Flags().StringSliceVar(&reports, "reports", nil, "Reports to write (excel, html, word)")
	return cmd
}

func (a *app) newModelsCommand() *cobra.Command {
	var (
		outputDir string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Generate TypeScript interfaces from @Entity classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if outputDir != "" {
				abs, err := filepath.Abs(outputDir)
				if err != nil {
					return err
				}
				cfg.Models.OutputDir = abs
			}
			if cmd.Flags().Changed("workers") {
				cfg.Models.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			pipeline := a.pipeline(ui.PhaseGenerating)
			bar := pipeline.NextPhase(0)
			written, err := tsmodel.NewGenerator(a.fs, cfg.ModelWorkers()).
				WithExcludes(cfg.Analysis.ExcludeDirs).
				WithTracker(bar).
				Generate(cmd.Context(), cfg.Project.RootDir, cfg.ModelsOutputDir())
			pipeline.Finish()
			if err != nil {
				return fmt.Errorf("model generation failed: %w", err)
			}

			logger.Success("TypeScript models have been generated in [%s] (%d files)", cfg.ModelsOutputDir(), len(written))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Override models.output_dir")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker count (0 = one per CPU)")
	return cmd
}

func (a *app) newDTOCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "dto",
		Short: "Generate {Entity}Request / {Entity}Response classes next to each @Entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("overwrite") {
				cfg.DTO.Overwrite = overwrite
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			result, err := dto.NewGenerator(a.fs, cfg.DTO.Overwrite).
				WithExcludes(cfg.Analysis.ExcludeDirs).
				Generate(cmd.Context(), cfg.Project.RootDir)
			if err != nil {
				return fmt.Errorf("dto generation failed: %w", err)
			}

			logger.Success("Created %d files, kept %d existing", len(result.Created), len(result.Existing))
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing Request/Response files")
	return cmd
}

func (a *app) newMirrorCommand() *cobra.Command {
	var source, target string

	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Recreate the source directory layout under the target directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if source != "" {
				cfg.Mirror.SourceDir = source
			}
			if target != "" {
				cfg.Mirror.TargetDir = target
			}

			result, err := mirror.Tree(cmd.Context(), a.fs, cfg.Mirror.SourceDir, cfg.Mirror.TargetDir)
			if err != nil {
				return fmt.Errorf("mirror failed: %w", err)
			}

			logger.Success("Created %d directories, %d already existed", len(result.Created), len(result.Existing))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Override mirror.source_dir")
	cmd.Flags().StringVar(&target, "target", "", "Override mirror.target_dir")
	return cmd
}

func (a *app) newCleanupCommand(use, short string, rewrite cleanup.Rewrite) *cobra.Command {
	var (
		dir        string
		extensions []string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if dir != "" {
				cfg.Cleanup.RootDir = dir
			}
			if cmd.Flags().Changed("ext") {
				cfg.Cleanup.Extensions = extensions
			}

			var ticker cleanup.Ticker
			if !a.quiet {
				spinner := ui.NewSpinner(fmt.Sprintf("[%s] %s", ui.PhaseCleaning, cfg.Cleanup.RootDir), os.Stdout)
				defer spinner.Stop()
				ticker = spinner
			}

			result, err := cleanup.ProcessDirectory(cmd.Context(), a.fs, cfg.Cleanup.RootDir, cfg.Cleanup.Extensions, rewrite, ticker)
			if err != nil {
				return fmt.Errorf("%s failed: %w", use, err)
			}
			if len(result.Failed) > 0 {
				logger.Warn("%d of %d files could not be processed: see %s", len(result.Failed), result.Scanned, logger.GetLogFilePath())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Override cleanup.root_dir")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "File extensions, e.g. .ts,.tsx,.vue")
	return cmd
}
