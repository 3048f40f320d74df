package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Project   ProjectConfig   `mapstructure:"project"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Log       LogConfig       `mapstructure:"log"`
	Contracts ContractsConfig `mapstructure:"contracts"`
	Models    ModelsConfig    `mapstructure:"models"`
	DTO       DTOConfig       `mapstructure:"dto"`
	Mirror    MirrorConfig    `mapstructure:"mirror"`
	Cleanup   CleanupConfig   `mapstructure:"cleanup"`
}

// ProjectConfig holds project-specific settings
type ProjectConfig struct {
	RootDir  string   `mapstructure:"root_dir"` // Java source root to scan
	Encoding []string `mapstructure:"encoding"` // Encoding hints (e.g., ["utf-8", "euc-kr"])
}

// AnalysisConfig holds scan behavior settings
type AnalysisConfig struct {
	ExcludeDirs []string `mapstructure:"exclude_dirs"` // Directories to exclude
}

// LogConfig holds log file settings
type LogConfig struct {
	File string `mapstructure:"file"`
}

// ContractsConfig holds API-contract generation settings
type ContractsConfig struct {
	OutputDir  string   `mapstructure:"output_dir"`  // Root of generated contracts
	Format     string   `mapstructure:"format"`      // "yaml" or "json"
	DetectMode string   `mapstructure:"detect_mode"` // "complete" or "tagged"
	Reports    []string `mapstructure:"reports"`     // Subset of excel, html, word
	ReportName string   `mapstructure:"report_name"` // Report file name without extension
}

// ModelsConfig holds TypeScript model generation settings
type ModelsConfig struct {
	OutputDir string `mapstructure:"output_dir"` // Empty means <root_dir>/ts_models
	Workers   int    `mapstructure:"workers"`    // 0 means one per CPU
}

// DTOConfig holds request/response POJO generation settings
type DTOConfig struct {
	Overwrite bool `mapstructure:"overwrite"`
}

// MirrorConfig holds directory mirroring settings
type MirrorConfig struct {
	SourceDir string `mapstructure:"source_dir"`
	TargetDir string `mapstructure:"target_dir"`
}

// CleanupConfig holds settings for the log stripper and blank-line squeezer
type CleanupConfig struct {
	RootDir    string   `mapstructure:"root_dir"`
	Extensions []string `mapstructure:"extensions"`
}

var (
	validFormats     = []string{"yaml", "yml", "json"}
	validDetectModes = []string{"complete", "tagged"}
	validReports     = []string{"excel", "xlsx", "html", "word", "docx"}
)

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "specforge.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set sensible defaults
	setDefaults(v)

	// Determine config file to use
	if configPath == "" {
		configPath = "specforge.yaml"
	}

	// Set config file
	v.SetConfigFile(configPath)

	// Read config file (ignore error if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		// Check if it's just a file not found error
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - use defaults
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Source:    ./src/main/java")
			fmt.Println("  Contracts: ./api_contracts")
			fmt.Println("==========================================")
		} else {
			// Config file found but has some other error
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Normalize paths
	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("project.root_dir", "./src/main/java")
	v.SetDefault("project.encoding", []string{"utf-8", "euc-kr"})

	v.SetDefault("analysis.exclude_dirs", []string{
		"**/test/**",
		"**/target/**",
		"**/build/**",
		"**/out/**",
		"**/.git/**",
		"**/.svn/**",
		"**/node_modules/**",
	})

	v.SetDefault("log.file", "./specforge.log")

	v.SetDefault("contracts.output_dir", "./api_contracts")
	v.SetDefault("contracts.format", "yaml")
	v.SetDefault("contracts.detect_mode", "complete")
	v.SetDefault("contracts.reports", []string{"excel", "html"})
	v.SetDefault("contracts.report_name", "api-contracts")

	v.SetDefault("models.output_dir", "")
	v.SetDefault("models.workers", 0)

	v.SetDefault("dto.overwrite", false)

	v.SetDefault("mirror.source_dir", "src/views/pages")
	v.SetDefault("mirror.target_dir", "cypress/e2e")

	v.SetDefault("cleanup.root_dir", "src")
	v.SetDefault("cleanup.extensions", []string{".ts", ".tsx", ".vue"})
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	paths := []struct {
		name string
		ptr  *string
	}{
		{"project.root_dir", &c.Project.RootDir},
		{"log.file", &c.Log.File},
		{"contracts.output_dir", &c.Contracts.OutputDir},
		{"models.output_dir", &c.Models.OutputDir},
		{"mirror.source_dir", &c.Mirror.SourceDir},
		{"mirror.target_dir", &c.Mirror.TargetDir},
		{"cleanup.root_dir", &c.Cleanup.RootDir},
	}

	for _, p := range paths {
		if *p.ptr == "" {
			continue
		}
		abs, err := filepath.Abs(*p.ptr)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p.name, err)
		}
		*p.ptr = abs
	}

	return nil
}

// SetRootDir overrides project.root_dir (e.g., from a flag or prompt)
func (c *Config) SetRootDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve root_dir: %w", err)
	}
	c.Project.RootDir = abs
	return nil
}

// EnsureOutputDir creates the contracts output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Contracts.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// ModelsOutputDir returns the TypeScript output root
func (c *Config) ModelsOutputDir() string {
	if c.Models.OutputDir != "" {
		return c.Models.OutputDir
	}
	return filepath.Join(c.Project.RootDir, "ts_models")
}

// ModelWorkers returns the worker pool size for model generation
func (c *Config) ModelWorkers() int {
	if c.Models.Workers > 0 {
		return c.Models.Workers
	}
	return runtime.NumCPU()
}

// ReportPath returns the full path for a contract report with the given extension
func (c *Config) ReportPath(ext string) string {
	return filepath.Join(c.Contracts.OutputDir, c.Contracts.ReportName+ext)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Check if root directory exists
	if _, err := os.Stat(c.Project.RootDir); os.IsNotExist(err) {
		return fmt.Errorf("root_dir does not exist: %s", c.Project.RootDir)
	}

	// Check if at least one encoding is specified
	if len(c.Project.Encoding) == 0 {
		return fmt.Errorf("at least one encoding must be specified")
	}

	if !oneOf(strings.ToLower(c.Contracts.Format), validFormats) {
		return fmt.Errorf("contracts.format must be one of %v, got %q", validFormats, c.Contracts.Format)
	}
	if !oneOf(strings.ToLower(c.Contracts.DetectMode), validDetectModes) {
		return fmt.Errorf("contracts.detect_mode must be one of %v, got %q", validDetectModes, c.Contracts.DetectMode)
	}
	for _, r := range c.Contracts.Reports {
		if !oneOf(strings.ToLower(r), validReports) {
			return fmt.Errorf("contracts.reports: unknown report %q (want %v)", r, validReports)
		}
	}
	if len(c.Contracts.Reports) > 0 && c.Contracts.ReportName == "" {
		return fmt.Errorf("contracts.report_name cannot be empty")
	}
	if c.Models.Workers < 0 {
		return fmt.Errorf("models.workers cannot be negative")
	}

	return nil
}

func oneOf(s string, options []string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== specforge Configuration ===")
	fmt.Printf("Project Root:     %s\n", c.Project.RootDir)
	fmt.Printf("Encoding Hints:   %v\n", c.Project.Encoding)
	fmt.Printf("Exclude Dirs:     %v\n", c.Analysis.ExcludeDirs)
	fmt.Printf("Log File:         %s\n", c.Log.File)
	fmt.Printf("Contracts Dir:    %s (%s, %s)\n", c.Contracts.OutputDir, c.Contracts.Format, c.Contracts.DetectMode)
	fmt.Printf("Reports:          %v -> %s.*\n", c.Contracts.Reports, c.Contracts.ReportName)
	fmt.Printf("Models Dir:       %s (%d workers)\n", c.ModelsOutputDir(), c.ModelWorkers())
	fmt.Printf("DTO Overwrite:    %v\n", c.DTO.Overwrite)
	fmt.Printf("Mirror:           %s -> %s\n", c.Mirror.SourceDir, c.Mirror.TargetDir)
	fmt.Printf("Cleanup:          %s %v\n", c.Cleanup.RootDir, c.Cleanup.Extensions)
	fmt.Println("===============================")
}
