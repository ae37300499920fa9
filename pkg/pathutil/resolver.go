// Package pathutil provides centralized path management for FEC export files
// and configuration.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// PathResolver manages paths for FEC export files and the tables override.
type PathResolver struct {
	exportRoot string
	siren      string
	tablesPath string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// ExportRoot is the root directory for FEC export files.
	ExportRoot string
	// SIREN is the company identifier used in regulator file names. Optional;
	// files are named FEC{yyyymmdd}.txt when empty.
	SIREN string
	// TablesPath is the path to the accounting tables YAML override. Optional.
	TablesPath string
}

// New creates a new PathResolver with the given configuration.
func New(config Config) *PathResolver {
	root := config.ExportRoot
	if root == "" {
		root = "./exports"
	}
	return &PathResolver{
		exportRoot: root,
		siren:      config.SIREN,
		tablesPath: config.TablesPath,
	}
}

// GetExportRoot returns the export root directory.
func (p *PathResolver) GetExportRoot() string {
	return p.exportRoot
}

// GetTablesPath returns the tables override path, or "" when not configured.
func (p *PathResolver) GetTablesPath() string {
	return p.tablesPath
}

// GetYearDir returns the directory path for a year.
// Example: ./exports/2023
func (p *PathResolver) GetYearDir(year string) string {
	return filepath.Join(p.exportRoot, year)
}

// GetExportFilePath returns the export file path for an invoice date,
// following the regulator naming convention {SIREN}FEC{yyyymmdd}.txt.
// Example: ./exports/2023/123456789FEC20231026.txt
func (p *PathResolver) GetExportFilePath(date time.Time) string {
	filename := fmt.Sprintf("%sFEC%s.txt", p.siren, date.Format("20060102"))
	return filepath.Join(p.GetYearDir(date.Format("2006")), filename)
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	return p.EnsureDir(filepath.Dir(filePath))
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
