package fec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adurand/ocr2fec/pkg/pathutil"
)

// Repository defines the interface for FEC export file operations. The
// serializer itself never touches the filesystem; the repository exists for
// callers that persist exports to disk.
type Repository interface {
	// WriteExport writes a serialized export for an invoice date and returns
	// the file path
	WriteExport(date time.Time, content string) (string, error)

	// ReadExport reads a previously written export
	ReadExport(date time.Time) (string, error)

	// ExportExists checks if an export exists for a date
	ExportExists(date time.Time) bool

	// ListExportsInYear lists export files written for a year
	ListExportsInYear(year string) ([]string, error)
}

// FileSystemRepository is a file system implementation of Repository.
type FileSystemRepository struct {
	pathResolver *pathutil.PathResolver
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(pathResolver *pathutil.PathResolver) *FileSystemRepository {
	return &FileSystemRepository{
		pathResolver: pathResolver,
	}
}

// WriteExport writes the export content under the per-year directory, using
// the regulator file naming. An existing export for the same date is
// overwritten.
func (r *FileSystemRepository) WriteExport(date time.Time, content string) (string, error) {
	filePath := r.pathResolver.GetExportFilePath(date)

	if err := r.pathResolver.EnsureParentDir(filePath); err != nil {
		return "", fmt.Errorf("failed to ensure export directory: %w", err)
	}

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return filePath, nil
}

// ReadExport reads the export file for a date.
// Returns empty string if the file doesn't exist.
func (r *FileSystemRepository) ReadExport(date time.Time) (string, error) {
	filePath := r.pathResolver.GetExportFilePath(date)

	if !r.pathResolver.FileExists(filePath) {
		return "", nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read export file: %w", err)
	}

	return string(data), nil
}

// ExportExists checks if an export file exists for a date.
func (r *FileSystemRepository) ExportExists(date time.Time) bool {
	return r.pathResolver.FileExists(r.pathResolver.GetExportFilePath(date))
}

// ListExportsInYear lists the export files written for a year.
func (r *FileSystemRepository) ListExportsInYear(year string) ([]string, error) {
	yearDir := r.pathResolver.GetYearDir(year)
	if !r.pathResolver.FileExists(yearDir) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read year directory: %w", err)
	}

	var exports []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.Contains(name, "FEC") && filepath.Ext(name) == ".txt" {
			exports = append(exports, name)
		}
	}

	return exports, nil
}
