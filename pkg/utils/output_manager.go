package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager organizes exported files under a per-dataset directory.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager rooted at baseOutputDir.
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// DatasetDir creates (if needed) and returns the directory for a dataset's exports.
func (om *OutputManager) DatasetDir(datasetID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, datasetID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create dataset output dir: %w", err)
	}
	return dir, nil
}

// FilePath returns the full path for an export file, creating the dataset dir.
// The filename is cleaned so it cannot escape the dataset directory.
func (om *OutputManager) FilePath(datasetID, fileName string) (string, error) {
	dir, err := om.DatasetDir(datasetID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// DownloadURL returns the API download path for an exported file.
func (om *OutputManager) DownloadURL(datasetID, fileName string) string {
	return fmt.Sprintf("/api/v1/datasets/%s/export/%s", datasetID, filepath.Base(fileName))
}
