package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
)

// DefaultOutputDir is where split configurations land when the caller does
// not pick a directory: a split_configs directory next to the input file.
func DefaultOutputDir(inputFile string) string {
	return filepath.Join(filepath.Dir(inputFile), "split_configs")
}

// SafeFileName turns a device-group name into the bundle's file name,
// replacing path separators and spaces.
func SafeFileName(group string) string {
	s := strings.ReplaceAll(group, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s + ".xml"
}

// Write serializes a bundle into dir, creating the directory as needed,
// and returns the path of the written file.
func Write(dir string, b *Bundle) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, SafeFileName(b.Group))
	if err := os.WriteFile(path, panxml.Marshal(b.Root), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", b.Group, err)
	}
	return path, nil
}
