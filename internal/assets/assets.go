package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the default config written on first run.
const ConfigFileName = "config.yaml"

//go:embed default-config.yaml
var defaultConfig []byte

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() []byte { return append([]byte(nil), defaultConfig...) }

// WriteDefaultConfigIfMissing writes config.yaml to targetDir if it does not exist.
// It reports whether a file was written.
func WriteDefaultConfigIfMissing(targetDir string) (bool, error) {
	if targetDir == "" {
		return false, errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return false, err
	}
	p := filepath.Join(targetDir, ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.WriteFile(p, defaultConfig, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
