package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mantw/mantw-cli/internal/config"
)

func TestWriteDefaultConfigIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mantw")

	wrote, err := WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("WriteDefaultConfigIfMissing: %v", err)
	}
	if !wrote {
		t.Fatalf("expected first call to write config.yaml")
	}
	p := filepath.Join(dir, ConfigFileName)
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != string(defaultConfig) {
		t.Fatalf("unexpected contents written")
	}

	// existing file must not be overwritten
	if err := os.WriteFile(p, []byte("book_dir: /mine\n"), 0o644); err != nil {
		t.Fatalf("pre-write: %v", err)
	}
	wrote, err = WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if wrote {
		t.Fatalf("second call reported a write")
	}
	b2, _ := os.ReadFile(p)
	if string(b2) != "book_dir: /mine\n" {
		t.Fatalf("existing file was overwritten")
	}
}

func TestDefaultConfig_DecodesAndValidates(t *testing.T) {
	cfg, err := config.LoadDefaultsAndFiles(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("decode defaults: %v", err)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		t.Fatalf("defaults fail schema: %v", err)
	}
	if cfg.Pattern != "*.md" || cfg.Pager.Program != "man" || len(cfg.IgnoreFiles) != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
