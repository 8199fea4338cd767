package cmd

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/mantw/mantw-cli/internal/assets"
	"github.com/mantw/mantw-cli/internal/config"
	"github.com/mantw/mantw-cli/internal/logging"
)

// configDir is the directory of --config, or ~/.config/mantw. Under sudo
// the invoking user's config is used.
func configDir(cfgFile string) string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	dir, _ := os.UserConfigDir()
	if su := os.Getenv("SUDO_USER"); su != "" {
		if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
			dir = filepath.Join(u.HomeDir, ".config")
		}
	}
	return filepath.Join(dir, "mantw")
}

// loadConfig merges the embedded defaults with every YAML file in the config
// directory, validates the result and resolves it.
func loadConfig(cfgFile string) (config.Config, error) {
	cfgDir := configDir(cfgFile)
	if cfgFile == "" {
		if wrote, err := assets.WriteDefaultConfigIfMissing(cfgDir); err != nil {
			logging.Debug("default config not written: " + err.Error())
		} else if wrote {
			logging.Success("wrote default config to " + filepath.Join(cfgDir, assets.ConfigFileName))
		}
	}
	files := yamlFiles(cfgDir)
	if cfgFile != "" && !contains(files, cfgFile) {
		files = append(files, cfgFile)
	}
	logging.Debug("config files: " + strings.Join(files, ", "))
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultConfig(), files)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		return config.Config{}, err
	}
	cfg, err = config.Resolve(cfg, legacyFiles(cfgDir)...)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.BookDir == "" {
		logging.Gray("book_dir is not set; add it to " + filepath.Join(cfgDir, assets.ConfigFileName))
	}
	return cfg, nil
}

func yamlFiles(dir string) []string {
	entries, _ := os.ReadDir(dir)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files
}

// legacyFiles lists where older installs kept the book path: beside the
// real executable, then in the config directory.
func legacyFiles(cfgDir string) []string {
	var out []string
	if exe, err := os.Executable(); err == nil {
		if real, err := filepath.EvalSymlinks(exe); err == nil {
			exe = real
		}
		out = append(out, filepath.Join(filepath.Dir(exe), config.LegacyBookDirFile))
	}
	return append(out, filepath.Join(cfgDir, config.LegacyBookDirFile))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if filepath.Clean(v) == filepath.Clean(s) {
			return true
		}
	}
	return false
}
