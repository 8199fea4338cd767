package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LegacyBookDirFile holds the corpus root on its first line. Older installs
// kept it next to the executable.
const LegacyBookDirFile = "book-src-directory-path.txt"

const (
	DefaultPattern    = "*.md"
	DefaultManSection = "1"
	DefaultPager      = "man"
)

func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var merged Config
	if len(defaultsYAML) > 0 {
		if err := yaml.Unmarshal(defaultsYAML, &merged); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
	}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeConfig(merged, part)
	}
	return merged, nil
}

// Resolve fills defaults, falls back to the legacy book path files when no
// book_dir is set and expands a leading ~ in paths. The first legacy file
// that exists wins.
func Resolve(cfg Config, legacyFiles ...string) (Config, error) {
	out := cfg
	if strings.TrimSpace(out.BookDir) == "" {
		for _, f := range legacyFiles {
			dir, err := ReadLegacyBookDir(f)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return Config{}, err
			}
			if dir != "" {
				out.BookDir = dir
				break
			}
		}
	}
	var err error
	if out.BookDir, err = expandHome(strings.TrimSpace(out.BookDir)); err != nil {
		return Config{}, err
	}
	if out.ScratchDir, err = expandHome(strings.TrimSpace(out.ScratchDir)); err != nil {
		return Config{}, err
	}
	if out.ScratchDir == "" {
		out.ScratchDir = os.TempDir()
	}
	if out.Pattern == "" {
		out.Pattern = DefaultPattern
	}
	if out.ManSection == "" {
		out.ManSection = DefaultManSection
	}
	if out.Pager.IsZero() {
		out.Pager = Command{Program: DefaultPager}
	}
	return out, nil
}

// ReadLegacyBookDir returns the first line of a legacy book path file.
func ReadLegacyBookDir(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if sc.Scan() {
		return strings.TrimSpace(sc.Text()), nil
	}
	return "", sc.Err()
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", p, err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeConfig(base, overlay Config) Config {
	out := base
	if overlay.BookDir != "" {
		out.BookDir = overlay.BookDir
	}
	if overlay.Pattern != "" {
		out.Pattern = overlay.Pattern
	}
	if overlay.IgnoreFiles != nil {
		out.IgnoreFiles = append([]string{}, overlay.IgnoreFiles...)
	}
	if overlay.ScratchDir != "" {
		out.ScratchDir = overlay.ScratchDir
	}
	if overlay.ManSection != "" {
		out.ManSection = overlay.ManSection
	}
	out.Pager = mergeCommand(out.Pager, overlay.Pager)
	return out
}

func mergeCommand(a, b Command) Command {
	if b.Program == "" {
		return a
	}
	return Command{Program: b.Program, Args: append([]string{}, b.Args...)}
}
