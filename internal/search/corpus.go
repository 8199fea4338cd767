package search

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// corpusFiles lists the files under root matching pattern, skipping those
// excluded by any of the ignore files found in root. Paths are returned in
// directory traversal order, joined with root.
func corpusFiles(root, pattern string, ignoreFiles []string) ([]string, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: no corpus root configured", ErrCorpusUnavailable)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrCorpusUnavailable, root)
	}
	// Stat succeeds on unreadable directories; ReadDir does not.
	if _, err := os.ReadDir(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}

	rel, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}

	ignores := loadIgnores(root, ignoreFiles)
	out := make([]string, 0, len(rel))
	for _, p := range rel {
		if ignored(ignores, p) {
			continue
		}
		out = append(out, filepath.Join(root, filepath.FromSlash(p)))
	}
	return out, nil
}

func loadIgnores(root string, names []string) []gitignore.GitIgnore {
	var out []gitignore.GitIgnore
	for _, n := range names {
		f, err := os.Open(filepath.Join(root, n))
		if err != nil {
			continue
		}
		out = append(out, gitignore.New(f, root, nil))
		f.Close()
	}
	return out
}

// ignored reports whether rel, or any directory above it, is excluded.
// Glob yields only files, so directory rules such as "drafts/" are matched
// against each parent prefix.
func ignored(ignores []gitignore.GitIgnore, rel string) bool {
	for _, gi := range ignores {
		for i := 0; i < len(rel); i++ {
			if rel[i] != '/' {
				continue
			}
			if m := gi.Relative(rel[:i], true); m != nil && m.Ignore() {
				return true
			}
		}
		if m := gi.Relative(rel, false); m != nil && m.Ignore() {
			return true
		}
	}
	return false
}
