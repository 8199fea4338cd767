package render

import (
	"bytes"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML block some doc sites put before the Markdown body.
type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// body. Unparseable blocks are left in the body untouched.
func splitFrontMatter(src []byte) (frontMatter, []byte) {
	var fm frontMatter
	text := bytes.TrimPrefix(src, []byte("\ufeff"))
	if !bytes.HasPrefix(text, []byte("---\n")) && !bytes.HasPrefix(text, []byte("---\r\n")) {
		return fm, src
	}
	rest := text[bytes.IndexByte(text, '\n')+1:]
	end := -1
	for off := 0; off < len(rest); {
		nl := bytes.IndexByte(rest[off:], '\n')
		line := rest[off:]
		if nl >= 0 {
			line = rest[off : off+nl]
		}
		if strings.TrimRight(string(line), "\r") == "---" {
			end = off
			break
		}
		if nl < 0 {
			break
		}
		off += nl + 1
	}
	if end < 0 {
		return fm, src
	}
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return frontMatter{}, src
	}
	body := rest[end:]
	if nl := bytes.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = nil
	}
	return fm, body
}

// pageName is the man page title derived from a file name: "flex-grow.md"
// becomes "FLEX-GROW".
func pageName(file string) string {
	base := filepath.Base(file)
	return strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
}

// prepare strips front matter and, when the body does not open with a level
// one heading, adds one so the page gets a proper title line. Front matter
// title and description become the NAME section.
func prepare(file, section string, src []byte) []byte {
	fm, body := splitFrontMatter(src)
	if startsWithTitle(body) {
		return body
	}
	var b bytes.Buffer
	b.WriteString("# " + pageName(file) + " " + section + "\n\n")
	if fm.Title != "" || fm.Description != "" {
		b.WriteString("## NAME\n\n")
		line := fm.Title
		if line == "" {
			line = strings.ToLower(pageName(file))
		}
		if fm.Description != "" {
			line += " - " + fm.Description
		}
		b.WriteString(line + "\n\n")
	}
	b.Write(body)
	return b.Bytes()
}

func startsWithTitle(body []byte) bool {
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "% ")
	}
	return false
}
