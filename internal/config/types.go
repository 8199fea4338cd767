package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BookDir     string   `yaml:"book_dir" json:"book_dir"`
	Pattern     string   `yaml:"pattern" json:"pattern,omitempty"`
	IgnoreFiles []string `yaml:"ignore_files" json:"ignore_files,omitempty"`
	ScratchDir  string   `yaml:"scratch_dir" json:"scratch_dir,omitempty"`
	ManSection  string   `yaml:"man_section" json:"man_section,omitempty"`
	Pager       Command  `yaml:"pager" json:"pager"`
}

// Command is an argv executed directly, never through a shell.
type Command struct {
	Program string   `yaml:"program" json:"program"`
	Args    []string `yaml:"args" json:"args,omitempty"`
}

func (c Command) IsZero() bool { return c.Program == "" }

func (c Command) String() string {
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}

// UnmarshalYAML accepts a scalar ("man -a"), a sequence (["less", "-R"])
// or the full mapping form.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.set(strings.Fields(value.Value))
		return nil
	case yaml.SequenceNode:
		var argv []string
		if err := value.Decode(&argv); err != nil {
			return err
		}
		c.set(argv)
		return nil
	case yaml.MappingNode:
		var aux struct {
			Program string   `yaml:"program"`
			Args    []string `yaml:"args"`
		}
		if err := value.Decode(&aux); err != nil {
			return err
		}
		c.Program = aux.Program
		c.Args = aux.Args
		return nil
	default:
		return fmt.Errorf("invalid command node kind: %d", value.Kind)
	}
}

func (c *Command) set(argv []string) {
	c.Program, c.Args = "", nil
	if len(argv) > 0 {
		c.Program = argv[0]
		c.Args = argv[1:]
	}
}
