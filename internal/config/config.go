// Package config loads tool configuration from defaults, an optional
// YAML config file, environment variables, and CLI flags, in that
// order of precedence.
package config

import (
	"github.com/alguides/fmlint/internal/rules"
)

// DefaultRoot is the directory scanned when no path is configured.
const DefaultRoot = "./areas"

// DefaultFormat is the output format used when none is configured.
const DefaultFormat = "text"

// RulesConfig holds rule-table overrides from the config file. Empty
// slices and zero values mean "keep the default".
type RulesConfig struct {
	Areas          []string `koanf:"areas"`
	Difficulties   []string `koanf:"difficulties"`
	Required       []string `koanf:"required"`
	Forbidden      []string `koanf:"forbidden"`
	TitleMin       int      `koanf:"title_min"`
	TitleMax       int      `koanf:"title_max"`
	DescriptionMin int      `koanf:"description_min"`
	DescriptionMax int      `koanf:"description_max"`
}

// Config is the merged tool configuration.
type Config struct {
	Root    string      `koanf:"root"`
	Format  string      `koanf:"format"`
	Verbose bool        `koanf:"verbose"`
	Fix     bool        `koanf:"fix"`
	Output  string      `koanf:"output"`
	Rules   RulesConfig `koanf:"rules"`
}

// RuleSet builds the immutable rule set for this run: the defaults with
// any configured overrides applied.
func (c *Config) RuleSet() rules.RuleSet {
	rs := rules.Default()

	if len(c.Rules.Areas) > 0 {
		rs.Areas = c.Rules.Areas
	}
	if len(c.Rules.Difficulties) > 0 {
		rs.Difficulties = c.Rules.Difficulties
	}
	if len(c.Rules.Required) > 0 {
		rs.Required = c.Rules.Required
	}
	if len(c.Rules.Forbidden) > 0 {
		rs.Forbidden = c.Rules.Forbidden
	}
	if c.Rules.TitleMin > 0 {
		rs.TitleMin = c.Rules.TitleMin
	}
	if c.Rules.TitleMax > 0 {
		rs.TitleMax = c.Rules.TitleMax
	}
	if c.Rules.DescriptionMin > 0 {
		rs.DescriptionMin = c.Rules.DescriptionMin
	}
	if c.Rules.DescriptionMax > 0 {
		rs.DescriptionMax = c.Rules.DescriptionMax
	}
	return rs
}
