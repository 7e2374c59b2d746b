package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultSource    = "assets/images/ora-web/clear_logo.png"
	defaultPrimary   = "public/clear_logo.webp"
	defaultSecondary = "src/assets/images/ora-web/clear_logo.webp"
)

// the structure of the logoconv.yaml file. Everything is optional,
// an empty file (or none at all) converts the fixed paths above.
type configData struct {
	Root            string `mapstructure:"root"`
	Source          string `mapstructure:"source"`
	Primary         string `mapstructure:"primary"`
	Secondary       string `mapstructure:"secondary"`
	Codec           string `mapstructure:"codec"`
	Quiet           bool   `mapstructure:"quiet"`
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("source", defaultSource)
	v.SetDefault("primary", defaultPrimary)
	v.SetDefault("secondary", defaultSecondary)
	v.SetDefault("codec", defaultCodec)
	v.SetDefault("quiet", false)
	v.SetDefault("metrics_textfile", "")
}

func loadConfig(v *viper.Viper) (configData, error) {
	setDefaults(v)
	c := configData{}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	return c, nil
}

func (c configData) MyConfig() siteConfig {
	root := c.Root
	if root == "" {
		root = "."
	}
	// blank paths fall back to the fixed ones rather than
	// pointing at the root directory itself
	source := c.Source
	if source == "" {
		source = defaultSource
	}
	primary := c.Primary
	if primary == "" {
		primary = defaultPrimary
	}
	secondary := c.Secondary
	if secondary == "" {
		secondary = defaultSecondary
	}
	codec := c.Codec
	if codec == "" {
		codec = defaultCodec
	}

	return siteConfig{
		Source:          source,
		Primary:         primary,
		Secondary:       secondary,
		Codec:           codec,
		Quiet:           c.Quiet,
		MetricsTextfile: c.MetricsTextfile,
		Backend:         newDiskBackend(root),
	}
}

// the normalised run settings
type siteConfig struct {
	Source          string
	Primary         string
	Secondary       string
	Codec           string
	Quiet           bool
	MetricsTextfile string
	Backend         backend
}

func (s siteConfig) MetricsEnabled() bool {
	return s.MetricsTextfile != ""
}
