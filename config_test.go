package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func Test_MyConfig(t *testing.T) {
	c := configData{}
	s := c.MyConfig()
	if s.Source != defaultSource {
		t.Errorf("wrong default source: %s", s.Source)
	}
	if s.Primary != defaultPrimary || s.Secondary != defaultSecondary {
		t.Error("wrong default destinations")
	}
	if s.Codec != "native" {
		t.Errorf("wrong default codec: %s", s.Codec)
	}
	if s.Backend.fullPath("x.png") != "x.png" {
		t.Errorf("empty root should resolve against the working directory, got %s",
			s.Backend.fullPath("x.png"))
	}
}

func Test_MyConfigRoot(t *testing.T) {
	c := configData{Root: "/srv/site", Source: "logo.png"}
	s := c.MyConfig()
	if s.Backend.fullPath(s.Source) != "/srv/site/logo.png" {
		t.Errorf("wrong source path: %s", s.Backend.fullPath(s.Source))
	}
	if s.Backend.fullPath("/abs/out.webp") != "/abs/out.webp" {
		t.Error("absolute paths should be left alone")
	}
}

func Test_MetricsEnabled(t *testing.T) {
	s := siteConfig{}
	if s.MetricsEnabled() {
		t.Error("metrics should be off by default")
	}
	s.MetricsTextfile = "/tmp/logoconv.prom"
	if !s.MetricsEnabled() {
		t.Error("now they should be on")
	}
}

func Test_loadConfigDefaults(t *testing.T) {
	c, err := loadConfig(viper.New())
	if err != nil {
		t.Fatal(err)
	}
	if c.Root != "." || c.Source != defaultSource || c.Codec != defaultCodec {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Quiet {
		t.Error("should not be quiet by default")
	}
}

func Test_loadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logoconv.yaml")
	data := "root: /srv/site\nsecondary: out/logo.webp\nquiet: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	c, err := loadConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.Root != "/srv/site" || c.Secondary != "out/logo.webp" || !c.Quiet {
		t.Errorf("file settings not applied: %+v", c)
	}
	if c.Primary != defaultPrimary {
		t.Errorf("unset key should keep its default, got %s", c.Primary)
	}
}

func Test_loadConfigEnv(t *testing.T) {
	t.Setenv("LOGOCONV_CODEC", "vips")
	v := viper.New()
	v.SetEnvPrefix("LOGOCONV")
	v.AutomaticEnv()
	c, err := loadConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.Codec != "vips" {
		t.Errorf("env override not applied: %s", c.Codec)
	}
}
