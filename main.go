package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "logoconv",
	Short: "Convert the site logo to WebP",
	Long: `logoconv decodes the site logo and writes a WebP copy of it to the public
directory and to the source assets directory, creating missing directories.

With no config file it converts assets/images/ora-web/clear_logo.png into
public/clear_logo.webp and src/assets/images/ora-web/clear_logo.webp.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(viper.GetViper(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./logoconv.yaml if present)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logoconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("LOGOCONV")
	viper.AutomaticEnv()

	// no logoconv.yaml is the normal case; a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stdout, "Configuration error: %v\n", err)
			os.Exit(1)
		}
	}
}

// convert runs one conversion and prints its outcome to stdout. The
// returned error only signals a non-zero exit; it has already been reported.
func convert(v *viper.Viper, stdout, stderr io.Writer) error {
	f, err := loadConfig(v)
	if err != nil {
		fmt.Fprintf(stdout, "Configuration error: %v\n", err)
		return err
	}
	siteconfig := f.MyConfig()
	sl := newLogger(stderr, siteconfig.Quiet)
	m := newRunMetrics()

	c, err := newConverter(siteconfig, sl, m)
	if err != nil {
		_ = sl.Log("level", "ERR", "msg", "bad configuration", "error", err)
		fmt.Fprintf(stdout, "Configuration error: %v\n", err)
		return err
	}

	err = c.Run()
	report(stdout, err)
	writeMetrics(siteconfig, m, sl)
	return err
}

func writeMetrics(s siteConfig, m *runMetrics, sl log.Logger) {
	if !s.MetricsEnabled() {
		return
	}
	if err := m.writeTextfile(s.MetricsTextfile); err != nil {
		_ = sl.Log("level", "WARN", "msg", "couldn't write metrics textfile",
			"path", s.MetricsTextfile, "error", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
