package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/seamcarving/carver"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes the environment variables overriding the configuration.
const envPrefix = "CARVER"

// config holds the resolved command line configuration.
type config struct {
	In         string `mapstructure:"in"`
	Out        string `mapstructure:"out"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Percentage bool   `mapstructure:"perc"`
	Scale      bool   `mapstructure:"scale"`
	Mark       bool   `mapstructure:"mark"`
	Color      string `mapstructure:"color"`
	Workers    int    `mapstructure:"conc"`
	Verbose    bool   `mapstructure:"verbose"`

	configFile string
	v          *viper.Viper
}

func newConfig() *config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &config{v: v}
}

// bindFlags declares the command line flags.
func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringP("in", "i", pipeName, "source image, directory or URL (`-` for stdin)")
	fs.StringP("out", "o", pipeName, "destination image or directory (`-` for stdout)")
	fs.Int("width", 0, "new width")
	fs.Int("height", 0, "new height")
	fs.Bool("perc", false, "read width and height as the percentage to remove")
	fs.Bool("scale", false, "scale the image uniformly instead of carving seams")
	fs.Bool("mark", false, "only highlight the lowest energy vertical seam")
	fs.String("color", "#ff0000", "seam highlight color")
	fs.Int("conc", runtime.NumCPU(), "number of files to process concurrently")
	fs.BoolP("verbose", "v", false, "enable verbose logging")
	fs.StringVar(&c.configFile, "config", "", "config file (default ./carver.toml if present)")
}

// load merges flags, environment variables and the config file into c.
func (c *config) load(fs *pflag.FlagSet) error {
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}

	if c.configFile != "" {
		c.v.SetConfigFile(c.configFile)
	} else {
		c.v.SetConfigName("carver")
		c.v.SetConfigType("toml")
		c.v.AddConfigPath(".")
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	if err := c.v.Unmarshal(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return c.validate()
}

func (c *config) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative", carver.ErrInvalidDimension)
	}
	if c.Workers > carver.MaxWorkers {
		c.Workers = carver.MaxWorkers
	}
	return nil
}
