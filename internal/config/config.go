package config

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/internal/paths"
	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "GLEAN"

// Config keys.
const (
	KeyVersion   = "version"
	KeyInstance  = "instance"
	KeyAPIToken  = "api_token"
	KeyClient    = "client"
	KeyTransport = "transport"
	KeyFormat    = "format"
)

// FormatNative selects each client's own file format.
const FormatNative = "native"

// Config represents the top-level configuration structure.
type Config struct {
	Version   int    `mapstructure:"version" yaml:"version"`
	Instance  string `mapstructure:"instance" yaml:"instance"`
	APIToken  string `mapstructure:"api_token" yaml:"api_token,omitempty"`
	Client    string `mapstructure:"client" yaml:"client,omitempty"`
	Transport string `mapstructure:"transport" yaml:"transport"`
	Format    string `mapstructure:"format" yaml:"format"`
}

// Init resets Viper and installs the search paths, environment binding
// and defaults. Call it before binding flags and before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), paths.AppName))

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, 1)
	viper.SetDefault(KeyInstance, "")
	viper.SetDefault(KeyAPIToken, "")
	viper.SetDefault(KeyClient, "")
	viper.SetDefault(KeyTransport, string(mcp.TransportStdio))
	viper.SetDefault(KeyFormat, FormatNative)
}

// Load reads the configuration file at path, or searches the default
// locations when path is empty. A missing file is only an error when path
// was given explicitly.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults and environment only
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides exist.
func Default() *Config {
	return &Config{
		Version:   1,
		Transport: string(mcp.TransportStdio),
		Format:    FormatNative,
	}
}

// Params builds connection params from the configured instance, token and
// transport.
func (c *Config) Params() (mcp.Params, error) {
	t, err := mcp.ParseTransport(c.Transport)
	if err != nil {
		return mcp.Params{}, err
	}
	return mcp.NewParams(t, c.Instance, c.APIToken)
}
