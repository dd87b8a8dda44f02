package gaussdb

import (
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config configures a TypeResolver. Use DefaultConfig or ParseConfig to build
// one; the zero value logs nothing and serves every built-in type.
type Config struct {
	// LogLevel is the most verbose level passed to Logger.
	LogLevel LogLevel
	Logger   Logger

	// ServerVersion is the version the server reports, e.g. "9.2.4" or "14".
	// Built-in types newer than it are resolved through the catalog instead
	// of the static table. Empty means unknown, which serves every built-in.
	ServerVersion string

	// Types are preloaded into the resolver's cache.
	Types []TypeSeed
}

// TypeSeed is a type whose oids are known in advance, such as an extension or
// enum type created by a migration.
type TypeSeed struct {
	Schema   string `yaml:"schema"`
	Name     string `yaml:"name"`
	OID      uint32 `yaml:"oid"`
	ArrayOID uint32 `yaml:"array_oid"`
}

// DefaultConfig returns a Config that logs at info level to no logger.
func DefaultConfig() *Config {
	return &Config{LogLevel: LogLevelInfo}
}

type configFile struct {
	LogLevel      string     `yaml:"log_level"`
	ServerVersion string     `yaml:"server_version"`
	Types         []TypeSeed `yaml:"types"`
}

// ParseConfig reads a Config from YAML:
//
//	log_level: debug
//	server_version: "14.2"
//	types:
//	  - schema: public
//	    name: mood
//	    oid: 16385
//	    array_oid: 16384
//
// Omitted settings keep their DefaultConfig values. The Logger must be set by
// the caller.
func ParseConfig(data []byte) (*Config, error) {
	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	config := DefaultConfig()
	if file.LogLevel != "" {
		level, err := LogLevelFromString(file.LogLevel)
		if err != nil {
			return nil, errors.WithMessage(err, "log_level")
		}
		config.LogLevel = level
	}
	config.ServerVersion = file.ServerVersion
	config.Types = file.Types

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if _, err := c.serverVersion(); err != nil {
		return err
	}

	for i, seed := range c.Types {
		if seed.Name == "" {
			return errors.Errorf("types[%d]: name is required", i)
		}
		if seed.OID == 0 {
			return errors.Errorf("type %q: oid is required", seed.Name)
		}
	}

	return nil
}

// serverVersion returns nil when no version is configured.
func (c *Config) serverVersion() (*semver.Version, error) {
	if c.ServerVersion == "" {
		return nil, nil
	}
	v, err := semver.NewVersion(c.ServerVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid server_version %q", c.ServerVersion)
	}
	return v, nil
}
