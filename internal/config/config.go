// Package config loads tagsync settings.
//
// Settings come from, in order of precedence: command-line flags bound by
// the CLI, TAGSYNC_* environment variables, a YAML config file, and
// defaults. The config file is ~/.tagsync.yaml or ./.tagsync.yaml unless
// --config or TAGSYNC_CONFIG names one explicitly.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "TAGSYNC"

// Setting keys.
const (
	KeySource    = "source"
	KeyVerbose   = "verbose"
	KeyDryRun    = "dryrun"
	KeyKeepGoing = "keep_going"
	KeySkip      = "skip"
	KeyFormat    = "format"
	KeyAttribute = "attribute"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// DefaultSkip lists the housekeeping file names skipped during traversal.
var DefaultSkip = []string{".DS_Store"}

// Settings is the resolved configuration of a run.
type Settings struct {
	// Source is the sync source name (shell, embedded or both)
	Source string

	// Verbose prints both original tag sets for every file
	Verbose bool

	// DryRun computes and reports without writing
	DryRun bool

	// KeepGoing continues past per-path failures
	KeepGoing bool

	// Skip lists child names ignored during directory traversal
	Skip []string

	// Format is the end-of-run report format (text, json, yaml)
	Format string

	// Attribute is the extended attribute key of the shell tag store;
	// empty selects the platform default
	Attribute string

	// LogLevel and LogFormat configure the zerolog logger
	LogLevel  string
	LogFormat string

	// ConfigFile is the config file that was read, if any
	ConfigFile string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySource, "both")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyKeepGoing, false)
	v.SetDefault(KeySkip, DefaultSkip)
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyAttribute, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "auto")
}

// Load resolves settings from v. configFile overrides the search for a
// config file; a missing default config file is not an error.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".tagsync")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	s := &Settings{
		Source:     v.GetString(KeySource),
		Verbose:    v.GetBool(KeyVerbose),
		DryRun:     v.GetBool(KeyDryRun),
		KeepGoing:  v.GetBool(KeyKeepGoing),
		Skip:       stringList(v, KeySkip),
		Format:     strings.ToLower(v.GetString(KeyFormat)),
		Attribute:  v.GetString(KeyAttribute),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		ConfigFile: v.ConfigFileUsed(),
	}

	switch s.Format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of text, json, yaml", s.Format)
	}

	return s, nil
}

// stringList reads a list setting. A plain string, as given by an
// environment variable or a scalar in the config file, is split on commas.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
