package store

import (
	"errors"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config locates the backing file.
type Config interface {
	Path() string
}

// Settings is the resolved configuration for one invocation. It is loaded once
// by the root command and passed down explicitly.
type Settings struct {
	File       string
	ShowAll    bool
	Width      int
	LogLevel   string
	NotifyTime string

	// NotifyInterval is unparsed; see timeutil.ParseInterval.
	NotifyInterval string

	// ConfigFile is the config file viper read, if any.
	ConfigFile string
}

// Path implements Config.
func (s *Settings) Path() string {
	return s.File
}

const (
	// DefaultWidth is the description column width used by listings.
	DefaultWidth = 40
	// DefaultNotifyTime is the daily notification time.
	DefaultNotifyTime = "09:00"

	envPrefix     = "IRONLIST"
	envConfigPath = "IRONLIST_CONFIG_PATH"
	configName    = ".ironlist"
)

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"file":      "file",
	"show-all":  "show_all",
	"log-level": "log_level",
}

// LoadConfig reads settings from flags, IRONLIST_* environment variables and
// an optional .ironlist config file, in that order of precedence. configFile,
// when set, names the config file explicitly.
func LoadConfig(flags *pflag.FlagSet, configFile string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("log_level", "info")
	v.SetDefault("notify.time", DefaultNotifyTime)
	v.SetDefault("notify.interval", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		expanded, err := homedir.Expand(configFile)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(configName)
		if override := os.Getenv(envConfigPath); override != "" {
			v.AddConfigPath(override)
		}
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	s := &Settings{
		ShowAll:        v.GetBool("show_all"),
		Width:          v.GetInt("width"),
		LogLevel:       v.GetString("log_level"),
		NotifyTime:     v.GetString("notify.time"),
		NotifyInterval: v.GetString("notify.interval"),
		ConfigFile:     v.ConfigFileUsed(),
	}
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if file := strings.TrimSpace(v.GetString("file")); file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return nil, err
		}
		s.File = expanded
	}
	return s, nil
}
