// Package config reads optional settings from a config file and the
// environment. Command-line flags take precedence; see internal/app.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	fileName  = "motifmark"
	envPrefix = "MOTIFMARK"
)

// Keys understood in config files and as MOTIFMARK_<KEY> variables.
const (
	KeyMotifs       = "motifs"
	KeyOutput       = "output"
	KeyOut          = "out"
	KeyThreads      = "threads"
	KeyMaxExpansion = "max_expansion"
	KeyStrict       = "strict"
	KeyWidth        = "width"
	KeyColors       = "colors"
)

var keys = []string{KeyMotifs, KeyOutput, KeyOut, KeyThreads, KeyMaxExpansion, KeyStrict, KeyWidth, KeyColors}

// Settings holds the values found. Only keys reported by Has were present.
type Settings struct {
	Motifs       string
	Output       string
	Out          string
	Threads      int
	MaxExpansion int
	Strict       bool
	Width        int
	Colors       []string

	File string // config file read, "" if none
	set  map[string]bool
}

// Has reports whether key came from the file or the environment.
func (s Settings) Has(key string) bool { return s.set[key] }

// Load reads path, or motifmark.{yaml,toml,json} in the working directory
// when path is empty. A missing default file is not an error; a missing
// explicit one is.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &nf) {
			return Settings{}, fmt.Errorf("config: %w", err)
		}
	}

	s := Settings{
		Motifs:       v.GetString(KeyMotifs),
		Output:       v.GetString(KeyOutput),
		Out:          v.GetString(KeyOut),
		Threads:      v.GetInt(KeyThreads),
		MaxExpansion: v.GetInt(KeyMaxExpansion),
		Strict:       v.GetBool(KeyStrict),
		Width:        v.GetInt(KeyWidth),
		Colors:       v.GetStringSlice(KeyColors),
		File:         v.ConfigFileUsed(),
		set:          make(map[string]bool, len(keys)),
	}
	for _, k := range keys {
		if v.IsSet(k) {
			s.set[k] = true
		}
	}
	if s.Threads < 0 || s.MaxExpansion < 0 || s.Width < 0 {
		return Settings{}, fmt.Errorf("config: threads, max_expansion and width must not be negative")
	}
	return s, nil
}
