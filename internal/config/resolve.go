package config

import (
	"os"
	"strings"

	"github.com/samber/lo"
)

// Source names where an effective value came from.
type Source string

const (
	SourceFlag Source = "flag"
	SourceFile Source = "file"
	SourceEnv  Source = "env"
	SourceNone Source = "none"
)

// Sources are the three configuration inputs of a run.
type Sources struct {
	// Flags holds the CLI-supplied values; empty means not given.
	Flags Config
	// File is the result of loading the saved config.
	File LoadResult
	// Getenv looks up environment variables. Nil means os.Getenv.
	Getenv func(string) string
}

// Effective is the configuration a run actually uses.
type Effective struct {
	APIKey        string
	BaseURL       string
	APIKeySource  Source
	BaseURLSource Source
}

// HasAPIKey reports whether any source supplied a key.
func (e Effective) HasAPIKey() bool {
	return e.APIKey != ""
}

type candidate struct {
	value  string
	source Source
}

func pick(candidates ...candidate) (string, Source) {
	c, ok := lo.Find(candidates, func(c candidate) bool {
		return c.value != ""
	})
	if !ok {
		return "", SourceNone
	}
	return c.value, c.source
}

// Resolve applies the precedence rule independently per field: flag, then
// saved file, then (api_key only) the environment. A file that did not load
// contributes nothing.
func Resolve(src Sources) Effective {
	getenv := src.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	flags := src.Flags.Normalize()
	var saved Config
	if src.File.OK() {
		saved = src.File.Config.Normalize()
	}
	env := strings.TrimSpace(getenv(EnvAPIKey))

	var eff Effective
	eff.APIKey, eff.APIKeySource = pick(
		candidate{flags.APIKey, SourceFlag},
		candidate{saved.APIKey, SourceFile},
		candidate{env, SourceEnv},
	)
	eff.BaseURL, eff.BaseURLSource = pick(
		candidate{flags.BaseURL, SourceFlag},
		candidate{saved.BaseURL, SourceFile},
	)
	return eff
}

// ToSave returns the config to persist for --save: the CLI-supplied values
// merged over what the file held. Environment values are never persisted.
// ok is false when no CLI value was supplied.
func ToSave(src Sources) (cfg Config, ok bool) {
	flags := src.Flags.Normalize()
	if flags.IsEmpty() {
		return Config{}, false
	}
	var saved Config
	if src.File.OK() {
		saved = src.File.Config
	}
	return Merge(saved, flags), true
}
