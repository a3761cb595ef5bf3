package config

import (
	"encoding/json"
	"os"
	"strings"

	"voice2txt/internal/app/errors"
)

// Config is the persisted configuration record. Empty fields are omitted on disk.
type Config struct {
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
}

// IsEmpty reports whether neither field is set.
func (c Config) IsEmpty() bool {
	return c.APIKey == "" && c.BaseURL == ""
}

// Normalize trims surrounding whitespace from both fields.
func (c Config) Normalize() Config {
	return Config{
		APIKey:  strings.TrimSpace(c.APIKey),
		BaseURL: strings.TrimSpace(c.BaseURL),
	}
}

// LoadState records how the config file was found.
type LoadState string

const (
	StateAbsent     LoadState = "absent"
	StateLoaded     LoadState = "loaded"
	StateMalformed  LoadState = "malformed"
	StateUnreadable LoadState = "unreadable"
)

// LoadResult is the outcome of reading the config file. Config is the zero
// value unless State is StateLoaded; Err carries the cause for diagnostics.
type LoadResult struct {
	Path   string
	Config Config
	State  LoadState
	Err    error
}

// OK reports whether saved values are available.
func (r LoadResult) OK() bool {
	return r.State == StateLoaded
}

// Load reads the JSON config file at path. It never fails: a missing,
// unreadable or malformed file yields an empty Config and the matching state.
func Load(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{Path: path, State: StateAbsent}
		}
		return LoadResult{Path: path, State: StateUnreadable, Err: err}
	}

	// null values decode to empty strings, which is the same as absent
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return LoadResult{Path: path, State: StateMalformed, Err: err}
	}

	return LoadResult{Path: path, Config: cfg.Normalize(), State: StateLoaded}
}

// Save writes cfg to path as indented JSON, replacing the previous contents.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.ErrFileWriteFailed.WithDetail(path).WithCause(err)
	}
	return nil
}

// Merge returns base with every non-empty field of overlay applied on top.
func Merge(base, overlay Config) Config {
	merged := base
	if overlay.APIKey != "" {
		merged.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		merged.BaseURL = overlay.BaseURL
	}
	return merged
}

// MaskKey hides all but the edges of an API key for display.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + "…" + key[len(key)-4:]
}
