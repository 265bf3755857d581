package lockor

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/lockor/policy"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the engine configuration. It can
// be populated from JSON, YAML, environment variables, etc. The zero-value is
// useful – all nested fields inherit their package defaults.

type Config struct {
	Input  InputConfig    `json:"input" yaml:"input"`
	Output OutputConfig   `json:"output" yaml:"output"`
	Policy *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
	Report ReportConfig   `json:"report" yaml:"report"`
}

// InputConfig locates the raw form exports.
type InputConfig struct {
	// ApplicantsURL and PartnersURL point at the CSV exports; any afs scheme
	// (file://, mem://, embed://) is accepted.
	ApplicantsURL string `json:"applicantsURL" yaml:"applicantsURL"`
	PartnersURL   string `json:"partnersURL" yaml:"partnersURL"`

	// TimestampLayout overrides the form export timestamp format.
	TimestampLayout string `json:"timestampLayout,omitempty" yaml:"timestampLayout,omitempty"`
}

// OutputConfig locates the per-term result files.
type OutputConfig struct {
	BaseURL string `json:"baseURL" yaml:"baseURL"`
}

// ReportConfig controls the column-frequency report.
type ReportConfig struct {
	MaxValues int `json:"maxValues,omitempty" yaml:"maxValues,omitempty"`
}

// DefaultConfig returns a Config populated with the same default values the
// constructors would otherwise apply. Callers may modify the returned struct
// before passing it to New.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			ApplicantsURL: "input/form_app.csv",
			PartnersURL:   "input/form_par.csv",
		},
		Output: OutputConfig{
			BaseURL: "output",
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Input.ApplicantsURL == "" {
		return fmt.Errorf("input.applicantsURL is required")
	}
	if c.Input.PartnersURL == "" {
		return fmt.Errorf("input.partnersURL is required")
	}
	if c.Output.BaseURL == "" {
		return fmt.Errorf("output.baseURL is required")
	}
	if c.Report.MaxValues < 0 {
		return fmt.Errorf("report.maxValues must be >= 0")
	}
	return nil
}

// LoadConfig reads a YAML configuration from the supplied URL.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
