package types

import "time"

// ClassifyConfig holds settings that shape the classification passes.
type ClassifyConfig struct {
	// Profile is the literal substring an <extension> line must contain to
	// apply to the target profile (default "glcore").
	Profile string `json:"profile" yaml:"profile"`

	// StopVersion is the feature name at which block collection halts
	// (default "GL_VERSION_4_0"). The block itself is not collected.
	StopVersion string `json:"stop_version" yaml:"stop_version"`
}

// ReportFormat selects the optional run report format.
type ReportFormat string

const (
	ReportNone ReportFormat = ""
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// ParseConfig holds settings for the parse command.
type ParseConfig struct {
	ClassifyConfig `yaml:",inline"`

	// InputDir contains the registry document (default "parser_in").
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives the manifest, the transcript and the optional
	// report and history database (default "parser_out").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// RegistryFile is the registry document name inside InputDir
	// (default "gl.xml").
	RegistryFile string `json:"registry_file" yaml:"registry_file"`

	// Report selects an additional run report next to the manifest.
	Report ReportFormat `json:"report,omitempty" yaml:"report,omitempty"`

	// Record stores the run in the history database.
	Record bool `json:"record" yaml:"record"`
}

// FetchConfig holds settings for downloading the registry document.
type FetchConfig struct {
	// URL is the location of the registry document.
	URL string `json:"url" yaml:"url"`

	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with the request.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 and 503 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// InputDir and RegistryFile locate the downloaded document.
	InputDir     string `json:"input_dir" yaml:"input_dir"`
	RegistryFile string `json:"registry_file" yaml:"registry_file"`
}

// HistoryConfig holds settings for the run history database.
type HistoryConfig struct {
	// OutputDir contains history.db.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
