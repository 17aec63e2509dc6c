// =============================================================================
// DAS C.A.R.E. Contact Forms - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a single YAML file.
//
// CONFIGURATION FILE (config.yaml):
//   forms_version: V1
//   main_spreadsheet:
//     id: 1AbC...
//     name: DAS C.A.R.E. Contact Forms (Responses)
//   source:
//     type: sheets            # sheets | csv | xlsx
//     credentials_file: credentials.json
//   output_dir: ./reports
//   output_format: text       # text | xlsx | stdout
//
// LOAD ORDER:
//   read -> unmarshal -> defaults -> validate
//
// The forms version is resolved while loading. An unknown version stops the
// program before any spreadsheet row is read.
//
// =============================================================================

package config

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/georgeaf99/das-care-contact-forms/internal/forms"
)

// Source types.
const (
	SourceSheets = "sheets"
	SourceCSV    = "csv"
	SourceXLSX   = "xlsx"
)

// Output formats.
const (
	FormatText   = "text"
	FormatXLSX   = "xlsx"
	FormatStdout = "stdout"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// FORM SETTINGS
	// =========================================================================

	// FormsVersion selects the normalization strategy for the response sheet.
	// Required. See forms.Versions for accepted values.
	FormsVersion string `yaml:"forms_version"`

	// MainSpreadsheet identifies the Google spreadsheet holding the responses.
	MainSpreadsheet Spreadsheet `yaml:"main_spreadsheet"`

	// Source describes where rows are read from.
	Source SourceConfig `yaml:"source"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is where report files and the run summary are written.
	// Default: "./reports"
	OutputDir string `yaml:"output_dir"`

	// OutputFormat is one of "text", "xlsx" or "stdout".
	// Default: "text"
	OutputFormat string `yaml:"output_format"`

	// FileNameFormat names per-address report files.
	// Placeholders:
	//   {address}   - The address, reduced to file-name-safe characters
	//   {uuid}      - A random UUID
	//   {timestamp} - Run time (YYYYMMDD_HHMMSS)
	//   {date}      - Run date (YYYYMMDD)
	// Default: "{address}_{uuid}.txt"
	FileNameFormat string `yaml:"file_name_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile, when set, receives a copy of the log output.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// version is FormsVersion after lookup.
	version forms.Version
}

// Spreadsheet identifies a Google spreadsheet.
type Spreadsheet struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// SourceConfig describes the row source.
type SourceConfig struct {
	// Type is "sheets", "csv" or "xlsx".
	// Default: "sheets" when main_spreadsheet.id is set, "csv" otherwise.
	Type string `yaml:"type"`

	// Path is the local file for csv and xlsx sources.
	Path string `yaml:"path"`

	// Sheet names the worksheet. Empty means the first one.
	Sheet string `yaml:"sheet"`

	// CredentialsFile is the service-account key for the Sheets API.
	// Default: "credentials.json"
	CredentialsFile string `yaml:"credentials_file"`

	// Delimiter is the field separator for csv sources.
	// Default: ","
	Delimiter string `yaml:"delimiter"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads and validates a configuration file.
//
// PARAMETERS:
//   - path: The path to the YAML file.
//
// RETURNS:
//   - The loaded configuration, with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read config file %s", path)
	}
	return Parse(data)
}

// Parse builds a configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, eris.Wrap(err, "failed to parse config file")
	}

	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, eris.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// Version returns the resolved forms version.
func (c *Config) Version() forms.Version {
	return c.version
}

// Strategy looks up the strategy for the configured forms version.
func (c *Config) Strategy() (*forms.Strategy, error) {
	return forms.Lookup(c.version)
}

func applyDefaults(cfg *Config) {
	if cfg.Source.Type == "" {
		if cfg.MainSpreadsheet.ID != "" {
			cfg.Source.Type = SourceSheets
		} else {
			cfg.Source.Type = SourceCSV
		}
	}
	cfg.Source.Type = strings.ToLower(cfg.Source.Type)
	if cfg.Source.CredentialsFile == "" {
		cfg.Source.CredentialsFile = "credentials.json"
	}
	if cfg.Source.Delimiter == "" {
		cfg.Source.Delimiter = ","
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./reports"
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = FormatText
	}
	cfg.OutputFormat = strings.ToLower(cfg.OutputFormat)
	if cfg.FileNameFormat == "" {
		cfg.FileNameFormat = "{address}_{uuid}.txt"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	v, err := forms.ParseVersion(c.FormsVersion)
	if err != nil {
		return err
	}
	c.version = v

	switch c.Source.Type {
	case SourceSheets:
		if c.MainSpreadsheet.ID == "" {
			return eris.New("main_spreadsheet.id is required for a sheets source")
		}
	case SourceCSV, SourceXLSX:
		if c.Source.Path == "" {
			return eris.Errorf("source.path is required for a %s source", c.Source.Type)
		}
	default:
		return eris.Errorf("unknown source.type %q", c.Source.Type)
	}

	if err := ValidateFormat(c.OutputFormat); err != nil {
		return err
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return eris.Errorf("unknown log_level %q", c.LogLevel)
	}

	return nil
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatXLSX, FormatStdout:
		return nil
	default:
		return eris.Errorf("unknown output_format %q", format)
	}
}
