package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"berkotech.co/survey/internal/survey"
)

// Config represents the complete report configuration
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Report  ReportConfig  `mapstructure:"report"`
	Plots   PlotsConfig   `mapstructure:"plots"`
	Labels  LabelsConfig  `mapstructure:"labels"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DatasetConfig points at the survey export
type DatasetConfig struct {
	Path  string `mapstructure:"path"`
	Sheet string `mapstructure:"sheet"`
}

// ReportConfig controls where and how figures are written
type ReportConfig struct {
	OutputDir string  `mapstructure:"output_dir"`
	Format    string  `mapstructure:"format"`
	Width     float64 `mapstructure:"width"`  // inches
	Height    float64 `mapstructure:"height"` // inches
	Workbook  string  `mapstructure:"workbook"`
}

// PlotsConfig holds the sizes of the country selections and the columns
// to chart
type PlotsConfig struct {
	TopCountries      int      `mapstructure:"top_countries"`
	WorkCountries     int      `mapstructure:"work_countries"`
	InterestCountries int      `mapstructure:"interest_countries"`
	Features          []string `mapstructure:"features"`
	WordClouds        []string `mapstructure:"wordclouds"`
	Stopwords         []string `mapstructure:"stopwords"`
	MaxWords          int      `mapstructure:"max_words"`
}

// Label maps one raw value to its display name. Tables are lists rather than
// maps because viper lower-cases map keys.
type Label struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// LabelTable is a label lookup written as a list of from/to pairs.
type LabelTable []Label

// Labels converts the table for the analyzer.
func (t LabelTable) Labels() survey.Labels {
	l := make(survey.Labels, len(t))
	for _, e := range t {
		l[e.From] = e.To
	}
	return l
}

// LabelsConfig holds the lookup tables
type LabelsConfig struct {
	Columns     LabelTable `mapstructure:"columns"`
	Work        LabelTable `mapstructure:"work"`
	SatMaterial LabelTable `mapstructure:"sat_material"`
	AgeOrder    []string   `mapstructure:"age_order"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// New returns a viper instance with defaults and environment overrides set.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SURVEY_EDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path (if any) into v and unmarshals it
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func table(l survey.Labels) []map[string]string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]map[string]string, len(keys))
	for i, k := range keys {
		out[i] = map[string]string{"from": k, "to": l[k]}
	}
	return out
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", "./input/2020_opendatascience_poll_data.csv.gz")

	v.SetDefault("report.output_dir", "./output")
	v.SetDefault("report.format", "png")
	v.SetDefault("report.width", 12.0)
	v.SetDefault("report.height", 8.0)
	v.SetDefault("report.workbook", "aggregates.xlsx")

	v.SetDefault("plots.top_countries", 18)
	v.SetDefault("plots.work_countries", 5)
	v.SetDefault("plots.interest_countries", 4)
	v.SetDefault("plots.features", []string{survey.ColWork, survey.ColExperience, survey.ColHowFound, survey.ColAge})
	v.SetDefault("plots.wordclouds", []string{survey.ColWhy})
	v.SetDefault("plots.stopwords", survey.DefaultStopwords)
	v.SetDefault("plots.max_words", survey.DefaultMaxWords)

	v.SetDefault("labels.columns", table(survey.DefaultColumnNames))
	v.SetDefault("labels.work", table(survey.DefaultWorkLabels))
	v.SetDefault("labels.sat_material", table(survey.DefaultSatisfactionLabels))
	v.SetDefault("labels.age_order", survey.DefaultAgeOrder)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}

	if c.Report.OutputDir == "" {
		return fmt.Errorf("report.output_dir is required")
	}
	validFormats := map[string]bool{"png": true, "jpg": true, "jpeg": true, "svg": true, "pdf": true, "eps": true, "tif": true, "tiff": true}
	if !validFormats[strings.ToLower(c.Report.Format)] {
		return fmt.Errorf("report.format must be one of: png, jpg, svg, pdf, eps, tiff")
	}
	if c.Report.Width <= 0 || c.Report.Height <= 0 {
		return fmt.Errorf("report.width and report.height must be positive")
	}

	if c.Plots.TopCountries < 1 {
		return fmt.Errorf("plots.top_countries must be at least 1")
	}
	if c.Plots.WorkCountries < 1 {
		return fmt.Errorf("plots.work_countries must be at least 1")
	}
	if c.Plots.InterestCountries < 1 || c.Plots.InterestCountries > 4 {
		return fmt.Errorf("plots.interest_countries must be between 1 and 4")
	}
	if c.Plots.MaxWords < 0 {
		return fmt.Errorf("plots.max_words must not be negative")
	}

	if len(c.Labels.Columns) == 0 {
		return fmt.Errorf("labels.columns must not be empty")
	}
	for _, t := range []LabelTable{c.Labels.Columns, c.Labels.Work, c.Labels.SatMaterial} {
		for _, l := range t {
			if l.From == "" {
				return fmt.Errorf("label entries need a non-empty from value")
			}
		}
	}
	if len(c.Labels.AgeOrder) == 0 {
		return fmt.Errorf("labels.age_order must not be empty")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
