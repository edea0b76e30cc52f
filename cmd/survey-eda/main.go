package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"

	"berkotech.co/survey/internal/chart"
	"berkotech.co/survey/internal/config"
	"berkotech.co/survey/internal/logger"
	"berkotech.co/survey/internal/survey"
)

func main() {
	flags := pflag.NewFlagSet("survey-eda", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "path to a YAML config file")
	flags.StringP("dataset", "d", "", "survey export (.csv, .csv.gz or .xlsx)")
	flags.StringP("out", "o", "", "directory for the rendered figures")
	flags.String("log-level", "", "debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])

	v := config.New()
	_ = v.BindPFlag("dataset.path", flags.Lookup("dataset"))
	_ = v.BindPFlag("report.output_dir", flags.Lookup("out"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))

	cfg, err := config.Load(v, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File); err != nil {
		fmt.Fprintln(os.Stderr, "open log file:", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Log.WithError(err).Fatal("report failed")
	}
}

type figureJob struct {
	name  string
	build func() (chart.Figure, error)
}

// run renders every configured figure and the aggregate workbook. A failed
// figure does not stop the others; all failures are returned joined.
func run(cfg *config.Config) error {
	log := logger.For("report")
	display := chart.FileDisplay{
		Dir:    cfg.Report.OutputDir,
		Format: cfg.Report.Format,
		Width:  vg.Length(cfg.Report.Width) * vg.Inch,
		Height: vg.Length(cfg.Report.Height) * vg.Inch,
	}

	a, err := survey.New(cfg.Dataset.Path,
		survey.WithLogger(logger.For("survey")),
		survey.WithSheet(cfg.Dataset.Sheet),
		survey.WithColumnNames(cfg.Labels.Columns.Labels()),
		survey.WithWorkLabels(cfg.Labels.Work.Labels()),
		survey.WithSatisfactionLabels(cfg.Labels.SatMaterial.Labels()),
		survey.WithAgeOrder(cfg.Labels.AgeOrder),
		survey.WithStopwords(cfg.Plots.Stopwords),
		survey.WithMaxWords(cfg.Plots.MaxWords),
		survey.WithDisplay(display),
	)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"respondents": len(a.Timestamps()),
		"countries":   len(a.Countries()),
	}).Info("dataset ready")

	figures := []figureJob{
		{"date_count", func() (chart.Figure, error) { return a.PlotDateCount() }},
		{"top_countries", func() (chart.Figure, error) { return a.PlotTopCountries(cfg.Plots.TopCountries) }},
		{"work_country", func() (chart.Figure, error) { return a.PlotWorkCountry(cfg.Plots.WorkCountries) }},
		{"age_country", func() (chart.Figure, error) { return a.PlotAge() }},
		{"age_experience", a.PlotAgeExperience},
		{"satisfaction", func() (chart.Figure, error) { return a.PlotSatisfaction() }},
		{"country_interests", func() (chart.Figure, error) { return a.PlotCountryInterests(cfg.Plots.InterestCountries) }},
	}
	for _, f := range cfg.Plots.Features {
		feature := f
		figures = append(figures, figureJob{"feature_" + feature, func() (chart.Figure, error) {
			return a.PlotFeatureCount(feature, "Distribution of "+feature)
		}})
	}

	var failed []error
	for _, f := range figures {
		fig, err := f.build()
		if err == nil {
			err = display.Show(f.name, fig)
		}
		if err != nil {
			log.WithError(err).WithField("figure", f.name).Error("figure skipped")
			failed = append(failed, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		log.WithField("figure", f.name).Info("figure written")
	}

	for _, col := range cfg.Plots.WordClouds {
		if err := a.DisplayWordCloud(col); err != nil {
			log.WithError(err).WithField("column", col).Error("word cloud skipped")
			failed = append(failed, fmt.Errorf("wordcloud %s: %w", col, err))
			continue
		}
		log.WithField("column", col).Info("word cloud written")
	}

	if cfg.Report.Workbook != "" {
		path := filepath.Join(cfg.Report.OutputDir, cfg.Report.Workbook)
		if err := writeWorkbook(a, cfg.Report.OutputDir, path); err != nil {
			log.WithError(err).WithField("path", path).Error("workbook skipped")
			failed = append(failed, fmt.Errorf("write workbook: %w", err))
		} else {
			log.WithField("path", path).Info("workbook written")
		}
	}
	return errors.Join(failed...)
}

func writeWorkbook(a *survey.Analyzer, dir, path string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return a.SaveWorkbook(path)
}
