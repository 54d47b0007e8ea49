package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"msme-carbon/internal/config"
	"msme-carbon/internal/database"
	"msme-carbon/internal/repositories"
	"msme-carbon/internal/services"

	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root command has loaded configuration
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	logLevel  string
	logFormat string
	openDB    func(ctx context.Context, cfg *config.Config) (*database.DB, error)
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{openDB: database.Initialize})
}

func newRootCmdFor(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "msmecarbon",
		Short:        "Classify MSME payment notifications into industry sectors and weigh their carbon impact",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (default LOG_LEVEL or info)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json or text (default json in production, text otherwise)")

	cmd.AddCommand(
		newServeCmd(a),
		newClassifyCmd(a),
		newIndustriesCmd(a),
		newMigrateCmd(a),
		newIndicatorsCmd(a),
	)
	return cmd
}

func (a *app) setup(logOut io.Writer) error {
	a.cfg = config.Load()
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	levelName := firstNonEmpty(a.logLevel, a.cfg.Log.Level, "info")
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	format := strings.ToLower(firstNonEmpty(a.logFormat, a.cfg.Log.Format))
	if format == "" {
		format = "text"
		if a.cfg.IsProduction() {
			format = "json"
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(logOut, opts))
	case "text":
		a.logger = slog.New(slog.NewTextHandler(logOut, opts))
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	slog.SetDefault(a.logger)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// classifierStack is the wired classification pipeline shared by the serve and classify commands
type classifierStack struct {
	registry   *services.SectorRegistry
	classifier services.ClassifierServiceInterface
	assessor   services.CarbonAssessmentServiceInterface
}

// buildStack validates the sector catalog, merges configured sender indicators when a
// database is given, and wires the classifier with the given collaborators.
func (a *app) buildStack(
	ctx context.Context,
	db *database.DB,
	metrics services.MetricsRecorderInterface,
	logger services.ClassificationLoggerInterface,
) (*classifierStack, error) {
	var opts []services.RegistryOption
	if db != nil {
		base, err := services.DefaultSectorRegistry()
		if err != nil {
			return nil, err
		}
		indicators := services.NewSenderIndicatorService(repositories.NewSenderIndicatorRepository(db.DB), base, metrics, logger)
		option, count, err := indicators.RegistryOption(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load sender indicators: %w", err)
		}
		a.logger.Info("loaded configured sender indicators", "count", count)
		opts = append(opts, option)
	}

	registry, err := services.DefaultSectorRegistry(opts...)
	if err != nil {
		return nil, err
	}

	classifierOpts := []services.ClassifierOption{
		services.WithMinKeywordMatches(a.cfg.Classifier.MinKeywordMatches),
		services.WithRegionDetection(a.cfg.Classifier.RegionDetection),
	}
	if metrics != nil {
		classifierOpts = append(classifierOpts, services.WithMetrics(metrics))
	}
	if logger != nil {
		classifierOpts = append(classifierOpts, services.WithClassificationLogger(logger))
	}

	return &classifierStack{
		registry:   registry,
		classifier: services.NewClassifierService(registry, classifierOpts...),
		assessor:   services.NewCarbonAssessmentService(metrics, logger),
	}, nil
}

// openIndicatorDB connects to the database only when configured sender indicators are enabled
func (a *app) openIndicatorDB(ctx context.Context) (*database.DB, error) {
	if !a.cfg.Classifier.LoadSenderIndicators {
		return nil, nil
	}
	return a.openDB(ctx, a.cfg)
}

func closeDB(db *database.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("failed to close database", "error", err)
	}
}
