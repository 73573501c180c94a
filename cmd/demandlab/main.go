package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kineticbrand/demandlab/internal/config"
	"github.com/kineticbrand/demandlab/internal/models"
	"github.com/kineticbrand/demandlab/pkg/analytics"
	"github.com/kineticbrand/demandlab/pkg/crawler"
	"github.com/kineticbrand/demandlab/pkg/pipeline"
	"github.com/kineticbrand/demandlab/pkg/reporter"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "demandlab",
	Short: "Demand Lab - website demand-generation diagnostics",
	Long: `Demand Lab crawls a target website, extracts demand-generation
signals, scores five dimensions of the marketing motion and derives
quick wins and strategic projects.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [URL]",
	Short: "Run the full diagnostic pipeline against a website",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		companyType, _ := cmd.Flags().GetString("company-type")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		snapshotFile, _ := cmd.Flags().GetString("snapshot")
		workspace, _ := cmd.Flags().GetString("workspace")

		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		if snapshotFile == "" {
			snapshotFile = cfg.Analytics.SnapshotFile
		}
		if workspace == "" {
			workspace = cfg.Analytics.WorkspaceID
		}
		if format == "" {
			format = cfg.Report.Format
		}

		c := crawler.New(crawler.Options{
			MaxPages:          cfg.Crawler.MaxPages,
			MaxLinkFollows:    cfg.Crawler.MaxLinkFollows,
			PageTimeout:       cfg.Crawler.PageTimeout,
			UserAgent:         cfg.Crawler.UserAgent,
			RequestsPerSecond: cfg.Crawler.RequestsPerSecond,
			RespectRobots:     cfg.Crawler.RespectRobotsTxt,
		}, log)

		p := pipeline.New(c, analytics.FileProvider{Path: snapshotFile}, log)
		report, err := p.Run(cmd.Context(), target, models.CompanyType(companyType), workspace)
		if err != nil {
			return fmt.Errorf("pipeline failed: %w", err)
		}

		rendered, err := reporter.New().Generate(report, format)
		if err != nil {
			return fmt.Errorf("report generation failed: %w", err)
		}
		return emit(rendered, output)
	},
}

var crawlCmd = &cobra.Command{
	Use:   "crawl [URL]",
	Short: "Crawl a website and print the classified page set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		c := crawler.New(crawler.Options{
			MaxPages:          cfg.Crawler.MaxPages,
			MaxLinkFollows:    cfg.Crawler.MaxLinkFollows,
			PageTimeout:       cfg.Crawler.PageTimeout,
			UserAgent:         cfg.Crawler.UserAgent,
			RequestsPerSecond: cfg.Crawler.RequestsPerSecond,
			RespectRobots:     cfg.Crawler.RespectRobotsTxt,
		}, log)

		result, err := c.Crawl(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("crawl failed: %w", err)
		}

		fmt.Printf("Crawled %d page(s) from %s\n", result.TotalPages, result.Domain)
		for _, page := range result.Pages {
			fmt.Printf("  %-10s %s (form=%t cta=%t)\n", page.Type, page.URL, page.HasForm, page.HasCTA)
		}
		return nil
	},
}

func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	log, err := buildLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zc.Level = level
	return zc.Build()
}

func emit(content, output string) error {
	if output == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("Report saved to %s\n", output)
	return nil
}

func init() {
	analyzeCmd.Flags().String("company-type", "unknown", "Business model: b2b_services, local_service, ecommerce, saas, other, unknown")
	analyzeCmd.Flags().String("format", "", "Report format (json, markdown, html)")
	analyzeCmd.Flags().String("output", "", "Output file for the report")
	analyzeCmd.Flags().String("snapshot", "", "Path to an analytics snapshot JSON export")
	analyzeCmd.Flags().String("workspace", "", "Analytics workspace ID")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(crawlCmd)

	rootCmd.PersistentFlags().String("config", "", "Config file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
