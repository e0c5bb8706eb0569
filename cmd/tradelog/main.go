package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tradelog/internal/analytics"
	"tradelog/internal/config"
	cronrunner "tradelog/internal/cron"
	"tradelog/internal/handler"
	"tradelog/internal/ingest"
	"tradelog/internal/logger"
	"tradelog/internal/report"
	"tradelog/internal/service"
)

var (
	configFile     string
	analyzeInput   string
	analyzeJSON    string
	analyzeCSV     string
	analyzeGroup   string
	templateOutput string
)

var rootCmd = &cobra.Command{
	Use:          "tradelog",
	Short:        "Trade log performance analytics",
	SilenceUsage: true,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a trade log and print the performance report",
	RunE:  runAnalyze,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis over HTTP",
	RunE:  runServe,
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a template CSV with the expected columns",
	RunE:  runTemplate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "config file path")
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "trade log CSV (overrides ingest.input)")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "also export the report as JSON to this path")
	analyzeCmd.Flags().StringVar(&analyzeCSV, "csv", "", "also export the enriched records as CSV to this path")
	analyzeCmd.Flags().StringVar(&analyzeGroup, "group", "", "limit the printed group tables to one view (category, symbol or month)")
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "tradelog_template.csv", "template output path")
	rootCmd.AddCommand(analyzeCmd, serveCmd, templateCmd)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	envOnly := false
	if raw := os.Getenv("TL_ENV_ONLY"); raw != "" {
		envOnly = strings.EqualFold(raw, "true") || raw == "1"
	}
	if !envOnly {
		if _, err := os.Stat(configFile); err != nil {
			envOnly = true
		}
	}
	return config.Load(configFile, envOnly)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	input := analyzeInput
	if input == "" {
		input = cfg.Ingest.Input
	}

	records, err := ingest.LoadFile(input)
	if err != nil {
		return err
	}
	rep := analytics.Analyze(records)

	display := rep
	if view := strings.ToLower(strings.TrimSpace(analyzeGroup)); view != "" {
		d := *rep
		switch view {
		case "category":
			d.BySymbol, d.ByMonth = nil, nil
		case "symbol":
			d.ByCategory, d.ByMonth = nil, nil
		case "month":
			d.ByCategory, d.BySymbol = nil, nil
		default:
			return fmt.Errorf("unknown group view %q, want category, symbol or month", analyzeGroup)
		}
		display = &d
	}

	rn := report.Renderer{Precision: cfg.Report.Precision}
	if err := rn.WriteText(os.Stdout, display); err != nil {
		return err
	}
	if analyzeJSON != "" {
		if err := rn.ExportJSON(analyzeJSON, rep); err != nil {
			return err
		}
		fmt.Printf("report exported to %s\n", analyzeJSON)
	}
	if analyzeCSV != "" {
		if err := rn.ExportCSV(analyzeCSV, rep.Records); err != nil {
			return err
		}
		fmt.Printf("records exported to %s\n", analyzeCSV)
	}
	return nil
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if err := ingest.WriteTemplateFile(templateOutput); err != nil {
		return err
	}
	fmt.Printf("template written to %s\n", templateOutput)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logg, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logg.Sync()

	svc := &service.AnalysisService{Source: cfg.Ingest.Input, Logger: logg}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A missing or invalid log file should not keep the server down. The
	// snapshot stays empty until a reload succeeds.
	if err := svc.Reload(ctx); err != nil {
		logg.Warn("initial load failed", zap.Error(err))
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	rn := report.Renderer{Precision: cfg.Report.Precision}
	healthHandler := &handler.HealthHandler{Analysis: svc}
	healthHandler.Register(engine)
	handler.RegisterDocs(engine)
	analyticsHandler := &handler.AnalyticsHandler{Analysis: svc, Renderer: rn}
	analyticsHandler.Register(engine)
	recordsHandler := &handler.RecordsHandler{Analysis: svc, Renderer: rn}
	recordsHandler.Register(engine)
	reloadHandler := &handler.ReloadHandler{Analysis: svc, Logger: logg}
	reloadHandler.Register(engine)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	cronRunner := cronrunner.New(logg, ctx)
	if cfg.Cron.Enabled {
		_, err := cronRunner.Add(cfg.Cron.Refresh, func(ctx context.Context) {
			if err := svc.Reload(ctx); err != nil {
				logg.Warn("cron refresh failed", zap.Error(err))
			}
		})
		if err != nil {
			logg.Warn("cron register refresh failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	errCh := make(chan error, 1)
	go func() {
		logg.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logg.Info("shutdown requested")
	case err := <-errCh:
		logg.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	return nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
