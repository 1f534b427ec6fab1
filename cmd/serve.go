package cmd

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-insight/internal/agent"
	"github.com/fmuoria/resume-insight/internal/api"
	"github.com/fmuoria/resume-insight/internal/ingestion"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP analysis server",
	Run: func(_ *cobra.Command, _ []string) {
		log := newLogger()
		defer log.Sync()

		cfg, err := getConfig()
		if err != nil {
			log.Fatal("failed to load config", zap.Error(err))
		}
		if err := cfg.Validate(); err != nil {
			log.Fatal("invalid config", zap.Error(err))
		}

		ctx := context.Background()
		enricher, closeClient := buildEnricher(ctx, cfg, log)
		defer closeClient()

		a := agent.New(nil, enricher, log)
		files := ingestion.NewFileHandler(cfg.UploadsDir)
		server := api.NewServer(a, files, log)

		log.Info("starting server",
			zap.String("addr", cfg.ListenAddr),
			zap.Bool("ai_enabled", cfg.AIEnabled),
		)

		if err := http.ListenAndServe(cfg.ListenAddr, server.Router()); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	},
}

func init() {
	serveCmd.Flags().String("listen-addr", ":8080", "address to listen on")
	serveCmd.Flags().Bool("ai-enabled", false, "enable Vertex AI enrichment")

	viper.BindPFlag("listen-addr", serveCmd.Flags().Lookup("listen-addr"))
	viper.BindPFlag("ai-enabled", serveCmd.Flags().Lookup("ai-enabled"))

	rootCmd.AddCommand(serveCmd)
}
