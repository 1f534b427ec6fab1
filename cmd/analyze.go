package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-insight/internal/agent"
	"github.com/fmuoria/resume-insight/internal/config"
	"github.com/fmuoria/resume-insight/internal/export"
	"github.com/fmuoria/resume-insight/internal/llm"
	"github.com/fmuoria/resume-insight/internal/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Run the full analysis pipeline on a resume file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		defer log.Sync()

		cfg, err := getConfig()
		if err != nil {
			fail(err.Error())
		}

		req := models.AnalyzeRequest{}
		req.JobTitle, _ = cmd.Flags().GetString("job-title")
		req.JobDescription, _ = cmd.Flags().GetString("job-description")
		req.RequiredSkills, _ = cmd.Flags().GetStringSlice("required-skills")
		req.PreferredSkills, _ = cmd.Flags().GetStringSlice("preferred-skills")
		if cmd.Flags().Changed("target-years") {
			years, yearsErr := cmd.Flags().GetInt("target-years")
			if yearsErr != nil {
				fail(fmt.Sprintf("invalid target-years: %v", yearsErr))
			}
			req.TargetYears = &years
		}

		ctx := context.Background()
		enricher, closeClient := buildEnricher(ctx, cfg, log)
		defer closeClient()

		report, err := agent.New(nil, enricher, log).AnalyzeFile(ctx, args[0], req)
		if err != nil {
			fail(err.Error())
		}

		printJSON(report)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <report.json> <output.xlsx>",
	Short: "Render a saved feedback report as an Excel workbook",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fail(fmt.Sprintf("failed to read report: %v", err))
		}

		var report models.FeedbackReport
		if err := json.Unmarshal(data, &report); err != nil {
			fail(fmt.Sprintf("failed to parse report: %v", err))
		}

		if err := export.ExportToExcel(report, args[1]); err != nil {
			fail(err.Error())
		}

		printJSON(map[string]any{
			"success": true,
			"output":  args[1],
		})
	},
}

// buildEnricher creates the enrichment layer. Without AI enabled the
// enricher runs in rule-based mode; the returned closer is always safe
// to call.
func buildEnricher(ctx context.Context, cfg *config.Config, log *zap.Logger) (*llm.Enricher, func()) {
	timeout := time.Duration(cfg.EnrichmentTimeout) * time.Second

	if !cfg.AIEnabled {
		return llm.New(nil, log, timeout), func() {}
	}

	client, err := llm.NewVertexAIClient(ctx, cfg.GoogleCloudProject, cfg.GoogleCloudLocation)
	if err != nil {
		log.Warn("AI client unavailable, running rule-based enrichment", zap.Error(err))
		return llm.New(nil, log, timeout), func() {}
	}

	return llm.New(client, log, timeout), func() { client.Close() }
}

func init() {
	analyzeCmd.Flags().String("job-title", "", "target job title")
	analyzeCmd.Flags().String("job-description", "", "target job description")
	analyzeCmd.Flags().StringSlice("required-skills", nil, "explicitly required skills")
	analyzeCmd.Flags().StringSlice("preferred-skills", nil, "explicitly preferred skills")
	analyzeCmd.Flags().Int("target-years", 0, "target years of experience")

	rootCmd.AddCommand(analyzeCmd, exportCmd)
}
