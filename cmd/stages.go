package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmuoria/resume-insight/internal/ats"
	"github.com/fmuoria/resume-insight/internal/extraction"
	"github.com/fmuoria/resume-insight/internal/ingestion"
	"github.com/fmuoria/resume-insight/internal/normalizer"
	"github.com/fmuoria/resume-insight/internal/scoring"
	"github.com/fmuoria/resume-insight/internal/sections"
	"github.com/fmuoria/resume-insight/internal/skillsgap"
	"github.com/fmuoria/resume-insight/internal/taxonomy"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text>",
	Short: "Normalize raw resume text and report cleaning statistics",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		printJSON(normalizer.New().Normalize(args[0]))
	},
}

var sectionsCmd = &cobra.Command{
	Use:   "sections <text>",
	Short: "Detect resume sections and contact lines",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		printJSON(sections.New().Detect(args[0]))
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract <text>",
	Short: "Extract structured data from resume text",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		printJSON(extraction.New(taxonomy.Default()).Extract(args[0]))
	},
}

var atsCmd = &cobra.Command{
	Use:   "ats <file>",
	Short: "Score a resume file for ATS compatibility",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		doc, err := ingestion.NewExtractor().Extract(args[0])
		if err != nil {
			fail(err.Error())
		}
		if !doc.Text.Success {
			fail(doc.Text.Error)
		}

		normalized := normalizer.New().Normalize(doc.Text.Text)
		data := extraction.New(taxonomy.Default()).Extract(normalized.Normalized)

		printJSON(ats.New(ats.DefaultThresholds()).Analyze(ats.Input{
			FileInfo:  doc.Info,
			Text:      normalized.Normalized,
			Data:      &data,
			IsScanned: doc.Text.IsScanned,
		}))
	},
}

var skillsGapCmd = &cobra.Command{
	Use:   "skills-gap <text>",
	Short: "Compare resume skills against a target skill set",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		normalized := normalizer.New().Normalize(args[0])
		tax := taxonomy.Default()
		data := extraction.New(tax).Extract(normalized.Normalized)

		jobTitle, _ := cmd.Flags().GetString("job-title")
		jobDescription, _ := cmd.Flags().GetString("job-description")
		required, _ := cmd.Flags().GetStringSlice("required")
		preferred, _ := cmd.Flags().GetStringSlice("preferred")

		printJSON(skillsgap.New(tax).Analyze(data.Skills, skillsgap.Request{
			JobTitle:        jobTitle,
			JobDescription:  jobDescription,
			RequiredSkills:  required,
			PreferredSkills: preferred,
		}))
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <text>",
	Short: "Score resume quality against the rubric",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		normalized := normalizer.New().Normalize(args[0])
		tax := taxonomy.Default()
		data := extraction.New(tax).Extract(normalized.Normalized)

		targetSkills, _ := cmd.Flags().GetStringSlice("target-skills")
		input := scoring.Input{
			Text:         normalized.Normalized,
			Data:         &data,
			TargetSkills: targetSkills,
		}
		if cmd.Flags().Changed("target-years") {
			years, err := cmd.Flags().GetFloat64("target-years")
			if err != nil {
				fail(fmt.Sprintf("invalid target-years: %v", err))
			}
			input.TargetYears = &years
		}

		printJSON(scoring.New(tax, scoring.DefaultThresholds()).Score(input))
	},
}

func init() {
	skillsGapCmd.Flags().String("job-title", "", "target job title for role template fallback")
	skillsGapCmd.Flags().String("job-description", "", "job description to extract target skills from")
	skillsGapCmd.Flags().StringSlice("required", nil, "explicitly required skills")
	skillsGapCmd.Flags().StringSlice("preferred", nil, "explicitly preferred skills")

	scoreCmd.Flags().StringSlice("target-skills", nil, "skills to measure content fit against")
	scoreCmd.Flags().Float64("target-years", 0, "target years of experience")

	rootCmd.AddCommand(normalizeCmd, sectionsCmd, extractCmd, atsCmd, skillsGapCmd, scoreCmd)
}
