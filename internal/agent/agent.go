// Package agent orchestrates the analysis pipeline: decode, normalize,
// detect sections, extract, score, enrich, report. Stage packages never
// return errors; the agent owns the error taxonomy for the request as a
// whole.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-insight/internal/ats"
	"github.com/fmuoria/resume-insight/internal/extraction"
	"github.com/fmuoria/resume-insight/internal/ingestion"
	"github.com/fmuoria/resume-insight/internal/llm"
	"github.com/fmuoria/resume-insight/internal/models"
	"github.com/fmuoria/resume-insight/internal/normalizer"
	"github.com/fmuoria/resume-insight/internal/report"
	"github.com/fmuoria/resume-insight/internal/scoring"
	"github.com/fmuoria/resume-insight/internal/sections"
	"github.com/fmuoria/resume-insight/internal/skillsgap"
	"github.com/fmuoria/resume-insight/internal/taxonomy"
)

// Sentinel errors for the two terminal failure classes. Callers map
// ErrInput to a 400-equivalent status and ErrInternal to a 500.
var (
	ErrInput    = errors.New("input error")
	ErrInternal = errors.New("internal error")
)

// Agent runs the full pipeline for one document per call. All stage
// components are stateless, so one Agent serves concurrent requests.
type Agent struct {
	extractor  *ingestion.Extractor
	normalizer *normalizer.Normalizer
	detector   *sections.Detector
	info       *extraction.Extractor
	ats        *ats.Analyzer
	gap        *skillsgap.Analyzer
	scorer     *scoring.Scorer
	reporter   *report.Generator
	enricher   *llm.Enricher
	validate   *validator.Validate
	logger     *zap.Logger
}

// New wires all pipeline stages around a shared taxonomy. A nil
// enricher skips AI insights entirely.
func New(tax *taxonomy.Taxonomy, enricher *llm.Enricher, logger *zap.Logger) *Agent {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Agent{
		extractor:  ingestion.NewExtractor(),
		normalizer: normalizer.New(),
		detector:   sections.New(),
		info:       extraction.New(tax),
		ats:        ats.New(ats.DefaultThresholds()),
		gap:        skillsgap.New(tax),
		scorer:     scoring.New(tax, scoring.DefaultThresholds()),
		reporter:   report.New(),
		enricher:   enricher,
		validate:   validator.New(),
		logger:     logger,
	}
}

// AnalyzeFile decodes the file at path and runs the pipeline on it.
func (a *Agent) AnalyzeFile(ctx context.Context, path string, req models.AnalyzeRequest) (models.FeedbackReport, error) {
	if err := a.validate.Struct(req); err != nil {
		return models.FeedbackReport{}, fmt.Errorf("%w: invalid analyze request: %v", ErrInput, err)
	}

	doc, err := a.extractor.Extract(path)
	if err != nil {
		return models.FeedbackReport{}, fmt.Errorf("%w: %v", ErrInput, err)
	}
	if !doc.Text.Success {
		return models.FeedbackReport{}, fmt.Errorf("%w: %s", ErrInput, doc.Text.Error)
	}

	return a.Analyze(ctx, doc, req)
}

// Analyze runs the pipeline stages on an already-decoded document.
// Unexpected panics in any stage surface as ErrInternal; no partial
// report is returned in that case.
func (a *Agent) Analyze(ctx context.Context, doc ingestion.Document, req models.AnalyzeRequest) (rep models.FeedbackReport, err error) {
	defer a.recoverPanic(&err)

	start := time.Now()

	normalized := a.normalizer.Normalize(doc.Text.Text)
	scan := a.detector.Detect(normalized.Normalized)
	data := a.info.Extract(normalized.Normalized)

	atsResult := a.ats.Analyze(ats.Input{
		FileInfo:  doc.Info,
		Text:      normalized.Normalized,
		Data:      &data,
		IsScanned: doc.Text.IsScanned,
	})

	gapReq := skillsgap.Request{
		JobTitle:        req.JobTitle,
		JobDescription:  req.JobDescription,
		RequiredSkills:  req.RequiredSkills,
		PreferredSkills: req.PreferredSkills,
	}
	gapResult := a.gap.Analyze(data.Skills, gapReq)

	target := a.gap.ResolveTarget(gapReq)
	quality := a.scorer.Score(scoring.Input{
		Text:         normalized.Normalized,
		Data:         &data,
		TargetSkills: append(append([]string{}, target.Required...), target.Preferred...),
		TargetYears:  targetYears(req.TargetYears),
		ATS:          &atsResult,
	})

	var enrichment *models.EnrichmentResult
	if a.enricher != nil {
		result := a.enricher.Enrich(ctx, llm.Input{
			Data:           &data,
			Text:           normalized.Normalized,
			JobTitle:       req.JobTitle,
			JobDescription: req.JobDescription,
			Gap:            &gapResult,
		})
		enrichment = &result
	}

	rep = a.reporter.Generate(report.Input{
		FileInfo:   doc.Info,
		IsScanned:  doc.Text.IsScanned,
		Normalized: &normalized,
		Sections:   &scan,
		Data:       &data,
		ATS:        &atsResult,
		Gap:        &gapResult,
		Quality:    &quality,
		Enrichment: enrichment,
	})

	a.logger.Info("analysis complete",
		zap.String("request_id", rep.RequestID),
		zap.String("filename", doc.Info.Filename),
		zap.Float64("overall_score", quality.OverallScore),
		zap.Float64("ats_score", atsResult.Score.TotalScore),
		zap.Duration("duration", time.Since(start)),
	)
	return rep, nil
}

func (a *Agent) recoverPanic(err *error) {
	if r := recover(); r != nil {
		a.logger.Error("pipeline panic",
			zap.Any("panic", r),
			zap.Stack("stack"),
		)
		*err = fmt.Errorf("%w: unexpected panic: %v", ErrInternal, r)
	}
}

func targetYears(years *int) *float64 {
	if years == nil {
		return nil
	}
	y := float64(*years)
	return &y
}
