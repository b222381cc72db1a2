// Package session orchestrates one offline training run: load the
// dataset, split it once, train and evaluate each requested algorithm,
// persist artifacts and reports, and export the best model.
package session

import (
	"errors"
	"fmt"
	"time"

	"intentrain/internal/artifact"
	"intentrain/internal/config"
	"intentrain/internal/dataset"
	"intentrain/internal/eval"
	"intentrain/internal/log"
	"intentrain/internal/model"
	"intentrain/internal/report"
	"intentrain/internal/textnorm"
	"intentrain/internal/viz"
)

// Result summarizes what a session produced.
type Result struct {
	Report         report.Report
	ReportPath     string
	ModelPaths     []string
	ProductionPath string
	// AlgorithmErrors records per-algorithm training failures that did
	// not halt the batch, keyed by the requested id.
	AlgorithmErrors map[string]error
}

// Run executes the full training pipeline described by cfg. Dataset
// and split failures halt the session; an unsupported algorithm id
// fails only its own training call; plot and rendered-report failures
// are logged and swallowed.
func Run(cfg config.Config, logger *log.Logger) (*Result, error) {
	samples, err := dataset.Load(cfg.DatasetPath, dataset.LoadOptions{
		IncludeIntents: cfg.IncludeIntents,
		ExcludeIntents: cfg.ExcludeIntents,
	})
	if err != nil {
		return nil, err
	}
	logger.Printf("loaded %d samples from %s", len(samples), cfg.DatasetPath)

	view := dataset.FromSamples(samples, textnorm.New())
	summary := view.Summarize()

	split, err := dataset.NewSplit(view, cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}
	logger.Printf("split: %d train / %d test", len(split.TrainFeatures), len(split.TestFeatures))

	store := artifact.NewStore(cfg.OutputDir)
	registry := model.NewRegistry()
	result := &Result{AlgorithmErrors: make(map[string]error)}

	for _, id := range cfg.Algorithms {
		if err := trainOne(id, cfg, split, view.Intents(), store, registry, result, logger); err != nil {
			return nil, err
		}
	}

	performance := make(map[string]float64)
	for name, entry := range registry.All() {
		performance[name] = entry.Accuracy
	}

	rpt := report.Build(summary, performance, report.Recommend(summary))
	reportName := fmt.Sprintf("training_report_%s.json", time.Now().UTC().Format("20060102_150405"))
	reportPath, err := store.WriteReport(reportName, rpt)
	if err != nil {
		return nil, err
	}
	result.Report = rpt
	result.ReportPath = reportPath
	logger.Printf("report: %s", reportPath)

	renderReport(rpt, store, logger)

	if len(registry.Names()) > 0 {
		best, err := registry.Best()
		if err != nil {
			return nil, err
		}
		productionPath, err := store.ExportProduction(registry, view.Intents(), best)
		if err != nil {
			return nil, err
		}
		result.ProductionPath = productionPath
		logger.Printf("production export (%s): %s", best, productionPath)
	}

	return result, nil
}

// trainOne trains, evaluates, registers, and persists one algorithm.
// An unsupported id is recorded and skipped; every other failure is
// returned and halts the session.
func trainOne(
	id string,
	cfg config.Config,
	split *dataset.Split,
	intents []string,
	store *artifact.Store,
	registry *model.Registry,
	result *Result,
	logger *log.Logger,
) error {
	alg, err := model.ParseAlgorithm(id)
	if err != nil {
		var unsupported *model.UnsupportedAlgorithmError
		if errors.As(err, &unsupported) {
			logger.Warnf("skipping algorithm: %v", err)
			result.AlgorithmErrors[id] = err
			return nil
		}
		return err
	}

	logger.Printf("training %s", alg)
	pipeline, err := model.Train(alg, split.TrainFeatures, split.TrainLabels, model.TrainOptions{
		Seed:        cfg.Seed,
		MaxFeatures: cfg.MaxFeatures,
	})
	if err != nil {
		return err
	}

	evaluation, err := eval.Evaluate(pipeline, split.TestFeatures, split.TestLabels)
	if err != nil {
		return err
	}
	logger.Printf("%s accuracy: %.4f", alg, evaluation.Accuracy)

	registry.Register(artifact.ModelName(alg), pipeline, evaluation.Accuracy)

	modelPath, err := store.SaveModel(pipeline, evaluation.Accuracy, intents)
	if err != nil {
		return err
	}
	result.ModelPaths = append(result.ModelPaths, modelPath)

	plotDir := store.EvaluationDir()
	if err := viz.WriteConfusionSVG(plotDir, string(alg), evaluation.Labels, evaluation.Matrix); err != nil {
		logger.Warnf("confusion matrix plot failed: %v", err)
	}
	return nil
}

// renderReport writes the markdown and HTML renderings. Both are
// best-effort side outputs.
func renderReport(rpt report.Report, store *artifact.Store, logger *log.Logger) {
	markdown := report.Markdown(rpt)
	if _, err := store.WriteRaw("reports/training_report.md", markdown); err != nil {
		logger.Warnf("markdown report failed: %v", err)
		return
	}
	html, err := report.RenderHTML(markdown)
	if err != nil {
		logger.Warnf("html report failed: %v", err)
		return
	}
	if _, err := store.WriteRaw("reports/training_report.html", html); err != nil {
		logger.Warnf("html report failed: %v", err)
	}
}
