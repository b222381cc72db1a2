package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"intentrain/internal/artifact"
	"intentrain/internal/augment"
	"intentrain/internal/config"
	"intentrain/internal/log"
	"intentrain/internal/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "intentrain: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "train":
		return runTrain(args[1:])
	case "augment":
		return runAugment(args[1:])
	case "export":
		return runExport(args[1:])
	default:
		return usageError()
	}
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to training config yaml")
	dataPath := fs.String("data", "", "path to training dataset json")
	outDir := fs.String("out", "", "output directory")
	verbose := fs.BoolP("verbose", "v", false, "verbose progress output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		if *dataPath == "" {
			return errors.New("train requires --config or --data")
		}
		cfg = config.Config{DatasetPath: *dataPath}
		cfg.ApplyDefaults()
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := &log.Logger{Verbose: cfg.Verbose, W: os.Stderr}
	result, err := session.Run(cfg, logger)
	if err != nil {
		return err
	}

	for _, path := range result.ModelPaths {
		fmt.Printf("model:      %s\n", path)
	}
	fmt.Printf("report:     %s\n", result.ReportPath)
	if result.ProductionPath != "" {
		fmt.Printf("production: %s\n", result.ProductionPath)
	}
	for id, algErr := range result.AlgorithmErrors {
		fmt.Fprintf(os.Stderr, "skipped %s: %v\n", id, algErr)
	}
	return nil
}

func runAugment(args []string) error {
	fs := flag.NewFlagSet("augment", flag.ContinueOnError)
	intent := fs.String("intent", "", "intent label the variants belong to")
	count := fs.Int("count", 0, "cap on generated variants (0 = no cap)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *intent == "" {
		return errors.New("augment requires --intent")
	}
	baseQueries := fs.Args()
	if len(baseQueries) == 0 {
		return errors.New("augment requires at least one base query argument")
	}

	for _, variant := range augment.Generate(*intent, baseQueries, *count) {
		fmt.Println(variant)
	}
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	outDir := fs.String("out", "", "output directory holding the model artifacts")
	name := fs.String("name", "", "saved model name to export, e.g. intent_classifier_logistic_regression")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outDir == "" {
		return errors.New("export requires --out")
	}
	if *name == "" {
		return errors.New("export requires --name")
	}

	path, err := artifact.NewStore(*outDir).ExportSaved(*name)
	if err != nil {
		return err
	}
	fmt.Printf("production: %s\n", path)
	return nil
}

func usageError() error {
	return errors.New("usage: intentrain <train|augment|export> [flags]")
}
