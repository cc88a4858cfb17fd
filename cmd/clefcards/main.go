package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/museworks/clefcards/internal/config"
	"github.com/museworks/clefcards/internal/pipeline"
	"github.com/museworks/clefcards/pkg/logger"
	"github.com/museworks/clefcards/pkg/version"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	output := flag.String("output", "", "output PNG path (overrides config)")
	pdfOutput := flag.String("pdf", "", "also write a single-page PDF to this path")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetDetailedVersionInfo())
		os.Exit(0)
	}

	log := logger.New(
		logger.WithPrefix("[clefcards] "),
	)
	log.SetVerbose(*verbose)

	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	if *verbose {
		log.Debug("Verbose logging enabled")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config: %v", err)
	}

	if *output != "" {
		cfg.Output.PNG = *output
	}
	if *pdfOutput != "" {
		cfg.Output.PDF = *pdfOutput
	}

	log.Info("Generating note flashcards...")

	report, err := pipeline.New(cfg, log).Run()
	if err != nil {
		log.Fatal("Error generating sheet: %v", err)
	}

	report.Print(log)
	log.Info("Print the sheet in landscape orientation and cut/fold each card along the guide lines.")
	log.Info("Each card is %.0fmm x %.0fmm (folds to %.1fmm x %.0fmm).",
		cfg.Card.WidthMM, cfg.Card.HeightMM, cfg.Card.WidthMM/2, cfg.Card.HeightMM)
}
