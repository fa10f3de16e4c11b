package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/finassist/extrato/internal/api"
	"github.com/finassist/extrato/internal/category"
	"github.com/finassist/extrato/internal/config"
	"github.com/finassist/extrato/internal/extractor"
	"github.com/finassist/extrato/internal/importer"
	"github.com/finassist/extrato/internal/logger"
	"github.com/finassist/extrato/internal/models"
	"github.com/finassist/extrato/internal/parser"
	"github.com/finassist/extrato/internal/store"
	"github.com/finassist/extrato/internal/writer"
)

const version = "1.0.0"

func main() {
	bankFlag := flag.String("bank", "", "Bank format: itau, bradesco, santander, nubank, bb, caixa, inter (auto-detected if omitted)")
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with .csv extension)")
	jsonFlag := flag.Bool("json", false, "Write JSON instead of CSV")
	accountFlag := flag.String("account", "", "Account the transactions belong to (defaults to the conta parsed from the statement)")
	headerFlag := flag.Bool("header", true, "Include statement metadata header rows in CSV")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	portFlag := flag.Int("port", 0, "HTTP listen port for --serve (overrides EXTRATO_PORT)")
	workersFlag := flag.Int("workers", 4, "Concurrent files when converting multiple PDFs")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Extrato — Brazilian bank statement extraction engine

Converts conta-corrente statement PDFs from Itaú, Bradesco, Santander,
Nubank, Banco do Brasil, Caixa and Banco Inter into structured CSV or
JSON, with deduplicated per-account import history.

Usage:
  extrato [flags] <input.pdf> [input2.pdf ...]
  extrato --serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Auto-detect the bank and convert
  extrato extrato_dezembro.pdf

  # Specify the bank explicitly, write JSON
  extrato --bank=nubank --json --output=movimentos.json extrato.pdf

  # Convert a year of statements into one account
  extrato --account=conta-pj jan.pdf fev.pdf mar.pdf

  # Run the HTTP API
  extrato --serve --port=8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("extrato v%s\n", version)
		os.Exit(0)
	}
	if *helpFlag || (!*serveFlag && flag.NArg() == 0) {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("Configuration error: %v\n", err)
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.New(level)

	table := category.Default()
	if cfg.CategoriesFile != "" {
		table, err = category.LoadFile(cfg.CategoriesFile)
		if err != nil {
			fatalf("Category table error: %v\n", err)
		}
	}

	format, err := resolveBank(*bankFlag)
	if err != nil {
		fatalf("%v\n", err)
	}

	s := store.NewMemory()
	im := importer.New(s, log)

	if *serveFlag {
		srv := api.NewServer(im, s, log)
		srv.MaxBytes = cfg.MaxBytes
		srv.MaxLines = cfg.MaxLines
		srv.Categorize = table.Categorize

		port := cfg.Port
		if *portFlag != 0 {
			port = *portFlag
		}
		log.Info().Int("port", port).Msg("listening")
		if err := srv.App().Listen(fmt.Sprintf(":%d", port)); err != nil {
			fatalf("Server error: %v\n", err)
		}
		return
	}

	opts := parser.Options{
		Format:     format,
		MaxBytes:   cfg.MaxBytes,
		MaxLines:   cfg.MaxLines,
		Categorize: table.Categorize,
		Logger:     &log,
	}

	inputFiles := flag.Args()
	workers := *workersFlag
	if workers < 1 {
		workers = 1
	}
	if workers > len(inputFiles) {
		workers = len(inputFiles)
	}

	jobs := make(chan string)
	errs := make(chan error, len(inputFiles))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inputPath := range jobs {
				if err := processFile(inputPath, im, opts, *accountFlag, *outputFlag, *jsonFlag, *headerFlag); err != nil {
					fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
					errs <- err
				}
			}
		}()
	}
	for _, inputPath := range inputFiles {
		jobs <- inputPath
	}
	close(jobs)
	wg.Wait()
	close(errs)
	if len(errs) > 0 {
		os.Exit(1)
	}
}

func resolveBank(name string) (models.BankFormat, error) {
	if name == "" {
		return models.FormatUnknown, nil
	}
	switch strings.ToLower(name) {
	case "itau", "itaú":
		return models.FormatItau, nil
	case "bradesco":
		return models.FormatBradesco, nil
	case "santander":
		return models.FormatSantander, nil
	case "nubank":
		return models.FormatNubank, nil
	case "bb", "banco_do_brasil", "bancodobrasil":
		return models.FormatBancoDoBrasil, nil
	case "caixa", "cef":
		return models.FormatCaixaEconomica, nil
	case "inter", "bancointer":
		return models.FormatBancoInter, nil
	default:
		return models.FormatUnknown, fmt.Errorf("unknown bank %q. Supported: itau, bradesco, santander, nubank, bb, caixa, inter", name)
	}
}

func processFile(inputPath string, im *importer.Importer, opts parser.Options, account, outputPath string, asJSON, includeHeader bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	pages, err := extractor.ExtractText(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}
	fmt.Printf("  Extracted text from %d page(s)\n", len(pages))

	res, err := im.Import(context.Background(), account, filepath.Base(inputPath), pages, opts)
	if err != nil {
		return err
	}
	info := res.Statement

	fmt.Printf("  Bank: %s\n", info.Format)
	fmt.Printf("  Found %d transaction(s), %d new, %d duplicate(s)\n",
		len(info.Transactions), res.Record.Imported, res.Record.Duplicates)
	if info.SkippedLines > 0 {
		fmt.Printf("  Skipped %d unparseable line(s)\n", info.SkippedLines)
	}
	for _, w := range info.Warnings {
		fmt.Printf("  Warning (page %d, line %d): %s\n", w.Page, w.Line, w.Message)
	}

	// Determine output path; per-file naming when converting in bulk
	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		if asJSON {
			outPath = base + ".json"
		} else {
			outPath = base + ".csv"
		}
	}

	if asJSON {
		w := &writer.JSONWriter{}
		if err := w.WriteToFile(outPath, info); err != nil {
			return fmt.Errorf("JSON write failed: %w", err)
		}
	} else {
		w := &writer.CSVWriter{IncludeHeader: includeHeader}
		if err := w.WriteToFile(outPath, info); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	}
	fmt.Printf("  Output: %s\n", outPath)

	if info.HolderName != "" {
		fmt.Printf("  Titular: %s\n", info.HolderName)
	}
	if info.Account != "" {
		fmt.Printf("  Conta: %s\n", info.Account)
	}
	if info.Period != "" {
		fmt.Printf("  Período: %s\n", info.Period)
	}
	fmt.Printf("  Entradas: %s  Saídas: %s\n", res.Summary.SumEntradas, res.Summary.SumSaidas)

	fmt.Println("  Done.")
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
