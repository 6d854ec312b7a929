// Strawberry Fields — greenhouse covering optimizer.
//
// Reads a puzzle file describing strawberry fields, covers every strawberry
// with at most K axis-aligned greenhouses at minimum total cost, and appends
// the labeled coverings to the output file.
//
// Build:
//   go build -o strawberryfields ./cmd/strawberryfields

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldrow/strawberryfields/internal/config"
	"github.com/fieldrow/strawberryfields/internal/engine"
	"github.com/fieldrow/strawberryfields/internal/export"
	"github.com/fieldrow/strawberryfields/internal/logging"
	"github.com/fieldrow/strawberryfields/internal/model"
	"github.com/fieldrow/strawberryfields/internal/puzzle"
)

var (
	configPath string
	inputPath  string
	outputPath string
	pdfPath    string
	labelsPath string
	xlsxPath   string
	dxfPath    string
	logLevel   string
	logFile    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "strawberryfields [puzzle-file]",
	Short: "Cover strawberry fields with greenhouses at minimum cost",
	Long: `strawberryfields reads puzzle descriptions (a maximum greenhouse count
followed by a grid of '.' and '@' cells) and computes a covering of every
strawberry with at most that many axis-aligned greenhouses, minimizing the
total cost of 10 + area per greenhouse. Coverings are appended to the output
file; optional flags export PDF, QR-label, Excel and DXF reports.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "", "puzzle file to solve")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "covering text file to append to")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&pdfPath, "pdf", "", "write a PDF report of the coverings")
	rootCmd.Flags().StringVar(&labelsPath, "labels", "", "write a PDF sheet of QR greenhouse labels")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an Excel workbook report")
	rootCmd.Flags().StringVar(&dxfPath, "dxf", "", "write a DXF drawing of the coverings")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file path; default logs to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("opening puzzle file: %w", err)
	}
	defer in.Close()

	puzzles, err := puzzle.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", cfg.Input, err)
	}

	solver := engine.NewSolver()
	var solutions []*model.Solution
	for i, p := range puzzles {
		sol, err := solver.Solve(p.Field, p.MaxGreenhouses)
		if err != nil {
			return fmt.Errorf("solving puzzle %d: %w", i+1, err)
		}
		solutions = append(solutions, sol)
	}

	if err := writeCoverings(cfg.Output, solutions); err != nil {
		return err
	}

	slog.Info("run complete",
		"puzzles", len(puzzles),
		"output", cfg.Output,
	)

	return runExports(cfg.Export, solutions)
}

// resolveConfig layers explicitly-set flags and the positional argument over
// the configuration file (or the defaults when no file is given).
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("file") {
		cfg.Input = inputPath
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputPath
	}
	if cmd.Flags().Changed("pdf") {
		cfg.Export.PDF = pdfPath
	}
	if cmd.Flags().Changed("labels") {
		cfg.Export.Labels = labelsPath
	}
	if cmd.Flags().Changed("xlsx") {
		cfg.Export.Xlsx = xlsxPath
	}
	if cmd.Flags().Changed("dxf") {
		cfg.Export.DXF = dxfPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.Path = logFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// writeCoverings appends each labeled covering and the run total to the
// output file, creating it when needed.
func writeCoverings(path string, solutions []*model.Solution) error {
	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer out.Close()

	total := 0
	for i, sol := range solutions {
		total += sol.TotalCost()
		if err := puzzle.WriteSolution(out, sol); err != nil {
			return fmt.Errorf("writing covering %d: %w", i+1, err)
		}
	}
	if err := puzzle.WriteTotal(out, total); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	return nil
}

// runExports writes every export artifact whose path is configured.
func runExports(exp config.ExportConfig, solutions []*model.Solution) error {
	exports := []struct {
		path  string
		kind  string
		write func(string, []*model.Solution) error
	}{
		{exp.PDF, "pdf", export.ExportPDF},
		{exp.Labels, "labels", export.ExportLabels},
		{exp.Xlsx, "xlsx", export.ExportXlsx},
		{exp.DXF, "dxf", export.ExportDXF},
	}

	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(e.path, solutions); err != nil {
			return fmt.Errorf("exporting %s: %w", e.kind, err)
		}
		slog.Info("export written", "kind", e.kind, "path", e.path)
	}
	return nil
}
