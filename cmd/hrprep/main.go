// cmd/hrprep/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hrprep/pkg/cleaner"
	"hrprep/pkg/config"
	"hrprep/pkg/diag"
	"hrprep/pkg/model"
)

func main() {
	inputFlag := flag.String("input", "", "path to the HR dataset CSV (overrides INPUT_PATH)")
	demo := flag.Bool("demo", false, "manufacture a sample dataset, clean it, and print the result")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	path := cfg.InputPath
	if *inputFlag != "" {
		path = *inputFlag
	}

	if *demo {
		demoPath, cleanup, err := writeSampleDataset()
		if err != nil {
			logger.Fatal("Failed to write sample dataset", zap.Error(err))
		}
		defer cleanup()
		path = demoPath
		logger.Info("Created sample dataset", zap.String("path", path))
	}

	if path == "" {
		fmt.Fprintln(os.Stderr, "no input file; use -input <path> or -demo")
		os.Exit(2)
	}

	tc, err := cleaner.New(model.DefaultSchema(), logger, diag.NewZapSink(logger),
		cleaner.Options{NullMarkers: cfg.NullMarkers})
	if err != nil {
		logger.Fatal("Failed to create table cleaner", zap.Error(err))
	}

	result, err := tc.Clean(path)
	if err != nil {
		logger.Error("Cleaning failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Cleaning complete",
		zap.String("runID", result.Report.RunID),
		zap.Int("rows", result.Report.Rows),
		zap.Int("operations", len(result.Report.Operations)),
		zap.Int("cellsChanged", result.Report.CellsChanged()),
		zap.Duration("duration", result.Report.Duration()))

	if *demo {
		fmt.Println(result.Table)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// writeSampleDataset manufactures the six-row demonstration dataset in
// a temporary directory and returns its path with a cleanup function
func writeSampleDataset() (string, func(), error) {
	dir, err := os.MkdirTemp("", "hrprep-demo-")
	if err != nil {
		return "", nil, err
	}

	sample := `EmployeeID,Age,Department,Attrition,Salary,Experience,Education,Gender
1,30,HR,No,50000,5,Bachelors,Male
2,25,Sales,Yes,60000,2,Masters,Female
3,,IT,No,75000,10,PhD,Male
4,40,HR,No,,15,Bachelors,Female
5,35,,Yes,55000,,Masters,Male
6,28,IT,,70000,3,High School,
`

	path := filepath.Join(dir, "hr_data.csv")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		os.RemoveAll(dir)
		return "", nil, err
	}
	return path, func() { os.RemoveAll(dir) }, nil
}
