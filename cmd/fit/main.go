// Command fit runs the genetic-algorithm parameter fitter from the command
// line against a set of clinical target metrics and writes its progress and
// result to an output directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/g960059/circleheart/config"
	"github.com/g960059/circleheart/internal/metrics"
	"github.com/g960059/circleheart/internal/optimize"
	"github.com/g960059/circleheart/internal/telemetry"
)

// newLogger builds a slog.Logger from the loaded log configuration.
func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// formatDuration formats a duration as 1h02m03s, or 2m03s when under an hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

// parseTargets parses "metric=value" or "metric=value:weight" CLI targets.
func parseTargets(raw []string) ([]optimize.Target, error) {
	targets := make([]optimize.Target, 0, len(raw))
	for _, spec := range raw {
		key, rest, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid target %q, want metric=value or metric=value:weight", spec)
		}

		valueStr, weightStr, hasWeight := strings.Cut(rest, ":")
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", spec, err)
		}

		weight := 1.0
		if hasWeight {
			weight, err = strconv.ParseFloat(weightStr, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid target %q: %w", spec, err)
			}
		}

		targets = append(targets, optimize.Target{Key: key, Value: value, Weight: weight})
	}
	return targets, nil
}

type targetFlags []string

func (t *targetFlags) String() string { return fmt.Sprint([]string(*t)) }
func (t *targetFlags) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	outputDir := flag.String("output", "", "Output directory for generations.csv and summary.json")
	restarts := flag.Int("restarts", 0, "Number of independent GA restarts (0 = config default)")
	var targetFlagsList targetFlags
	flag.Var(&targetFlagsList, "target", fmt.Sprintf(
		"Target metric as metric=value or metric=value:weight (repeatable). Known metrics: %s, %s, %s, %s, %s, %s, %s, %s",
		metrics.StrokeVolume, metrics.CentralVenousPressure, metrics.PulmonaryCapillaryWedgePressure,
		metrics.SystolicArterialPressure, metrics.DiastolicArterialPressure,
		metrics.SystolicPulmonaryArterialPressure, metrics.DiastolicPulmonaryArterialPressure,
		metrics.LeftVentricularEjectionFraction))
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()
	logger := newLogger(cfg.Log)

	numRepeats := *restarts
	if numRepeats <= 0 {
		numRepeats = cfg.Optimizer.DefaultRestarts
	}

	targets, err := parseTargets(targetFlagsList)
	if err != nil {
		log.Fatal(err)
	}

	dir := *outputDir
	if dir == "" {
		dir = cfg.Optimizer.OutputDir
	}
	writer, err := telemetry.NewRunWriter(dir)
	if err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}
	defer writer.Close()

	startTime := time.Now()
	onProgress := func(rec optimize.GenerationRecord) {
		if err := writer.WriteGeneration(rec); err != nil {
			log.Printf("failed to write generation record: %v", err)
		}
		if rec.Generation%10 == 0 {
			logger.Info("generation", "record", rec, "elapsed", formatDuration(time.Since(startTime)))
		}
	}

	fmt.Printf("Starting genetic-algorithm fit with %d restart(s), %d target(s)\n", numRepeats, len(targets))

	best, fitness, err := optimize.RunOptimization(targets, nil, numRepeats, optimize.WithProgress(onProgress))
	if err != nil {
		log.Fatalf("optimization failed: %v", err)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\nOptimization complete in %s\n", formatDuration(elapsed))
	fmt.Printf("Best fitness: %.6f\n", fitness)

	summary := telemetry.RunSummary{
		BestFitness: fitness,
		BestParams:  best.Values(),
		Restarts:    numRepeats,
		Elapsed:     elapsed,
	}
	if err := writer.WriteSummary(summary); err != nil {
		log.Printf("failed to write summary: %v", err)
	} else if dir := writer.Dir(); dir != "" {
		fmt.Printf("Summary saved to: %s/summary.json\n", dir)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(summary)
}
