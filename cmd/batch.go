package main

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tripdesk/getaway-cli/internal/dataset"
	"github.com/tripdesk/getaway-cli/internal/ranker"
	"github.com/tripdesk/getaway-cli/internal/report"
)

var (
	batchCities      string
	batchSample      int
	batchTopN        int
	batchDataset     string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank getaways for several source cities in one run",
	Long: `Runs the ranking pipeline for a list of source cities and writes one
report file per city to the output directory.

A failure for one city (for example a city with no dataset record) is
logged and the remaining cities are still processed.

Examples:
  # Explicit city list
  getaway-cli batch --cities Delhi,Mumbai,Jaipur

  # Three random cities from the dataset
  getaway-cli batch --sample 3`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		runID := uuid.NewString()
		log := zap.L().With(zap.String("run_id", runID))

		tbl, err := loadTable(batchDataset)
		if err != nil {
			return err
		}
		tables, err := loadTables()
		if err != nil {
			return err
		}

		cities := splitAndTrim(batchCities)
		if len(cities) == 0 {
			cities = sampleCities(tbl.Cities(), batchSample)
		}
		if len(cities) == 0 {
			return eris.New("batch: no source cities selected")
		}

		topN := batchTopN
		if topN <= 0 {
			topN = cfg.Rank.TopN
		}
		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.Concurrency
		}

		log.Info("starting batch ranking",
			zap.Strings("cities", cities),
			zap.Int("top_n", topN),
			zap.Int("concurrency", concurrency),
		)

		engine := ranker.New(tables)
		succeeded, failed := runBatch(engine, tbl, cities, topN, concurrency, cfg.Report.OutputDir, log)

		log.Info("batch complete",
			zap.Int("cities", len(cities)),
			zap.Int64("succeeded", succeeded),
			zap.Int64("failed", failed),
		)
		return nil
	},
}

// runBatch ranks each source city and writes one report file per city.
// The engine and dataset are read-only during scoring, so per-city
// rankings run concurrently. A failure for one city is logged and never
// aborts the rest of the batch.
func runBatch(engine *ranker.Engine, tbl *dataset.Table, cities []string, topN, concurrency int, outputDir string, log *zap.Logger) (succeeded, failed int64) {
	var g errgroup.Group
	g.SetLimit(concurrency)
	var ok, bad atomic.Int64

	for _, city := range cities {
		city := city
		g.Go(func() error {
			results, rankErr := engine.ScoreAndRank(tbl, city, topN)
			if rankErr != nil {
				bad.Add(1)
				if eris.Is(rankErr, ranker.ErrCityNotFound) {
					log.Warn("batch: city not in dataset, skipping", zap.String("city", city))
				} else {
					log.Error("batch: ranking failed", zap.String("city", city), zap.Error(rankErr))
				}
				return nil // don't abort batch on individual failure
			}

			sourceState, _ := tbl.StateOf(city)
			out := report.Render(city, sourceState, results)
			fmt.Print(out)

			path, writeErr := report.Write(outputDir, city, out)
			if writeErr != nil {
				bad.Add(1)
				log.Error("batch: write report", zap.String("city", city), zap.Error(writeErr))
				return nil
			}

			ok.Add(1)
			log.Info("batch: report written", zap.String("city", city), zap.String("path", path))
			return nil
		})
	}

	_ = g.Wait()
	return ok.Load(), bad.Load()
}

func init() {
	batchCmd.Flags().StringVar(&batchCities, "cities", "", "comma-separated source cities")
	batchCmd.Flags().IntVar(&batchSample, "sample", 3, "number of random source cities when --cities is empty")
	batchCmd.Flags().IntVar(&batchTopN, "top", 0, "number of destinations per city (0 = config default)")
	batchCmd.Flags().StringVar(&batchDataset, "dataset", "", "dataset path (overrides config)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max cities ranked concurrently (0 = config default)")
	rootCmd.AddCommand(batchCmd)
}

// sampleCities picks up to n distinct cities at random.
func sampleCities(cities []string, n int) []string {
	if n <= 0 {
		return nil
	}
	shuffled := make([]string, len(cities))
	copy(shuffled, cities)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled
}
