package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tripdesk/getaway-cli/internal/ranker"
	"github.com/tripdesk/getaway-cli/internal/report"
)

var (
	rankCity    string
	rankTopN    int
	rankDataset string
	rankSave    bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank weekend getaways from a source city",
	Long: `Scores every destination outside the source city and prints the top
candidates by weekend suitability.

The composite score weighs normalized rating (50%), state-level
proximity (30%), and category fit (20%).

Examples:
  # Top 5 getaways from Delhi
  getaway-cli rank --city Delhi

  # Top 10, custom dataset, save the report file
  getaway-cli rank --city Mumbai --top 10 --dataset places.csv --save`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tbl, err := loadTable(rankDataset)
		if err != nil {
			return err
		}
		tables, err := loadTables()
		if err != nil {
			return err
		}

		topN := rankTopN
		if topN <= 0 {
			topN = cfg.Rank.TopN
		}

		engine := ranker.New(tables)
		results, err := engine.ScoreAndRank(tbl, rankCity, topN)
		if err != nil {
			if eris.Is(err, ranker.ErrCityNotFound) {
				return eris.Wrapf(err, "rank: no destination records match city %q", rankCity)
			}
			return eris.Wrap(err, "rank: score")
		}

		sourceState, _ := tbl.StateOf(rankCity)
		out := report.Render(rankCity, sourceState, results)
		fmt.Print(out)

		if rankSave {
			path, err := report.Write(cfg.Report.OutputDir, rankCity, out)
			if err != nil {
				return err
			}
			zap.L().Info("report saved", zap.String("path", path))
		}

		return nil
	},
}

func init() {
	rankCmd.Flags().StringVar(&rankCity, "city", "", "source city (required)")
	rankCmd.Flags().IntVar(&rankTopN, "top", 0, "number of destinations to rank (0 = config default)")
	rankCmd.Flags().StringVar(&rankDataset, "dataset", "", "dataset path (overrides config)")
	rankCmd.Flags().BoolVar(&rankSave, "save", false, "also write the report to the output directory")
	_ = rankCmd.MarkFlagRequired("city")
	rootCmd.AddCommand(rankCmd)
}
