package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripdesk/getaway-cli/internal/dataset"
)

var inspectDataset string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print an overview of the destination dataset",
	Long: `Loads the dataset and prints its shape, per-column fill rates, and the
most common values of the key columns. Useful for verifying a dataset
before ranking against it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tbl, err := loadTable(inspectDataset)
		if err != nil {
			return err
		}
		printOverview(tbl)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectDataset, "dataset", "", "dataset path (overrides config)")
	rootCmd.AddCommand(inspectCmd)
}

func printOverview(tbl *dataset.Table) {
	banner := strings.Repeat("=", 70)

	fmt.Println(banner)
	fmt.Println("DATASET OVERVIEW")
	fmt.Println(banner)
	fmt.Printf("Total rows:         %d\n", len(tbl.Rows))
	fmt.Printf("Usable destinations: %d\n", len(tbl.Destinations))
	fmt.Printf("Total columns:      %d\n\n", len(tbl.Columns))

	fmt.Println(banner)
	fmt.Println("COLUMNS")
	fmt.Println(banner)
	for _, col := range tbl.Columns {
		col = strings.TrimSpace(col)
		var nonNull, numeric int
		for _, row := range tbl.Rows {
			v := tbl.Col(row, col)
			if v == "" {
				continue
			}
			nonNull++
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				numeric++
			}
		}
		kind := "text"
		if nonNull > 0 && numeric == nonNull {
			kind = "numeric"
		}
		fmt.Printf("  %-30s | Type: %-7s | Non-null: %4d | Null: %4d\n",
			col, kind, nonNull, len(tbl.Rows)-nonNull)
	}

	for _, col := range []string{dataset.ColState, dataset.ColCity, dataset.ColType} {
		if !tbl.HasColumn(col) {
			continue
		}
		fmt.Printf("\n%s\n", banner)
		fmt.Printf("TOP %s VALUES\n", strings.ToUpper(col))
		fmt.Println(banner)
		for _, vc := range topValues(tbl, col, 10) {
			fmt.Printf("  %-30s %d\n", vc.value, vc.count)
		}
	}
}

type valueCount struct {
	value string
	count int
}

// topValues tallies a column's values and returns the n most frequent,
// most common first, ties alphabetical.
func topValues(tbl *dataset.Table, col string, n int) []valueCount {
	counts := make(map[string]int)
	for _, row := range tbl.Rows {
		if v := tbl.Col(row, col); v != "" {
			counts[v]++
		}
	}

	out := make([]valueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, valueCount{value: v, count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].value < out[j].value
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}
