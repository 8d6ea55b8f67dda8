// Package report renders ranked results into the human-readable text
// report and writes the per-city output files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/tripdesk/getaway-cli/internal/ranker"
)

const bannerWidth = 70

// Render formats a ranked result set as a text report.
func Render(sourceCity, sourceState string, results []ranker.Scored) string {
	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(&b, "%s\n", banner)
	fmt.Fprintf(&b, "TOP %d WEEKEND GETAWAYS FROM %s\n", len(results), strings.ToUpper(sourceCity))
	fmt.Fprintf(&b, "%s\n\n", banner)
	fmt.Fprintf(&b, "Source: %s, %s\n", sourceCity, sourceState)
	fmt.Fprintf(&b, "Ranking based on: Rating (50%%), Proximity (30%%), Category (20%%)\n\n")

	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Name)
		fmt.Fprintf(&b, "   Location: %s, %s\n", r.City, r.State)
		if r.Type != "" {
			fmt.Fprintf(&b, "   Category: %s\n", r.Type)
		}
		if r.Rating != nil {
			fmt.Fprintf(&b, "   Rating: %g\n", *r.Rating)
		}
		fmt.Fprintf(&b, "   Weekend Score: %.3f\n", r.WeekendScore)
		fmt.Fprintf(&b, "   (Proximity: %.1f, Rating: %.2f, Category: %.2f)\n\n",
			r.ProximityScore, r.RatingScore, r.CategoryScore)
	}

	return b.String()
}

// Filename returns the output file name for a source city. Path
// separators in the city value are replaced so a hostile dataset
// cannot place a report outside the output directory.
func Filename(city string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(strings.ToLower(city))
	return name + ".txt"
}

// Write saves a rendered report under dir, creating the directory if
// needed, and returns the written path.
func Write(dir, city, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "report: create output dir %s", dir)
	}
	path := filepath.Join(dir, Filename(city))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", eris.Wrapf(err, "report: write %s", path)
	}
	return path, nil
}
