package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"

	"tidy/internal/classify"
	"tidy/internal/plan"
	"tidy/internal/report"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderPlan(w io.Writer, p *plan.Plan) {
	if !stdoutIsTerminal() {
		for _, entry := range p.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Source.Name, entry.Category.Folder(), entry.Destination)
		}
		return
	}

	rows := make([][]string, 0, len(p.Entries))
	for _, entry := range p.Entries {
		note := ""
		if entry.CollisionResolved {
			note = "renamed"
		}
		rows = append(rows, []string{
			entry.Source.Name,
			entry.Category.Folder(),
			entry.Destination,
			note,
		})
	}
	fmt.Fprintln(w, renderTable([]string{"File", "Category", "Destination", "Note"}, rows))
	fmt.Fprintf(w, "%d files planned in %s\n", len(p.Entries), p.TargetDir)
}

func renderReport(w io.Writer, rep *report.Report) {
	verb := "Moved"
	if rep.DryRun {
		verb = "Would move"
	}
	fmt.Fprintf(w, "%s %d of %d files in %s (%s, %s)\n",
		verb, movedOrPlanned(rep), rep.ScannedFiles, rep.TargetDir,
		formatBytes(rep.TotalBytesMoved), rep.Duration.Round(time.Millisecond))

	if len(rep.CategoryCounts) > 0 {
		renderCategoryCounts(w, rep)
	}

	failures := rep.Failures()
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%d files were not moved:\n", len(failures))
	for _, failure := range failures {
		fmt.Fprintf(w, "  %s: %s (%s)\n", failure.Entry.Source.Name, failure.Status, failure.ErrorDetail)
	}
}

func movedOrPlanned(rep *report.Report) int {
	if rep.DryRun {
		return rep.ScannedFiles
	}
	return rep.Moved
}

func renderCategoryCounts(w io.Writer, rep *report.Report) {
	categories := make([]string, 0, len(rep.CategoryCounts))
	for category := range rep.CategoryCounts {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	if !stdoutIsTerminal() {
		for _, category := range categories {
			fmt.Fprintf(w, "%s\t%d\n", category, rep.CategoryCounts[classify.Category(category)])
		}
		return
	}

	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, []string{category, strconv.Itoa(rep.CategoryCounts[classify.Category(category)])})
	}
	fmt.Fprintln(w, renderTable([]string{"Category", "Files"}, rows, 1))
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
