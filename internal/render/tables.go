// Package render turns validated rule records into markdown tables.
//
// Both renderers are pure and deterministic: the same record set always
// produces the same text regardless of the order records were collected in.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vvka-141/rulesync/pkg/rulesync"
)

// CategoryGroup is the records sharing one category value.
type CategoryGroup struct {
	Name    string
	Records []rulesync.Record
}

// GroupByCategory groups records by their category field. Groups are
// ordered by name and records within a group by filename.
func GroupByCategory(records []rulesync.Record) []CategoryGroup {
	byName := make(map[string][]rulesync.Record)
	for _, rec := range records {
		byName[rec.Category()] = append(byName[rec.Category()], rec)
	}

	groups := make([]CategoryGroup, 0, len(byName))
	for name, recs := range byName {
		sorted := slices.Clone(recs)
		slices.SortStableFunc(sorted, func(a, b rulesync.Record) int {
			return strings.Compare(a.Filename(), b.Filename())
		})
		groups = append(groups, CategoryGroup{Name: name, Records: sorted})
	}
	slices.SortFunc(groups, func(a, b CategoryGroup) int {
		return strings.Compare(a.Name, b.Name)
	})

	return groups
}

// Categorized renders one table per category, each under a level-3 heading.
//
//	### Style
//
//	| Rule File | Purpose |
//	| :--- | :--- |
//	| [`alpha-rules.md`](./alpha-rules.md) | Does a thing |
func Categorized(records []rulesync.Record) string {
	var lines []string

	for _, group := range GroupByCategory(records) {
		if len(group.Records) == 0 {
			continue
		}

		lines = append(lines,
			"### "+group.Name,
			"",
			"| Rule File | Purpose |",
			"| :--- | :--- |",
		)
		for _, rec := range group.Records {
			link := fmt.Sprintf("[`%s`](./%s)", rec.Filename(), rec.Filename())
			lines = append(lines, fmt.Sprintf("| %s | %s |", link, EscapeCell(rec.Description())))
		}
		lines = append(lines, "")
	}

	return trimTrailingBlankLines(strings.Join(lines, "\n"))
}

// Index renders a single table of every record ordered by title, preceded
// by one blank line. Records with equal titles are ordered by filename.
func Index(records []rulesync.Record) string {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b rulesync.Record) int {
		if c := strings.Compare(a.Title(), b.Title()); c != 0 {
			return c
		}
		return strings.Compare(a.Filename(), b.Filename())
	})

	lines := []string{
		"",
		"| Rule Domain | File Name | Description |",
		"| :--- | :--- | :--- |",
	}
	for _, rec := range sorted {
		link := fmt.Sprintf("[%s](./%s)", rec.Filename(), rec.Filename())
		lines = append(lines, fmt.Sprintf("| %s | %s | %s |",
			EscapeCell(rec.Title()), link, EscapeCell(rec.Description())))
	}

	return trimTrailingBlankLines(strings.Join(lines, "\n"))
}

// EscapeCell escapes pipe characters so a value cannot split a table cell.
func EscapeCell(text string) string {
	if text == "" {
		return ""
	}
	return strings.ReplaceAll(text, "|", `\|`)
}

func trimTrailingBlankLines(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}
