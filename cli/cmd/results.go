// Copyright 2026 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/netapp/converge/reconcile"
	"github.com/netapp/converge/resource"
)

func writeResults(results []*resource.Result) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(results)
	case FormatYAML:
		WriteYAML(results)
	case FormatWide:
		writeWideResultsTable(results)
	default:
		writeResultsTable(results)
	}
}

func writeResultsTable(results []*resource.Result) {

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Task", "Kind", "Name", "Action", "Changed"})

	for _, result := range results {
		table.Append([]string{
			result.Task,
			result.Kind,
			result.Name,
			string(result.Action),
			strconv.FormatBool(result.Changed),
		})
	}

	table.Render()
}

func writeWideResultsTable(results []*resource.Result) {

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Task", "Kind", "Name", "Action", "Changed", "Details"})

	for _, result := range results {
		table.Append([]string{
			result.Task,
			result.Kind,
			result.Name,
			string(result.Action),
			strconv.FormatBool(result.Changed),
			formatDetails(result),
		})
	}

	table.Render()
}

// formatDetails renders a result's field diffs and outputs as one line,
// field by field in sorted order.
func formatDetails(result *resource.Result) string {

	details := make([]string, 0, len(result.Modified)+len(result.Output))

	fields := make([]string, 0, len(result.Modified))
	for field := range result.Modified {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		details = append(details, formatDiff(field, result.Modified[field]))
	}

	outputs := make([]string, 0, len(result.Output))
	for output := range result.Output {
		outputs = append(outputs, output)
	}
	sort.Strings(outputs)
	for _, output := range outputs {
		details = append(details, fmt.Sprintf("%s=%v", output, result.Output[output]))
	}

	return strings.Join(details, ", ")
}

// formatDiff renders one field diff, humanizing byte quantities.
func formatDiff(field string, diff reconcile.FieldDiff) string {
	if field == "size" {
		if oldBytes, newBytes, ok := diffBytes(diff); ok {
			return fmt.Sprintf("%s: %s -> %s", field, humanize.IBytes(oldBytes), humanize.IBytes(newBytes))
		}
	}
	return fmt.Sprintf("%s: %v -> %v", field, diff.Old, diff.New)
}

func diffBytes(diff reconcile.FieldDiff) (oldBytes, newBytes uint64, ok bool) {
	oldBytes, okOld := toUint64(diff.Old)
	newBytes, okNew := toUint64(diff.New)
	return oldBytes, newBytes, okOld && okNew
}

func toUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case int:
		return uint64(v), v >= 0
	case int32:
		return uint64(v), v >= 0
	case int64:
		return uint64(v), v >= 0
	case uint64:
		return v, true
	case float64:
		return uint64(v), v >= 0
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
