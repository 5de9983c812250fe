package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/offsetkeyz/dupr-api-client/dupr"
	"github.com/offsetkeyz/dupr-api-client/filter"
)

// summaryKeys are shown first, in this order, when printing list items as a table
var summaryKeys = []string{
	"matchId", "playerId", "clubId", "eventId", "bracketId", "userId",
	"fullName", "name", "format", "status", "role", "rating", "matchDate",
}

// render prints a result in the configured format, filtering list results
// through the active --where/--preset expression
func render(w io.Writer, result dupr.Result) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	return renderResult(w, result, cfg.Output.Format, expression, compiler)
}

func renderResult(w io.Writer, result dupr.Result, format, expression string, c *filter.Compiler) error {
	items := result.Items()

	if expression != "" {
		if items == nil {
			return fmt.Errorf("--where and --preset apply only to list results")
		}
		f, err := c.Compile(expression)
		if err != nil {
			return err
		}
		matched, errs := f.Apply(items)
		for _, evalErr := range errs {
			logger.Debug().Err(evalErr).Msg("Skipping item that failed filter evaluation")
		}
		items = matched
		result = dupr.Result{"result": nonNil(items)}
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if items == nil {
		if _, isList := result["result"].([]any); !isList {
			return printObject(w, result)
		}
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}

	fmt.Fprintf(w, "%d result(s):\n", len(items))
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, item := range items {
		fmt.Fprintf(w, "• %s\n", summarize(item))
	}
	return nil
}

// printObject prints a non-list result as indented JSON, unwrapping the envelope
func printObject(w io.Writer, result dupr.Result) error {
	var value any = result
	if v, ok := result["result"]; ok {
		value = v
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// summarize renders one list item on a single line
func summarize(item any) string {
	obj, ok := item.(map[string]any)
	if !ok {
		data, _ := json.Marshal(item)
		return string(data)
	}

	var parts []string
	for _, key := range summaryKeys {
		if v, ok := obj[key]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", key, formatValue(v)))
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "  ")
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, formatValue(obj[k])))
	}
	return strings.Join(parts, "  ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%.3f", val)
	case map[string]any, []any:
		data, _ := json.Marshal(val)
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}

func nonNil(items []any) []any {
	if items == nil {
		return []any{}
	}
	return items
}
