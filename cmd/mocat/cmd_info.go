package main

import (
	"encoding/json"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cassite-go/mocat/internal/transcode"
	"github.com/cassite-go/mocat/pkg/mocat"
)

// infoReport is the structured view cmdInfo renders as JSON or YAML.
type infoReport struct {
	Path         string      `json:"path" yaml:"path"`
	StringCount  uint32      `json:"string_count" yaml:"string_count"`
	SearchMethod string      `json:"search_method" yaml:"search_method"`
	StatsEnabled bool        `json:"stats_enabled" yaml:"stats_enabled"`
	Stats        mocat.Stats `json:"stats" yaml:"stats"`
	NonUTF8Pairs int         `json:"non_utf8_pairs" yaml:"non_utf8_pairs"`
}

// countNonUTF8 reports how many pairs have an original or translation that
// isn't valid UTF-8, so a caller knows renderText (used by dump) will have
// to fall back to lossy codepoint rendering for them.
func countNonUTF8(pairs []mocat.StringPair) int {
	n := 0

	for _, p := range pairs {
		if !transcode.Valid(p.Original) || !transcode.Valid(p.Translation) {
			n++
		}
	}

	return n
}

func cmdInfo(args []string, cfg config, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(errOut)

	path := fs.StringP("file", "f", cfg.CatalogPath, "path to .mo catalog")
	format := fs.String("format", cfg.Format, "output format: json|yaml")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *path == "" {
		fmt.Fprintln(errOut, "usage: mocat info -f <catalog.mo> [--format json|yaml]")

		return 1
	}

	cat, err := mocat.Open(*path)
	if err != nil {
		fmt.Fprintln(errOut, "error:", mocat.ErrorString(err))

		return 1
	}
	defer cat.Close()

	report := infoReport{
		Path:         *path,
		StringCount:  cat.StringCount(),
		SearchMethod: cat.SearchMethod(),
		StatsEnabled: mocat.StatsEnabled(),
		Stats:        cat.GetStats(),
		NonUTF8Pairs: countNonUTF8(cat.Pairs()),
	}

	return renderReport(report, *format, out, errOut)
}

func renderReport(report infoReport, format string, out, errOut io.Writer) int {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)

			return 1
		}

		_, _ = out.Write(data)
	default:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)

			return 1
		}

		fmt.Fprintln(out, string(data))
	}

	return 0
}
