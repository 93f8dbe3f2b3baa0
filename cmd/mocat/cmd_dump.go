package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cassite-go/mocat/pkg/mocat"
)

// dumpEntry is one exported original/translation record.
type dumpEntry struct {
	Original    string `json:"original" yaml:"original"`
	Translation string `json:"translation" yaml:"translation"`
}

// cmdDump exports every pair of a loaded catalog to a JSON or YAML file via
// an atomic rename (github.com/natefinch/atomic), the same durability
// pattern the teacher's writeBinaryCache uses for its own binary format.
//
// This is a one-directional catalog -> document export; it never produces
// a .mo file and gives pkg/mocat no write path, preserving spec.md §1's
// "writing .mo files" non-goal at the library level (see SPEC_FULL.md).
func cmdDump(args []string, cfg config, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(errOut)

	path := fs.StringP("file", "f", cfg.CatalogPath, "path to .mo catalog")
	dest := fs.StringP("output", "o", "", "output file path")
	format := fs.String("format", cfg.Format, "output format: json|yaml")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *path == "" || *dest == "" {
		fmt.Fprintln(errOut, "usage: mocat dump -f <catalog.mo> -o <file> [--format json|yaml]")

		return 1
	}

	cat, err := mocat.Open(*path)
	if err != nil {
		fmt.Fprintln(errOut, "error:", mocat.ErrorString(err))

		return 1
	}
	defer cat.Close()

	pairs := cat.Pairs()
	entries := make([]dumpEntry, len(pairs))

	for i, p := range pairs {
		entries[i] = dumpEntry{Original: renderText(p.Original), Translation: renderText(p.Translation)}
	}

	data, err := encodeDump(entries, *format)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	if err := atomic.WriteFile(*dest, bytes.NewReader(data)); err != nil {
		fmt.Fprintln(errOut, "error writing", *dest, ":", err)

		return 1
	}

	fmt.Fprintf(out, "wrote %d entries to %s\n", len(entries), *dest)

	return 0
}

func encodeDump(entries []dumpEntry, format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(entries)
	}

	return json.MarshalIndent(entries, "", "  ")
}
