package main

import (
	"fmt"
	"io"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/cassite-go/mocat/pkg/mocat"
)

func cmdTranslate(args []string, cfg config, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(errOut)

	path := fs.StringP("file", "f", cfg.CatalogPath, "path to .mo catalog")
	ctx := fs.StringP("context", "c", "", "disambiguating context")
	plural := fs.StringP("plural", "p", "", "plural form of the singular")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 1 || *path == "" {
		fmt.Fprintln(errOut, "usage: mocat translate -f <catalog.mo> [-c context] [-p plural] <singular> [n]")

		return 1
	}

	singular := rest[0]

	n := 1
	if len(rest) > 1 {
		parsed, err := strconv.Atoi(rest[1])
		if err != nil {
			fmt.Fprintln(errOut, "error: n must be an integer:", err)

			return 1
		}

		n = parsed
	}

	if cfg.Logging {
		defaultLoggingOn()
	}

	cat, err := mocat.Open(*path)
	if err != nil {
		fmt.Fprintln(errOut, "error:", mocat.ErrorString(err))

		return 1
	}
	defer cat.Close()

	var result []byte
	if *ctx != "" || *plural != "" {
		var ctxBytes []byte
		if *ctx != "" {
			ctxBytes = []byte(*ctx)
		}

		var pluralBytes []byte
		if *plural != "" {
			pluralBytes = []byte(*plural)
		}

		result = cat.TranslateContext(ctxBytes, []byte(singular), pluralBytes, n)
	} else {
		result = cat.Translate([]byte(singular))
	}

	fmt.Fprintln(out, string(result))

	return 0
}
