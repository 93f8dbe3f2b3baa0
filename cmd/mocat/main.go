// Command mocat is a small CLI demo around pkg/mocat: load a .mo catalog
// and issue translate/info/dump/repl queries against it.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Environ(), os.Stdout, os.Stderr))
}

func run(args []string, env []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		printUsage(errOut)

		return 1
	}

	cfg, err := loadConfig(env)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)

		return 1
	}

	switch args[1] {
	case "translate":
		return cmdTranslate(args[2:], cfg, out, errOut)
	case "info":
		return cmdInfo(args[2:], cfg, out, errOut)
	case "dump":
		return cmdDump(args[2:], cfg, out, errOut)
	case "repl":
		return cmdRepl(args[2:], cfg, out, errOut)
	case "-h", "--help", "help":
		printUsage(out)

		return 0
	default:
		fmt.Fprintln(errOut, "error: unknown command", args[1])
		printUsage(errOut)

		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `mocat - query GNU gettext .mo catalogs

Usage:
  mocat translate -f <catalog.mo> [-c context] [-p plural] <singular> [n]
  mocat info -f <catalog.mo> [--format json|yaml]
  mocat dump -f <catalog.mo> -o <file> [--format json|yaml]
  mocat repl -f <catalog.mo>`)
}
