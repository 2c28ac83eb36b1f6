// Binary kernel-cfg-diff prints the options in which two kernel .config files
// differ.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/distr1/kconfig"
	"github.com/distr1/kconfig/internal/cfgfile"
	"golang.org/x/xerrors"
)

var (
	configA = flag.String("config_a",
		"",
		"Path to the first kernel config")

	configB = flag.String("config_b",
		"",
		"Path to the second kernel config")
)

func allOpts(cfgA, cfgB map[string]string) []string {
	present := make(map[string]bool)
	for k := range cfgA {
		present[k] = true
	}
	for k := range cfgB {
		present[k] = true
	}
	opts := make([]string, 0, len(present))
	for k := range present {
		opts = append(opts, k)
	}
	sort.Strings(opts)
	return opts
}

func diff(w io.Writer, cfgA, cfgB map[string]string) {
	for _, opt := range allOpts(cfgA, cfgB) {
		a, inA := cfgA[opt]
		b, inB := cfgB[opt]
		switch {
		case inA && !inB:
			fmt.Fprintf(w, "only in a: %v=%v\n", opt, a)
		case !inA && inB:
			fmt.Fprintf(w, "only in b: %v=%v\n", opt, b)
		case a == b:
		case a == "y" && b == "m":
			log.Printf("FYI: a y/b m: %v", opt) // a is more strict
		default:
			fmt.Fprintf(w, "diff: %v=%v (a) vs. %v (b)\n", opt, a, b)
		}
	}
}

func logic(w io.Writer, configA, configB string) error {
	if configA == "" || configB == "" {
		return xerrors.Errorf("syntax: kernel-cfg-diff -config_a=<file> -config_b=<file>")
	}
	linesA, err := cfgfile.ReadLines(configA)
	if err != nil {
		return err
	}
	linesB, err := cfgfile.ReadLines(configB)
	if err != nil {
		return err
	}
	diff(w, kconfig.Values(linesA), kconfig.Values(linesB))
	return nil
}

func main() {
	flag.Parse()
	if err := logic(os.Stdout, *configA, *configB); err != nil {
		log.Fatal(err)
	}
}
