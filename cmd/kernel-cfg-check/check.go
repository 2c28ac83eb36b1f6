// Binary kernel-cfg-check verifies that a kernel .config file contains a set
// of desired option values.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/distr1/kconfig"
	"github.com/distr1/kconfig/internal/cfgfile"
	"golang.org/x/xerrors"
)

const checkHelp = `kernel-cfg-check [-flags] <kernel_config_file> <new_config_file>

Verify that the kernel config file sets every option of the JSON object in
new_config_file to the desired value. Options desired to be "y" must be
present; options with other desired values may be absent.

Exits with status 0 if all options are set as desired, 2 if they are not, and
1 on errors.

Example:
  % kernel-cfg-check .config desired.json
`

const (
	exitOK       = 0
	exitError    = 1
	exitMismatch = 2
)

func usage(fset *flag.FlagSet, helpText string) func() {
	return func() {
		fmt.Fprintln(fset.Output(), helpText)
		fmt.Fprintf(fset.Output(), "Usage of %s:\n", fset.Name())
		fset.PrintDefaults()
	}
}

// logic reports every desired setting which kernelConfig does not satisfy to
// stdout and returns whether all of them are satisfied.
func logic(stdout io.Writer, kernelConfig, newConfig string, failfast bool) (bool, error) {
	settings, err := kconfig.LoadSettings(newConfig)
	if err != nil {
		return false, err
	}
	f, err := cfgfile.Lock(kernelConfig, false)
	if err != nil {
		return false, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return false, xerrors.Errorf("reading %s: %w", kernelConfig, err)
	}
	mismatches := kconfig.Check(cfgfile.Split(b), settings)
	if failfast && len(mismatches) > 1 {
		mismatches = mismatches[:1]
	}
	for _, m := range mismatches {
		fmt.Fprintf(stdout, "Warning: %v\n", m)
	}
	return len(mismatches) == 0, nil
}

func run(args []string, stdout io.Writer) int {
	fset := flag.NewFlagSet("kernel-cfg-check", flag.ContinueOnError)
	var (
		failfast = fset.Bool("failfast",
			false,
			"stop after the first option which is not set as desired")
	)
	fset.Usage = usage(fset, checkHelp)
	if err := fset.Parse(args); err != nil {
		return exitError
	}
	if fset.NArg() != 2 {
		fmt.Fprintf(stdout, "Usage: %s", checkHelp)
		return exitError
	}
	kernelConfig, newConfig := fset.Arg(0), fset.Arg(1)
	if _, err := os.Stat(kernelConfig); xerrors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stdout, "Error: %s does not exist\n", kernelConfig)
		return exitError
	}
	ok, err := logic(stdout, kernelConfig, newConfig, *failfast)
	if err != nil {
		log.Print(err)
		return exitError
	}
	if !ok {
		return exitMismatch
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
