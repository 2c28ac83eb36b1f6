// Binary kernel-cfg-update rewrites a kernel .config file so that it contains
// a set of desired option values.
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

const updateHelp = `kernel-cfg-update [-flags] <kernel_config_file> <new_config_file>

Set every option of the JSON object in new_config_file to its value in the
kernel config file. “# NAME is not set” markers of these options are removed,
options which are not yet present are appended.

The kernel config file is replaced atomically.

Example:
  % echo '{"CONFIG_KVM": "y", "CONFIG_KVM_INTEL": "m"}' > desired.json
  % kernel-cfg-update .config desired.json
`

func usage(fset *flag.FlagSet, helpText string) func() {
	return func() {
		fmt.Fprintln(fset.Output(), helpText)
		fmt.Fprintf(fset.Output(), "Usage of %s:\n", fset.Name())
		fset.PrintDefaults()
	}
}

func logic(stdout io.Writer, kernelConfig, newConfig string, dryRun bool) error {
	settings, err := kconfig.LoadSettings(newConfig)
	if err != nil {
		return err
	}
	f, err := cfgfile.Lock(kernelConfig, true)
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return xerrors.Errorf("reading %s: %w", kernelConfig, err)
	}
	lines := kconfig.Update(cfgfile.Split(b), settings)
	if dryRun {
		return cfgfile.Write(stdout, lines)
	}
	if err := cfgfile.Replace(kernelConfig, lines); err != nil {
		return err
	}
	log.Printf("%s: %d options set", kernelConfig, len(settings))
	return nil
}

func run(args []string, stdout io.Writer) int {
	fset := flag.NewFlagSet("kernel-cfg-update", flag.ContinueOnError)
	var (
		dryRun = fset.Bool("dry_run",
			false,
			"print the updated config to stdout instead of replacing kernel_config_file")
	)
	fset.Usage = usage(fset, updateHelp)
	if err := fset.Parse(args); err != nil {
		return 1
	}
	if fset.NArg() != 2 {
		fmt.Fprintf(stdout, "Usage: %s", updateHelp)
		return 1
	}
	kernelConfig, newConfig := fset.Arg(0), fset.Arg(1)
	if _, err := os.Stat(kernelConfig); xerrors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stdout, "Error: %s does not exist\n", kernelConfig)
		return 1
	}
	if err := logic(stdout, kernelConfig, newConfig, *dryRun); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
