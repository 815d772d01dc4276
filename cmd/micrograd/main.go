// Command micrograd trains small scalar networks and demonstrates the
// autodiff engine.
//
// Usage:
//
//	micrograd [-v=N] <command> [flags]
//
// Commands:
//
//	version    Show version
//	grad       Differentiate x / div and print dy/dx
//	train      Train an MLP on a CSV file or a synthetic dataset
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
	keyStyle   = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	valueStyle = lipgloss.NewStyle().Padding(0, 1)
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Printf("micrograd %s\n", version)
	case "grad":
		err = runGrad(args[1:], os.Stdout)
	case "train":
		err = runTrain(args[1:], os.Stdout, os.Stderr)
	default:
		klog.Errorf("Unknown command %q. See 'micrograd -help'.", args[0])
		os.Exit(2)
	}
	if err != nil {
		klog.Fatalf("%s failed: %+v", args[0], err)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "micrograd %s - scalar reverse-mode autodiff\n\n", version)
	fmt.Fprintln(out, "Usage: micrograd [flags] <command> [command flags]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  grad       Differentiate x / div and print dy/dx")
	fmt.Fprintln(out, "  train      Train an MLP (see 'micrograd train -help')")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

// newTable returns a two-column key/value table.
func newTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle
		})
}
