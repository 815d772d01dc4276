package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/micrograd/autodiff"
)

// runGrad builds y = x / div, runs a backward pass and prints y and dy/dx.
func runGrad(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("grad", flag.ContinueOnError)
	x := fs.Float64("x", 3.0, "value of x")
	div := fs.Float64("div", 5.12, "divisor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	xv := autodiff.NewValue(*x)
	y := xv.Div(autodiff.NewValue(*div))
	y.Backward()

	fmt.Fprintf(w, "y = %g / %g = %g\n", *x, *div, y.Data())
	fmt.Fprintf(w, "dy/dx = %g\n", xv.Grad())
	return nil
}
