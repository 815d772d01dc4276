// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"

	"github.com/born-ml/micrograd/autodiff"
)

func Example() {
	x := autodiff.NewValue(3.0)
	y := x.Div(autodiff.NewValue(5.12))

	y.Backward()
	fmt.Println(x.Grad())
	// Output: 0.1953125
}

func ExampleValue_Backward() {
	a := autodiff.NewValue(2.0)
	b := autodiff.NewValue(-3.0)
	c := a.Mul(b).Add(a.Pow(2))

	c.Backward()
	fmt.Printf("c=%g da=%g db=%g\n", c.Data(), a.Grad(), b.Grad())
	// Output: c=-2 da=1 db=2
}

func ExampleLift() {
	x := autodiff.NewValue(1.5)
	y, err := x.MulAny(2.0)
	if err != nil {
		panic(err)
	}
	fmt.Println(y.Data())

	_, err = autodiff.Lift("two")
	fmt.Println(err)
	// Output:
	// 3
	// cannot combine value with string: autodiff: invalid operand type
}
