// Package main provides the GoGrad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/gograd-ml/gograd/autodiff"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("GoGrad %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("GoGrad - Scalar Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a small expression graph")
	fmt.Println("")
	fmt.Println("See examples/moons for a full training loop.")
}

// demo builds loss = (a*b + c) * f and prints every node's value and
// gradient after one backward pass.
func demo() {
	a := autodiff.NewValue(2.0)
	b := autodiff.NewValue(-3.0)
	c := autodiff.NewValue(10.0)
	f := autodiff.NewValue(-2.0)
	loss := a.Mul(b).Add(c).Mul(f)

	loss.Backward()

	fmt.Println("loss = (a*b + c) * f")
	for _, n := range []struct {
		name string
		v    *autodiff.Value
	}{
		{"a", a}, {"b", b}, {"c", c}, {"f", f}, {"loss", loss},
	} {
		fmt.Printf("  %-4s %s\n", n.name, n.v)
	}
}
