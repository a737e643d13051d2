// Package main provides the dense command-line demo.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/densemath/dense/heatmap"
	"github.com/densemath/dense/matrix"
	"github.com/densemath/dense/vector"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("dense %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintln(os.Stderr, "demo:", err)
				os.Exit(1)
			}
			return
		case "heatmap":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: dense heatmap OUT.png")
				os.Exit(2)
			}
			if err := writeHeatmap(os.Args[2]); err != nil {
				fmt.Fprintln(os.Stderr, "heatmap:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("dense - float64 vectors and matrices for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version          Show version")
	fmt.Println("  demo             Run the arithmetic and shape demo")
	fmt.Println("  heatmap OUT.png  Render a sample matrix heat map")
}

func demo() error {
	a, err := vector.From([]float64{1, 2, 3})
	if err != nil {
		return err
	}
	b, err := vector.New(3, 10)
	if err != nil {
		return err
	}

	sum, err := a.Add(b)
	if err != nil {
		return err
	}
	fmt.Printf("%v + %v = %v\n", a, b, sum)
	fmt.Printf("%v * 2 = %v\n", a, a.MulScalar(2))

	m, err := matrix.From(2, 2, []float64{1, 2, 3, 4})
	if err != nil {
		return err
	}
	fmt.Printf("\nm:\n%v\n", m)
	fmt.Printf("transposed:\n%v\n", m.Transposed())

	if err := m.Reshape(1, 4); err != nil {
		return err
	}
	fmt.Printf("reshaped to 1x4:\n%v\n", m)

	id, err := matrix.Identity(3)
	if err != nil {
		return err
	}
	scaled := id.MulScalar(2)
	fmt.Printf("\n2 * identity(3):\n%v\n", scaled)
	return nil
}

func writeHeatmap(path string) error {
	m, err := matrix.Zeros(64, 64)
	if err != nil {
		return err
	}
	rows, cols := m.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := math.Sin(float64(c)/6) * math.Cos(float64(r)/6)
			if err := m.Set(r, c, v); err != nil {
				return err
			}
		}
	}

	if err := heatmap.Save(m, path); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}
