// torusdist reads newline-separated angles in radians from stdin and
// describes their circular distribution.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"strconv"

	"github.com/aclements/go-torus/torusdist"
	"gonum.org/v1/gonum/mat"
)

func main() {
	xs := readInput(os.Stdin)
	if len(xs) == 0 {
		fmt.Fprintln(os.Stderr, "no input")
		os.Exit(1)
	}
	samples := mat.NewDense(1, len(xs), xs)

	m1 := torusdist.EmpiricalMoment(samples, 1)[0]
	mean := math.Atan2(imag(m1), real(m1))
	if mean < 0 {
		mean += 2 * math.Pi
	}
	r := cmplx.Abs(m1)

	fmt.Printf("N %d  circular mean %.6g  resultant length %.6g", len(xs), mean, r)
	if r > 0 {
		fmt.Printf("  circular std dev %.6g", math.Sqrt(-2*math.Log(r)))
	}
	fmt.Println()
	fmt.Println()

	for n := 1; n <= 4; n++ {
		m := torusdist.EmpiricalMoment(samples, n)[0]
		fmt.Printf("moment %d  %.6g%+.6gi  (magnitude %.6g)\n", n, real(m), imag(m), cmplx.Abs(m))
	}
}

func readInput(r io.Reader) (xs []float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Reduce to [0, 2π); the moments would not care, but
		// the printed values read better.
		value = math.Mod(value, 2*math.Pi)
		if value < 0 {
			value += 2 * math.Pi
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
