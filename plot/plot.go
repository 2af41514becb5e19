package plot

import (
	"strings"
)

// Line is a parsed plot line.
type Line struct {
	Parts     []string     // all parts of the line, trimmed
	Functions []Polynomial // the parts which may be plotted
}

// Result is the display form of a plot line: its parts joined by ", ".
func (l Line) Result() string {
	return strings.Join(l.Parts, ", ")
}

// Sources returns the functions as written.
func (l Line) Sources() []string {
	fns := make([]string, len(l.Functions))
	for i, f := range l.Functions {
		fns[i] = f.Source
	}
	return fns
}

// Parse splits text at commas and parses every part as a polynomial.
// text must not include a format tag. Parts which do not parse are
// dropped from Functions.
func Parse(text string) Line {
	var l Line
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		l.Parts = append(l.Parts, part)
		p, err := ParsePolynomial(part)
		if err != nil {
			tracer().Debugf("not plotting %q: %v", part, err)
			continue
		}
		l.Functions = append(l.Functions, p)
	}
	return l
}

// Sample is a function value at a point.
type Sample struct {
	X float64
	Y []float64 // one value per function
}

// Table evaluates the functions of l at n+1 equidistant points of
// [from, to]. n < 1 is treated as 1.
func (l Line) Table(from, to float64, n int) []Sample {
	if n < 1 {
		n = 1
	}
	step := (to - from) / float64(n)
	samples := make([]Sample, 0, n+1)
	for i := 0; i <= n; i++ {
		x := from + float64(i)*step
		s := Sample{X: x, Y: make([]float64, len(l.Functions))}
		for j, f := range l.Functions {
			s.Y[j] = f.Eval(x)
		}
		samples = append(samples, s)
	}
	return samples
}
