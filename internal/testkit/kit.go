// Package testkit holds empirical-measurement glue shared by the demo CLI
// and the statistical tests: drawing repeated realizations of a variable and
// summarizing them.
package testkit

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"gochance/omega"
	"gochance/randvar"
)

// Draw samples n scalar realizations of v from u in one batch.
func Draw(u *omega.Universe, v randvar.Variable, n int) ([]float64, error) {
	b, err := u.Sample(n)
	if err != nil {
		return nil, err
	}
	return v.Eval(b)
}

// Summary captures the empirical shape of a sample.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Q25    float64
	Q75    float64
}

// Summarize computes summary statistics for a sample.
func Summarize(data []float64) (Summary, error) {
	s := Summary{Count: len(data)}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.Q25, err = stats.Percentile(data, 25); err != nil {
		return s, err
	}
	if s.Q75, err = stats.Percentile(data, 75); err != nil {
		return s, err
	}
	return s, nil
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.4f std=%.4f min=%.4f q25=%.4f med=%.4f q75=%.4f max=%.4f",
		s.Count, s.Mean, s.StdDev, s.Min, s.Q25, s.Median, s.Q75, s.Max)
}

// Histogram renders an ASCII histogram of data over [lo, hi] with the given
// number of bins. Values outside the range are clamped into the edge bins.
func Histogram(data []float64, bins int, lo, hi float64) string {
	if bins <= 0 || len(data) == 0 || hi <= lo {
		return ""
	}

	counts := make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for _, x := range data {
		i := int((x - lo) / width)
		if i < 0 {
			i = 0
		}
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	const barWidth = 50
	peak := floats.Max(counts)
	var sb strings.Builder
	for i, c := range counts {
		bar := int(c / peak * barWidth)
		fmt.Fprintf(&sb, "%8.3f | %-*s %d\n", lo+float64(i)*width, barWidth, strings.Repeat("#", bar), int(c))
	}
	return sb.String()
}
