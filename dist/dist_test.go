package dist

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"gochance/omega"
	"gochance/randvar"
)

const sampleSize = 20000

func draw(t *testing.T, u *omega.Universe, v randvar.Variable, n int) []float64 {
	t.Helper()
	b, err := u.Sample(n)
	require.NoError(t, err)
	values, err := v.Eval(b)
	require.NoError(t, err)
	return values
}

func TestUniform_Range(t *testing.T) {
	u := omega.NewSeeded(101)
	x, err := Uniform(u, -2.0, 3.0)
	require.NoError(t, err)

	for _, v := range draw(t, u, x, sampleSize) {
		if v < -2 || v > 3 {
			t.Fatalf("value %v outside [-2, 3]", v)
		}
	}
}

func TestBernoulli_Proportion(t *testing.T) {
	u := omega.NewSeeded(102)
	x, err := Bernoulli(u, 0.25)
	require.NoError(t, err)

	values := draw(t, u, x, sampleSize)
	ones := 0
	for _, v := range values {
		if v != 0 && v != 1 {
			t.Fatalf("Bernoulli produced non-boolean value %v", v)
		}
		if v == 1 {
			ones++
		}
	}

	// Standard error is sqrt(p(1-p)/N) ~ 0.003; 0.02 is a comfortable bound.
	proportion := float64(ones) / float64(len(values))
	assert.InDelta(t, 0.25, proportion, 0.02)
}

func TestBernoulli_CertainEvent(t *testing.T) {
	u := omega.NewSeeded(103)
	x, err := Bernoulli(u, 1.0)
	require.NoError(t, err)

	for _, v := range draw(t, u, x, 500) {
		require.Equal(t, 1.0, v)
	}
}

func TestNormal_Moments(t *testing.T) {
	u := omega.NewSeeded(104)
	x, err := Normal(u, 3.0, 2.0)
	require.NoError(t, err)

	values := draw(t, u, x, sampleSize)
	mean := stat.Mean(values, nil)
	stdDev := stat.StdDev(values, nil)

	// SE of the mean is sigma/sqrt(N) ~ 0.014; bounds leave ample slack.
	assert.InDelta(t, 3.0, mean, 0.1)
	assert.InDelta(t, 2.0, stdDev, 0.1)
}

func TestNormal_QuantileMatchesGonum(t *testing.T) {
	// The inverse-CDF transform must agree with gonum's normal quantile.
	for p := 0.01; p < 1; p += 0.01 {
		got := math.Erfinv(2*p-1) * math.Sqrt2
		want := distuv.UnitNormal.Quantile(p)
		assert.InDelta(t, want, got, 1e-8, "p=%v", p)
	}
}

func TestExponential_Median(t *testing.T) {
	u := omega.NewSeeded(105)
	x, err := Exponential(u, 2.0)
	require.NoError(t, err)

	values := draw(t, u, x, sampleSize+1)
	for _, v := range values {
		if v < 0 {
			t.Fatalf("Exponential produced negative value %v", v)
		}
	}

	median, err := stats.Median(values)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2/2.0, median, 0.05)
}

func TestCauchy_Median(t *testing.T) {
	u := omega.NewSeeded(106)
	x, err := Cauchy(u, -1.0, 0.5)
	require.NoError(t, err)

	// The mean of a Cauchy does not exist; the median is the location.
	values := draw(t, u, x, sampleSize+1)
	median, err := stats.Median(values)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, median, 0.1)
}

func TestCoordinateConsumption(t *testing.T) {
	u := omega.New()

	_, err := Uniform(u, 0.0, 1.0)
	require.NoError(t, err)
	_, err = Bernoulli(u, 0.5)
	require.NoError(t, err)
	_, err = Normal(u, 0.0, 1.0)
	require.NoError(t, err)
	_, err = Exponential(u, 1.0)
	require.NoError(t, err)
	_, err = Cauchy(u, 0.0, 1.0)
	require.NoError(t, err)

	// One coordinate per primitive, in construction order.
	assert.Equal(t, 5, u.Coordinates())
}

func TestNormal_RandomizedMean(t *testing.T) {
	u := omega.NewSeeded(107)
	mu, err := Uniform(u, -1.0, 1.0)
	require.NoError(t, err)
	x, err := Normal(u, mu, 0.5)
	require.NoError(t, err)

	// Two coordinates: one for mu, one for the normal draw.
	require.Equal(t, 2, u.Coordinates())

	// E[X] = E[mu] = 0; Var = Var(mu) + sigma^2 = 1/3 + 1/4.
	values := draw(t, u, x, sampleSize)
	mean := stat.Mean(values, nil)
	stdDev := stat.StdDev(values, nil)
	assert.InDelta(t, 0.0, mean, 0.05)
	assert.InDelta(t, math.Sqrt(1.0/3.0+0.25), stdDev, 0.05)
}

func TestComposedDistributionExpression(t *testing.T) {
	u := omega.NewSeeded(108)
	x, err := Normal(u, 0.0, 1.0)
	require.NoError(t, err)

	// exp(N(0,1)) is lognormal; check against the direct transform.
	yAny, err := randvar.Exp(x)
	require.NoError(t, err)
	y := yAny.(randvar.Variable)

	b, err := u.Sample(1000)
	require.NoError(t, err)
	vy, err := y.Eval(b)
	require.NoError(t, err)
	vx, err := x.Eval(b)
	require.NoError(t, err)
	for i := range vy {
		assert.Equal(t, math.Exp(vx[i]), vy[i])
	}
}

func TestBadParameter(t *testing.T) {
	u := omega.New()

	_, err := Normal(u, "mean", 1.0)
	require.Error(t, err)
	assert.True(t, randvar.IsNotRandomizable(err))

	// Failed construction claims no coordinate.
	assert.Equal(t, 0, u.Coordinates())
}
