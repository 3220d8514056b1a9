package stats

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goregress/ols"
)

func gaussian(n int, seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]float64, n)
	for i := range out {
		out[i] = r.NormFloat64()
	}
	return out
}

func TestACF(t *testing.T) {
	n := 100
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = 0.8*values[i-1] + (float64(i%10)-5)/10
	}

	acf, err := ACF(values, 10)
	require.NoError(t, err)
	require.Len(t, acf, 11)
	assert.InDelta(t, 1.0, acf[0], 1e-12)
	assert.Greater(t, acf[1], 0.5)

	acf, err = ACF(values[:5], 10)
	require.NoError(t, err)
	assert.Len(t, acf, 5, "maxLag is clamped to n-1")

	_, err = ACF([]float64{2, 2, 2}, 1)
	assert.ErrorIs(t, err, ErrZeroVariance)

	_, err = ACF(nil, 1)
	assert.ErrorIs(t, err, ErrTooShort)
}

func ar1(n int, phi float64, seed uint64) []float64 {
	noise := gaussian(n, seed)
	values := make([]float64, n)
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + noise[i]
	}
	return values
}

func TestPACF(t *testing.T) {
	values := ar1(500, 0.7, 13)

	pacf, err := PACF(values, 5)
	require.NoError(t, err)
	require.Len(t, pacf, 6)

	acf, err := ACF(values, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pacf[0], 0)
	assert.InDelta(t, acf[1], pacf[1], 1e-12)
	assert.InDelta(t, (acf[2]-acf[1]*acf[1])/(1-acf[1]*acf[1]), pacf[2], 1e-12)

	// An AR(1) process cuts off after lag 1.
	assert.InDelta(t, 0.7, pacf[1], 0.1)
	for k := 2; k <= 5; k++ {
		assert.Less(t, math.Abs(pacf[k]), 0.15, "lag %d", k)
	}

	_, err = PACF(values, 0)
	assert.ErrorIs(t, err, ErrInvalidLag)
	_, err = PACF([]float64{1, 1, 1}, 2)
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestCorrelograms(t *testing.T) {
	values := ar1(400, 0.7, 17)

	acf, err := ACFWithConfidence(values, 20)
	require.NoError(t, err)
	assert.Equal(t, 21, len(acf.Lags))
	assert.Equal(t, 20, acf.Lags[20])
	assert.InDelta(t, 1.96/20, acf.ConfBound, 1e-12)
	assert.Contains(t, acf.Significant(), 1)

	pacf, err := PACFWithConfidence(values, 20)
	require.NoError(t, err)
	assert.Len(t, pacf.Values, 21)
	assert.Equal(t, acf.ConfBound, pacf.ConfBound)
	assert.Contains(t, pacf.Significant(), 1)

	_, err = ACFWithConfidence(nil, 3)
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestSignificantLags(t *testing.T) {
	acf := []float64{1, 0.5, 0.1, -0.4, 0.05}
	assert.Equal(t, []int{1, 3}, SignificantLags(acf, 0.2))
	assert.InDelta(t, 0.196, ACFConfidenceBound(100), 1e-12)
}

func TestDurbinWatson(t *testing.T) {
	dw, err := DurbinWatson([]float64{1, -1, 1, -1})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, dw, 1e-12)

	dw, err = DurbinWatson([]float64{1, 1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, dw, 1e-12)

	dw, err = DurbinWatson(gaussian(2000, 7))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, dw, 0.2)

	_, err = DurbinWatson([]float64{1})
	assert.ErrorIs(t, err, ErrTooShort)
	_, err = DurbinWatson([]float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestLjungBox(t *testing.T) {
	autocorrelated := make([]float64, 200)
	for i := range autocorrelated {
		autocorrelated[i] = math.Sin(float64(i) / 3)
	}

	lb, err := LjungBox(autocorrelated, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, lb.Lags)
	assert.Equal(t, 10, lb.DOF)
	assert.Greater(t, lb.Statistic, 0.0)
	assert.Less(t, lb.PValue, 0.01)

	acf, err := ACF(autocorrelated, 10)
	require.NoError(t, err)
	n := float64(len(autocorrelated))
	want := 0.0
	for k := 1; k <= 10; k++ {
		want += acf[k] * acf[k] / (n - float64(k))
	}
	assert.InDelta(t, want*n*(n+2), lb.Statistic, 1e-9)

	bp, err := BoxPierce(autocorrelated, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, bp.DOF)
	assert.Less(t, bp.Statistic, lb.Statistic, "Box-Pierce is smaller than Ljung-Box")

	lb, err = LjungBox(autocorrelated[:5], 10, 8)
	require.NoError(t, err)
	assert.Equal(t, 4, lb.Lags)
	assert.Equal(t, 1, lb.DOF)

	_, err = LjungBox(autocorrelated, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidLag)
	_, err = LjungBox([]float64{1, 2}, 1, 0)
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestJarqueBera(t *testing.T) {
	jb, err := JarqueBera(gaussian(2000, 11))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, jb.Skewness, 0.2)
	assert.InDelta(t, 3.0, jb.Kurtosis, 0.4)
	assert.GreaterOrEqual(t, jb.PValue, 0.0)
	assert.LessOrEqual(t, jb.PValue, 1.0)

	skewed := make([]float64, 500)
	r := rand.New(rand.NewPCG(3, 4))
	for i := range skewed {
		skewed[i] = r.ExpFloat64()
	}
	jb, err = JarqueBera(skewed)
	require.NoError(t, err)
	assert.Greater(t, jb.Skewness, 1.0)
	assert.Less(t, jb.PValue, 0.01)

	_, err = JarqueBera([]float64{1, 1, 1})
	assert.ErrorIs(t, err, ErrZeroVariance)
	_, err = JarqueBera([]float64{1, 2})
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestADF(t *testing.T) {
	noise := gaussian(300, 21)

	stationary := make([]float64, len(noise))
	for i := 1; i < len(noise); i++ {
		stationary[i] = 0.3*stationary[i-1] + noise[i]
	}
	result, err := ADF(stationary, 0)
	require.NoError(t, err)
	assert.Less(t, result.Statistic, -3.43)
	assert.True(t, result.IsStationary)
	assert.Equal(t, 6, result.Lags)
	assert.Equal(t, 300-6-1, result.NObs)

	walk := make([]float64, len(noise))
	for i := 1; i < len(noise); i++ {
		walk[i] = walk[i-1] + noise[i]
	}
	result, err = ADF(walk, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Lags)
	t.Logf("ADF random walk: statistic=%f p=%f", result.Statistic, result.PValue)

	_, err = ADF(make([]float64, 5), 0)
	assert.ErrorIs(t, err, ErrTooShort)

	// A constant series makes the ADF regression singular.
	constant := make([]float64, 50)
	for i := range constant {
		constant[i] = 4
	}
	_, err = ADF(constant, 1)
	assert.ErrorIs(t, err, ols.ErrSingularDesignMatrix)
}

func TestKPSS(t *testing.T) {
	noise := gaussian(200, 31)

	result, err := KPSS(noise, TrendConstant, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, result.Lags)
	assert.Equal(t, TrendConstant, result.Trend)
	assert.Less(t, result.Statistic, 0.739)
	assert.InDelta(t, 0.463, result.CriticalVals["5%"], 0)

	trending := make([]float64, len(noise))
	for i := range trending {
		trending[i] = 0.5*float64(i) + noise[i]
	}
	result, err = KPSS(trending, TrendConstant, 0)
	require.NoError(t, err)
	assert.Greater(t, result.Statistic, 0.739)
	assert.InDelta(t, 0.01, result.PValue, 0)
	assert.False(t, result.IsStationary)

	// Removing the trend leaves stationary noise.
	result, err = KPSS(trending, TrendLinear, 0)
	require.NoError(t, err)
	assert.Less(t, result.Statistic, 0.216)
	assert.InDelta(t, 0.146, result.CriticalVals["5%"], 0)

	_, err = KPSS(noise[:5], TrendConstant, 0)
	assert.ErrorIs(t, err, ErrTooShort)
	_, err = KPSS(noise, Trend("ctt"), 0)
	assert.ErrorIs(t, err, ErrUnknownTrend)
}

func TestPhillipsPerron(t *testing.T) {
	stationary := ar1(300, 0.3, 21)

	result, err := PhillipsPerron(stationary, 0)
	require.NoError(t, err)
	assert.Equal(t, 299, result.NObs)
	assert.Equal(t, 5, result.Lags)
	assert.Less(t, result.Statistic, -3.43)
	assert.True(t, result.IsStationary)

	walk := ar1(300, 1, 21)
	result, err = PhillipsPerron(walk, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Lags)
	t.Logf("PP random walk: statistic=%f p=%f", result.Statistic, result.PValue)

	_, err = PhillipsPerron(walk[:9], 0)
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestUnitRootPValueInterpolation(t *testing.T) {
	assert.InDelta(t, 0.001, mackinnonPValue(-6), 1e-12)
	assert.InDelta(t, 0.01, mackinnonPValue(-3.43), 1e-12)
	assert.InDelta(t, 0.075, mackinnonPValue(-2.715), 1e-9)
	assert.InDelta(t, 0.5, mackinnonPValue(-1.62), 1e-12)
	assert.InDelta(t, 0.905, mackinnonPValue(0), 1e-9)
	assert.InDelta(t, 0.99, mackinnonPValue(5), 1e-12)

	assert.InDelta(t, 0.05, kpssPValue(0.463, TrendConstant), 1e-12)
	assert.InDelta(t, 0.075, kpssPValue(0.405, TrendConstant), 1e-9)
	assert.InDelta(t, 0.01, kpssPValue(0.9, TrendConstant), 1e-12)
	assert.InDelta(t, 0.138, kpssPValue(0.1, TrendLinear), 1e-9)
	assert.InDelta(t, 0.99, kpssPValue(-1, TrendLinear), 1e-12)
}

func TestMackinnonPValueIsMonotone(t *testing.T) {
	prev := mackinnonPValue(-10)
	for s := -9.5; s <= 2; s += 0.25 {
		p := mackinnonPValue(s)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestDiagnose(t *testing.T) {
	noise := gaussian(120, 5)
	y := make([]float64, len(noise))
	x := make([][]float64, len(noise))
	for i := range y {
		x[i] = []float64{float64(i)}
		y[i] = 3 + 0.5*float64(i) + noise[i]
	}

	model, err := ols.Fit(y, x)
	require.NoError(t, err)

	diag, err := Diagnose(model, 10)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, diag.DurbinWatson, 0.6)
	assert.Equal(t, 10, diag.LjungBox.Lags)
	assert.NotNil(t, diag.JarqueBera)
	require.NotNil(t, diag.PACF)
	assert.Len(t, diag.PACF.Values, 11)
}
