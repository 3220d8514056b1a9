package stats

import (
	"fmt"

	"github.com/sartorproj/goregress/ols"
)

// Diagnostics collects the residual tests of a fitted model.
type Diagnostics struct {
	DurbinWatson float64
	LjungBox     *PortmanteauResult
	JarqueBera   *JarqueBeraResult
	PACF         *Correlogram
}

// Diagnose runs Durbin-Watson, Ljung-Box with the given lag count and
// Jarque-Bera on the residuals of m, and computes their PACF up to the same
// lag. Residuals that are all exactly zero yield ErrZeroVariance.
func Diagnose(m *ols.Model, lags int) (*Diagnostics, error) {
	resid := m.Residuals()

	dw, err := DurbinWatson(resid)
	if err != nil {
		return nil, fmt.Errorf("durbin-watson: %w", err)
	}
	lb, err := LjungBox(resid, lags, 0)
	if err != nil {
		return nil, fmt.Errorf("ljung-box: %w", err)
	}
	jb, err := JarqueBera(resid)
	if err != nil {
		return nil, fmt.Errorf("jarque-bera: %w", err)
	}
	pacf, err := PACFWithConfidence(resid, lags)
	if err != nil {
		return nil, fmt.Errorf("pacf: %w", err)
	}

	return &Diagnostics{
		DurbinWatson: dw,
		LjungBox:     lb,
		JarqueBera:   jb,
		PACF:         pacf,
	}, nil
}
