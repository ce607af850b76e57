package stats

import "gonum.org/v1/gonum/stat/distuv"

// ConfidenceInterval returns the half-width of the two-tailed normal
// confidence interval around the statistic's mean, at the given
// confidence level in percent (e.g. 95).
func (s *Statistic) ConfidenceInterval(level float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	z := dist.Quantile((1 + level/100) / 2)
	return z * s.StandardError()
}
