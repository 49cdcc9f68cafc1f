package field

import "math"

func clamp01(t float64) float64 {
	return math.Min(1, math.Max(0, t))
}

// smoothMinFraction returns the blend fraction h for SMin given child
// values a, b and radius k. SMin = b*(1-h) + a*h - k*h*(1-h).
func smoothMinFraction(a, b, k float64) float64 {
	return clamp01(0.5 + 0.5*(b-a)/k)
}

// smoothMaxFraction returns the blend fraction h for SMax given child
// values a, b and radius k. SMax = b*(1-h) + a*h + k*h*(1-h).
func smoothMaxFraction(a, b, k float64) float64 {
	return clamp01(0.5 - 0.5*(b-a)/k)
}

func smoothBlend(a, b, k, h float64, sign float64) float64 {
	return b*(1-h) + a*h + sign*k*h*(1-h)
}
