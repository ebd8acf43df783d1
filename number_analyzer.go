// number_analyzer.go
package main

import (
	"math"
	"sort"

	"github.com/pivolan/healthcare_analyzer/domain/models"
)

var quantileLevels = []float64{0.01, 0.1, 0.25, 0.75, 0.9, 0.99}

// calculateQuantile interpolates linearly between the two closest ranks.
func calculateQuantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)

	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	fraction := pos - floor

	return lower + fraction*(upper-lower)
}

// findOutliers returns values outside 1.5 IQR of the quartiles.
func findOutliers(numbers []float64, q1 float64, q3 float64, iqr float64) []float64 {
	outliers := make([]float64, 0)
	lowerBound := q1 - 1.5*iqr
	upperBound := q3 + 1.5*iqr

	for _, num := range numbers {
		if num < lowerBound || num > upperBound {
			outliers = append(outliers, num)
		}
	}
	return outliers
}

// AnalyzeNumbers computes descriptive statistics, nil for an empty input.
func AnalyzeNumbers(numbers []float64) *models.NumberStats {
	if len(numbers) == 0 {
		return nil
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	sum := 0.0
	for _, num := range numbers {
		sum += num
	}
	avg := sum / float64(len(numbers))

	var median float64
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	} else {
		median = sorted[len(sorted)/2]
	}

	quantiles := make(map[float64]float64, len(quantileLevels))
	for _, p := range quantileLevels {
		quantiles[p] = roundToTwo(calculateQuantile(sorted, p))
	}

	iqr := quantiles[0.75] - quantiles[0.25]

	return &models.NumberStats{
		Average:   roundToTwo(avg),
		Median:    roundToTwo(median),
		Min:       roundToTwo(sorted[0]),
		Max:       roundToTwo(sorted[len(sorted)-1]),
		Count:     len(numbers),
		Quantiles: quantiles,
		IQR:       roundToTwo(iqr),
		Outliers:  findOutliers(numbers, quantiles[0.25], quantiles[0.75], iqr),
	}
}

func roundToTwo(num float64) float64 {
	return math.Round(num*100) / 100
}
