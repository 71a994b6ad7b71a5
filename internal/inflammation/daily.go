// Package inflammation computes daily statistics over an inflammation table,
// where each row holds one patient's measurements and each column is one study day.
package inflammation

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DailySummary holds every daily statistic for one table
type DailySummary struct {
	Days int
	Mean []float64
	Max  []float64
	Min  []float64
	Std  []float64
}

// DailyMean returns the mean inflammation across all patients for each day
func DailyMean(data mat.Matrix) []float64 {
	return reduceDays(data, stats.Mean)
}

// DailyMax returns the highest inflammation across all patients for each day
func DailyMax(data mat.Matrix) []float64 {
	return reduceDays(data, stats.Max)
}

// DailyMin returns the lowest inflammation across all patients for each day
func DailyMin(data mat.Matrix) []float64 {
	return reduceDays(data, stats.Min)
}

// DailyStd returns the population standard deviation across all patients for each day
func DailyStd(data mat.Matrix) []float64 {
	return reduceDays(data, func(column stats.Float64Data) (float64, error) {
		return math.Sqrt(stat.PopVariance(column, nil)), nil
	})
}

// Summarize computes all daily statistics for the table
func Summarize(data mat.Matrix) DailySummary {
	_, days := data.Dims()
	return DailySummary{
		Days: days,
		Mean: DailyMean(data),
		Max:  DailyMax(data),
		Min:  DailyMin(data),
		Std:  DailyStd(data),
	}
}

// reduceDays applies fn to every column. A column holding NaN, or a reduction
// that fails (empty column), yields NaN for that day.
func reduceDays(data mat.Matrix, fn func(stats.Float64Data) (float64, error)) []float64 {
	_, days := data.Dims()
	out := make([]float64, days)
	column := []float64(nil)
	for j := 0; j < days; j++ {
		column = mat.Col(column, j, data)
		if floats.HasNaN(column) {
			out[j] = math.NaN()
			continue
		}
		v, err := fn(column)
		if err != nil {
			v = math.NaN()
		}
		out[j] = v
	}
	return out
}
