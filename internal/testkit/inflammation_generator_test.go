package testkit

import (
	"math"
	"testing"

	"inflammation/internal/inflammation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestInflammationGenerator_Basic(t *testing.T) {
	config := DefaultInflammationConfig()
	config.Patients = 10 // Small for testing
	config.Days = 9

	table, err := NewInflammationGenerator(config).Generate()
	require.NoError(t, err)

	rows, cols := table.Dims()
	assert.Equal(t, 10, rows)
	assert.Equal(t, 9, cols)

	for i := 0; i < rows; i++ {
		assert.Equal(t, 0.0, table.At(i, 0), "day 0 starts without inflammation")
		for j := 0; j < cols; j++ {
			v := table.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Equal(t, math.Round(v), v)
		}
	}
}

func TestInflammationGenerator_Deterministic(t *testing.T) {
	config := DefaultInflammationConfig()

	first, err := NewInflammationGenerator(config).Generate()
	require.NoError(t, err)
	second, err := NewInflammationGenerator(config).Generate()
	require.NoError(t, err)
	assert.True(t, mat.Equal(first, second))

	config.Seed = 7
	other, err := NewInflammationGenerator(config).Generate()
	require.NoError(t, err)
	assert.False(t, mat.Equal(first, other))
}

func TestInflammationGenerator_PeaksMidStudy(t *testing.T) {
	table, err := NewInflammationGenerator(DefaultInflammationConfig()).Generate()
	require.NoError(t, err)

	mean := inflammation.DailyMean(table)
	mid := len(mean) / 2
	assert.Greater(t, mean[mid], mean[0])
	assert.Greater(t, mean[mid], mean[len(mean)-1])
}

func TestInflammationGenerator_InvalidSize(t *testing.T) {
	_, err := NewInflammationGenerator(InflammationGeneratorConfig{Patients: 0, Days: 3}).Generate()
	assert.Error(t, err)
}
