package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateUV(t *testing.T) {
	assert.Equal(t, 0, EstimateUV(10, 0, "no"))
	assert.Equal(t, 7, EstimateUV(10, 0, "yes"))
	assert.Equal(t, 0, EstimateUV(0, 0, "yes"))
	assert.Equal(t, 1, EstimateUV(DefaultVisibility, DefaultCloudCover, DefaultIsDay))
	assert.Equal(t, 3, EstimateUV(10, 50, "yes"))
	assert.Equal(t, 0, EstimateUV(10, 100, "yes"))
}

func TestEstimateUVAnythingButNoIsDaytime(t *testing.T) {
	assert.Equal(t, 7, EstimateUV(10, 0, ""))
	assert.Equal(t, 0, EstimateUV(10, 0, "NO"))
}

func TestEstimateUVStaysInRange(t *testing.T) {
	for _, vis := range []float64{-5, 0, 2.5, 10, 50, 1000} {
		for _, cloud := range []float64{-500, 0, 30, 100, 250} {
			got := EstimateUV(vis, cloud, "yes")
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, MaxUV)
		}
	}
}
