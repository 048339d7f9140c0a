package weather

import (
	"math"
	"strings"
)

// Defaults used when the provider omits (or garbles) the UV inputs.
const (
	DefaultVisibility = 5.0
	DefaultCloudCover = 50.0
	DefaultIsDay      = "yes"

	clearSkyUV = 7.0
)

// EstimateUV approximates the UV index for providers that do not report it.
// A clear day starts at 7 and is scaled down by cloud cover (percent) and
// visibility (0-10). Night is always 0.
func EstimateUV(visibility, cloudCover float64, isDay string) int {
	if strings.EqualFold(strings.TrimSpace(isDay), "no") {
		return 0
	}

	cloudFactor := 1 - cloudCover/100
	visibilityFactor := visibility / 10
	estimate := math.Floor(clearSkyUV * cloudFactor * visibilityFactor)
	if math.IsNaN(estimate) {
		return 0
	}

	return int(math.Max(0, math.Min(MaxUV, estimate)))
}
