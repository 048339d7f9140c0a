package weather

// DefaultAQI is reported when air quality data is missing or malformed.
const DefaultAQI = 50

var aqiWeights = []struct {
	pollutant string
	weight    float64
}{
	{"pm2_5", 5},
	{"pm10", 0.5},
	{"no2", 0.6},
	{"o3", 0.3},
}

// EstimateAQI computes a simplified air quality index from pollutant
// concentrations. This is a weighted sum, not the EPA or WHO formula.
// Missing pollutants count as zero.
func EstimateAQI(aq AirQuality) int {
	if len(aq) == 0 {
		return DefaultAQI
	}

	var sum float64
	for _, w := range aqiWeights {
		r, ok := aq[w.pollutant]
		if !ok {
			continue
		}
		v, err := r.Float()
		if err != nil {
			return DefaultAQI
		}
		sum += v * w.weight
	}

	return clamp(int(sum), 0, MaxAQI)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
