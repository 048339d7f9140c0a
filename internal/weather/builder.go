package weather

// UnknownDescription is used when the provider sends no weather description.
const UnknownDescription = "Unknown"

// BuildRecord normalizes a successful provider payload into a WeatherRecord.
// fallbackName is used as the city name when the provider does not report
// one. Missing numeric fields default to 0 and the wind direction to "N".
// The UV index is estimated only when the provider omits it.
func BuildRecord(p Payload, fallbackName string) WeatherRecord {
	cur := p.Current
	if cur == nil {
		cur = &PayloadCurrent{}
	}
	loc := p.Location
	if loc == nil {
		loc = &PayloadLocation{}
	}

	description := UnknownDescription
	if len(cur.WeatherDescriptions) > 0 {
		description = cur.WeatherDescriptions[0]
	}

	return WeatherRecord{
		City:        stringOr(loc.Name, fallbackName),
		Temperature: floatOr(cur.Temperature, 0),
		Condition:   ClassifyCondition(description),
		AQI:         EstimateAQI(cur.AirQuality),
		UV:          uvIndex(cur),
		Description: description,
		Humidity:    floatOr(cur.Humidity, 0),
		WindSpeed:   floatOr(cur.WindSpeed, 0),
		WindDir:     stringOr(cur.WindDir, "N"),
		Country:     stringOr(loc.Country, ""),
	}
}

func uvIndex(cur *PayloadCurrent) int {
	if cur.UVIndex != nil {
		return clamp(int(*cur.UVIndex), 0, MaxUV)
	}

	isDay := DefaultIsDay
	if cur.IsDay != nil {
		isDay = *cur.IsDay
	}
	return EstimateUV(
		readingOr(cur.Visibility, DefaultVisibility),
		readingOr(cur.CloudCover, DefaultCloudCover),
		isDay,
	)
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func floatOr(f *float64, def float64) float64 {
	if f == nil {
		return def
	}
	return *f
}

// readingOr treats unparseable readings the same as missing ones.
func readingOr(r *Reading, def float64) float64 {
	if r == nil {
		return def
	}
	v, err := r.Float()
	if err != nil {
		return def
	}
	return v
}
