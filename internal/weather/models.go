package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionClear        Condition = "Clear"
	ConditionClouds       Condition = "Clouds"
	ConditionRain         Condition = "Rain"
	ConditionSnow         Condition = "Snow"
	ConditionThunderstorm Condition = "Thunderstorm"
	ConditionMist         Condition = "Mist"
)

// Bounds of the derived indices.
const (
	MaxAQI = 300
	MaxUV  = 11
)

// WeatherRecord is the normalized weather view served to the front end.
// Temperature, humidity and wind speed are in provider units.
type WeatherRecord struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temp"`
	Condition   Condition `json:"condition"`
	AQI         int       `json:"aqi"`
	UV          int       `json:"uv"`
	Description string    `json:"description"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	WindDir     string    `json:"wind_dir"`
	Country     string    `json:"country,omitempty"`

	// Set for coordinate lookups only. Lat/Lon are echoed as received.
	Lat          string   `json:"lat,omitempty"`
	Lon          string   `json:"lon,omitempty"`
	NearbyCities []string `json:"nearby_cities,omitempty"`
}
