package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCondition(t *testing.T) {
	cases := []struct {
		description string
		want        Condition
	}{
		{"Sunny and clear", ConditionClear},
		{"Partly cloudy", ConditionClouds},
		{"Overcast", ConditionClouds},
		{"Light Rain", ConditionRain},
		{"Patchy light drizzle", ConditionRain},
		{"Moderate or heavy rain shower", ConditionRain},
		{"Heavy snow", ConditionSnow},
		{"Light sleet", ConditionSnow},
		{"Blizzard", ConditionSnow},
		{"Thundery outbreaks possible", ConditionThunderstorm},
		{"Lightning", ConditionThunderstorm},
		{"Fog", ConditionMist},
		{"Mist", ConditionMist},
		{"Haze", ConditionMist},
		{"", ConditionClear},
		{"Unknown", ConditionClear},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyCondition(tc.description), tc.description)
	}
}

func TestClassifyConditionRainIsCaseInsensitive(t *testing.T) {
	for _, d := range []string{"RAIN", "Drizzle", "passing SHOWERS", "freezing rain"} {
		assert.Equal(t, ConditionRain, ClassifyCondition(d), d)
	}
}

func TestClassifyConditionFirstGroupWins(t *testing.T) {
	// "Thunderstorm with rain" mentions rain before the thunder group is tried.
	assert.Equal(t, ConditionRain, ClassifyCondition("Thunderstorm with rain"))
	assert.Equal(t, ConditionClouds, ClassifyCondition("Cloudy with snow"))
	assert.Equal(t, ConditionThunderstorm, ClassifyCondition("Storm"))
}
