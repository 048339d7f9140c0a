package weather

import (
	"strings"

	"github.com/i474232898/weather-dashboard/internal/common"
)

// conditionKeywords is checked in order; the first group with a keyword
// contained in the description wins.
var conditionKeywords = []struct {
	condition Condition
	keywords  []string
}{
	{ConditionClear, []string{"clear", "sunny"}},
	{ConditionClouds, []string{"cloud", "overcast"}},
	{ConditionRain, []string{"rain", "drizzle", "shower"}},
	{ConditionSnow, []string{"snow", "sleet", "blizzard"}},
	{ConditionThunderstorm, []string{"thunder", "lightning", "storm"}},
	{ConditionMist, []string{"fog", "mist", "haze"}},
}

// ClassifyCondition maps a free-text provider description to a Condition.
// Descriptions matching no keyword are reported as Clear.
func ClassifyCondition(description string) Condition {
	text := strings.ToLower(description)
	for _, group := range conditionKeywords {
		if common.HasAny(text, group.keywords...) {
			return group.condition
		}
	}
	return ConditionClear
}
