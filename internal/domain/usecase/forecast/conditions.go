package forecast

import (
	"strings"

	"beach-cleanup/internal/domain/entity"
)

// Verdict labels shown on the suitability banner.
const (
	AdviceNotSuitable = "Not suitable for cleanup"
	AdviceRainGear    = "Bring rain gear"
	AdviceGood        = "Good conditions for cleanup"
	AdvicePerfect     = "Perfect weather for cleanup"
)

type iconRule struct {
	keywords []string
	icon     entity.WeatherIcon
}

// Checked top to bottom, first match wins. "Thundery Showers" must hit storm before rain,
// and "Partly Cloudy" hits the cloudy rule before the partly-cloudy one.
var iconRules = []iconRule{
	{keywords: []string{"thunder", "storm"}, icon: entity.IconStorm},
	{keywords: []string{"rain", "showers"}, icon: entity.IconRain},
	{keywords: []string{"cloudy"}, icon: entity.IconCloud},
	{keywords: []string{"partly cloudy", "fair"}, icon: entity.IconPartialCloud},
	{keywords: []string{"hazy", "haze"}, icon: entity.IconHaze},
	{keywords: []string{"windy"}, icon: entity.IconWind},
}

type adviceRule struct {
	keywords []string
	verdict  entity.SuitabilityVerdict
}

var adviceRules = []adviceRule{
	{
		keywords: []string{"thunder", "heavy rain"},
		verdict:  entity.SuitabilityVerdict{Label: AdviceNotSuitable, Severity: entity.SeverityDanger},
	},
	{
		keywords: []string{"rain", "showers"},
		verdict:  entity.SuitabilityVerdict{Label: AdviceRainGear, Severity: entity.SeverityCaution},
	},
	{
		keywords: []string{"cloudy", "fair"},
		verdict:  entity.SuitabilityVerdict{Label: AdviceGood, Severity: entity.SeverityGood},
	},
}

var defaultAdvice = entity.SuitabilityVerdict{Label: AdvicePerfect, Severity: entity.SeverityGood}

// WeatherIcon maps free-text conditions to a card icon.
func WeatherIcon(conditionText string) entity.WeatherIcon {
	text := strings.ToLower(conditionText)
	for _, rule := range iconRules {
		if containsAny(text, rule.keywords) {
			return rule.icon
		}
	}
	return entity.IconClear
}

// CleanupAdvice maps free-text conditions to a suitability verdict.
func CleanupAdvice(conditionText string) entity.SuitabilityVerdict {
	text := strings.ToLower(conditionText)
	for _, rule := range adviceRules {
		if containsAny(text, rule.keywords) {
			return rule.verdict
		}
	}
	return defaultAdvice
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
