package engine

import "time"

// defaultLastDuration pre-fills the duration picker for a fresh profile.
const defaultLastDuration = 2*time.Hour + 30*time.Minute

// defaultStatsRange is the stats screen range for a fresh profile.
const defaultStatsRange = "week"

// defaultUsageWeek is the sample weekly screen-time series shown until
// real usage tracking lands. Hours per day, Sunday through Saturday.
func defaultUsageWeek() []UsagePoint {
	return []UsagePoint{
		{Label: "Sun", Hours: 2.6},
		{Label: "Mon", Hours: 4.2},
		{Label: "Tue", Hours: 3.8},
		{Label: "Wed", Hours: 5.6},
		{Label: "Thu", Hours: 5.1},
		{Label: "Fri", Hours: 3.3},
		{Label: "Sat", Hours: 1.9},
	}
}

// defaultTopApps is the sample per-app usage list, minutes per day.
func defaultTopApps() []AppUsage {
	return []AppUsage{
		{AppID: "tiktok", MinutesPerDay: 240},
		{AppID: "instagram", MinutesPerDay: 180},
		{AppID: "youtube", MinutesPerDay: 120},
		{AppID: "facebook", MinutesPerDay: 60},
	}
}
