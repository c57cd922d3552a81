package models

import "time"

// TrackerEntry is one logged measurement (weight, water, sleep, steps...).
type TrackerEntry struct {
	ID       string    `json:"id"`
	Metric   string    `json:"metric"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	LoggedAt time.Time `json:"loggedAt"`
}

// AnalyticsSummary aggregates progress over a period.
type AnalyticsSummary struct {
	Period            string  `json:"period"`
	WorkoutsCompleted int     `json:"workoutsCompleted"`
	AvgCalories       float64 `json:"avgCalories"`
	AvgSleepHours     float64 `json:"avgSleepHours"`
	WeightChangeKG    float64 `json:"weightChange"`
	StreakDays        int     `json:"streakDays"`
}

// Device is a linked fitness wearable or scale.
type Device struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Provider   string     `json:"provider"`
	Connected  bool       `json:"connected"`
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
}

// Resource is an article or video from the education library.
type Resource struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// CoachReply is one answer from the AI coach.
type CoachReply struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
