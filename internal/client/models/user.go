// Package models defines the account and program types exchanged with the
// FitLife backend. JSON tags mirror the backend's camelCase payloads.
package models

// User is the authenticated principal. OnboardingCompleted is authoritative:
// the backend sets it once onboarding data has been saved, and routing treats
// it as the single source of truth.
type User struct {
	ID                  string                   `json:"id"`
	FullName            string                   `json:"fullName"`
	Email               string                   `json:"email"`
	Phone               string                   `json:"phone"`
	EmailVerified       bool                     `json:"emailVerified"`
	OnboardingCompleted bool                     `json:"onboardingCompleted"`
	Onboarding          *OnboardingProfile       `json:"onboardingData,omitempty"`
	Notifications       *NotificationPreferences `json:"notificationPreferences,omitempty"`
}

// OnboardingProfile is the one-time health questionnaire. Validate tags are
// enforced client-side before the payload is sent.
type OnboardingProfile struct {
	Age                 int      `json:"age" validate:"required,gt=0,lt=120"`
	Gender              string   `json:"gender" validate:"required,oneof=male female other"`
	HeightCM            float64  `json:"height" validate:"required,gt=0"`
	WeightKG            float64  `json:"weight" validate:"required,gt=0"`
	ActivityLevel       string   `json:"activityLevel" validate:"required,oneof=sedentary light moderate active very_active"`
	Goal                string   `json:"goal" validate:"required,oneof=lose_weight maintain gain_muscle improve_fitness"`
	MedicalConditions   []string `json:"medicalConditions,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	SleepHours          float64  `json:"sleepHours,omitempty" validate:"omitempty,gte=0,lte=24"`
	StressLevel         string   `json:"stressLevel,omitempty" validate:"omitempty,oneof=low medium high"`
	WaterIntakeL        float64  `json:"waterIntake,omitempty" validate:"omitempty,gte=0"`
	Notes               string   `json:"notes,omitempty"`
}

// NotificationPreferences holds six independent channels.
type NotificationPreferences struct {
	WorkoutReminders bool `json:"workoutReminders"`
	MealReminders    bool `json:"mealReminders"`
	ProgressReports  bool `json:"progressReports"`
	CoachMessages    bool `json:"coachMessages"`
	DeviceAlerts     bool `json:"deviceAlerts"`
	EmailDigest      bool `json:"emailDigest"`
}
