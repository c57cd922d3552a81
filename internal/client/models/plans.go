package models

// Meal is a single entry in a daily meal plan.
type Meal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Slot     string  `json:"slot"` // breakfast, lunch, dinner, snack
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Eaten    bool    `json:"eaten"`
}

// MealPlan is the plan the backend generated for one day.
type MealPlan struct {
	Date           string  `json:"date"`
	TargetCalories float64 `json:"targetCalories"`
	Meals          []Meal  `json:"meals"`
}

// Exercise is one movement inside a workout.
type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
	RestSecs int    `json:"restSeconds"`
}

// Workout is a scheduled training session.
type Workout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Day         string     `json:"day"`
	DurationMin int        `json:"durationMinutes"`
	Difficulty  string     `json:"difficulty"`
	Exercises   []Exercise `json:"exercises"`
	Completed   bool       `json:"completed"`
}

// WorkoutPlan is the weekly training program.
type WorkoutPlan struct {
	Week     string    `json:"week"`
	Goal     string    `json:"goal"`
	Workouts []Workout `json:"workouts"`
}
