package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
)

// MealPlan fetches the plan for a day. date is "YYYY-MM-DD"; empty means
// today (the backend decides).
func (c *Client) MealPlan(ctx context.Context, date string) (*models.MealPlan, error) {
	path := "/meals/plan"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}
	var plan models.MealPlan
	if err := c.do(ctx, http.MethodGet, path, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// LogMeal marks a planned meal as eaten.
func (c *Client) LogMeal(ctx context.Context, mealID string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/meals/%s/log", url.PathEscape(mealID)), nil, nil)
}

func (c *Client) WorkoutPlan(ctx context.Context) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := c.do(ctx, http.MethodGet, "/workouts/plan", nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *Client) CompleteWorkout(ctx context.Context, workoutID string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/workouts/%s/complete", url.PathEscape(workoutID)), nil, nil)
}

func (c *Client) Resources(ctx context.Context, category string) ([]models.Resource, error) {
	path := "/resources"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out []models.Resource
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AskCoach sends one message to the AI coach and returns its reply.
func (c *Client) AskCoach(ctx context.Context, message string) (*models.CoachReply, error) {
	body := map[string]string{"message": message}
	var reply models.CoachReply
	if err := c.do(ctx, http.MethodPost, "/coach/chat", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
