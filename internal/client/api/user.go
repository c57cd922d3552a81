package api

import (
	"context"
	"net/http"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
)

// ProfileUpdate carries the editable account fields.
type ProfileUpdate struct {
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// SaveOnboarding submits the health questionnaire. The backend flips
// onboardingCompleted and returns the refreshed user.
func (c *Client) SaveOnboarding(ctx context.Context, p *models.OnboardingProfile) (*models.User, error) {
	var payload struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/onboarding", p, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var payload struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/user/profile", upd, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (c *Client) NotificationPreferences(ctx context.Context) (*models.NotificationPreferences, error) {
	var prefs models.NotificationPreferences
	if err := c.do(ctx, http.MethodGet, "/notifications/preferences", nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (c *Client) UpdateNotificationPreferences(ctx context.Context, prefs *models.NotificationPreferences) (*models.NotificationPreferences, error) {
	var updated models.NotificationPreferences
	if err := c.do(ctx, http.MethodPut, "/notifications/preferences", prefs, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
