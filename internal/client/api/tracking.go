package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/KingTechFoundation/fitlife-cli/internal/client/models"
)

type logMetricRequest struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

func (c *Client) LogMetric(ctx context.Context, metric string, value float64, unit string) (*models.TrackerEntry, error) {
	var entry models.TrackerEntry
	body := logMetricRequest{Metric: metric, Value: value, Unit: unit}
	if err := c.do(ctx, http.MethodPost, "/tracker/entries", body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) TrackerEntries(ctx context.Context, metric string, limit int) ([]models.TrackerEntry, error) {
	q := url.Values{}
	if metric != "" {
		q.Set("metric", metric)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	path := "/tracker/entries"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var out []models.TrackerEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyticsSummary returns progress aggregates for "week", "month" or "year".
func (c *Client) AnalyticsSummary(ctx context.Context, period string) (*models.AnalyticsSummary, error) {
	var sum models.AnalyticsSummary
	path := "/analytics/summary"
	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (c *Client) Devices(ctx context.Context) ([]models.Device, error) {
	var out []models.Device
	if err := c.do(ctx, http.MethodGet, "/devices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ConnectDevice(ctx context.Context, provider string) (*models.Device, error) {
	body := map[string]string{"provider": provider}
	var dev models.Device
	if err := c.do(ctx, http.MethodPost, "/devices", body, &dev); err != nil {
		return nil, err
	}
	return &dev, nil
}
