// Package fitbit fetches daily tracker metrics from the Fitbit web API.
// OAuth token acquisition and refresh live outside this tool; the client
// takes a ready bearer token.
package fitbit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/julianstephens/healthdash/internal/models"
)

const defaultBaseURL = "https://api.fitbit.com"

type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	AccessToken string
}

type activityResponse struct {
	Summary struct {
		Steps               int  `json:"steps"`
		CaloriesOut         int  `json:"caloriesOut"`
		RestingHeartRate    *int `json:"restingHeartRate"`
		FairlyActiveMinutes int  `json:"fairlyActiveMinutes"`
		VeryActiveMinutes   int  `json:"veryActiveMinutes"`
	} `json:"summary"`
}

type sleepResponse struct {
	Summary struct {
		TotalMinutesAsleep int `json:"totalMinutesAsleep"`
	} `json:"summary"`
}

type weightResponse struct {
	Weight []struct {
		Weight float64 `json:"weight"`
	} `json:"weight"`
}

// Fetch pulls the activity summary, sleep summary, and body-weight log for
// one date and folds them into a FitnessMetrics. Weight and resting heart
// rate stay absent when the tracker has no reading for the day.
func (c *Client) Fetch(ctx context.Context, date string) (models.FitnessMetrics, error) {
	var activity activityResponse
	if err := c.get(ctx, fmt.Sprintf("/1/user/-/activities/date/%s.json", date), &activity); err != nil {
		return models.FitnessMetrics{}, fmt.Errorf("fetch activity summary: %w", err)
	}

	var sleep sleepResponse
	if err := c.get(ctx, fmt.Sprintf("/1.2/user/-/sleep/date/%s.json", date), &sleep); err != nil {
		return models.FitnessMetrics{}, fmt.Errorf("fetch sleep summary: %w", err)
	}

	var weightLog weightResponse
	if err := c.get(ctx, fmt.Sprintf("/1/user/-/body/log/weight/date/%s.json", date), &weightLog); err != nil {
		return models.FitnessMetrics{}, fmt.Errorf("fetch weight log: %w", err)
	}

	metrics := models.FitnessMetrics{
		Steps:          activity.Summary.Steps,
		CaloriesBurned: activity.Summary.CaloriesOut,
		RestingHR:      activity.Summary.RestingHeartRate,
		ActiveMinutes:  activity.Summary.FairlyActiveMinutes + activity.Summary.VeryActiveMinutes,
		SleepMinutes:   sleep.Summary.TotalMinutesAsleep,
	}
	if len(weightLog.Weight) > 0 {
		// Fitbit reports weight in the account's display unit.
		w := weightLog.Weight[0].Weight
		metrics.Weight = &w
	}

	return metrics, nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return fmt.Errorf("create fitbit request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute fitbit request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read fitbit response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fitbit request for %s failed with status %d", path, resp.StatusCode)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode fitbit response: %w", err)
	}

	return nil
}
