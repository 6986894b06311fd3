package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"
)

// Client implements SelectionProvider against a remote advisor service.
//
// The advisor receives one request per trip day carrying the candidate
// pools still available that day and answers with four named picks plus
// justifications. Responses are validated downstream by the day planner;
// the client only handles transport concerns (timeouts, retry on transient
// failures). The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("advisor base URL is empty")
	}

	return &Client{
		session: &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

type candidatePayload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type selectionPayload struct {
	Day         int                `json:"day"`
	Hotel       string             `json:"hotel"`
	Adults      int                `json:"adults"`
	Children    int                `json:"children"`
	Attractions []candidatePayload `json:"attractions"`
	Restaurants []candidatePayload `json:"restaurants"`
}

type pickResponse struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type selectionResponse struct {
	MorningAttraction   pickResponse `json:"morning_attraction"`
	Lunch               pickResponse `json:"lunch"`
	AfternoonAttraction pickResponse `json:"afternoon_attraction"`
	Dinner              pickResponse `json:"dinner"`
	OverallReason       string       `json:"overall_reason"`
}

// DaySelection asks the advisor for one day's picks.
func (c *Client) DaySelection(ctx context.Context, req ports.SelectionRequest) (_ *domain.DaySelection, err error) {
	defer obs.Time(ctx, "advisor.DaySelection")(&err)

	payload := selectionPayload{
		Day:         req.Day,
		Hotel:       req.Lodging.Name,
		Adults:      req.Party.Adults,
		Children:    req.Party.Children,
		Attractions: toCandidates(req.Attractions),
		Restaurants: toCandidates(req.Restaurants),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("advisor day selection: marshal payload: %w", err)
	}

	resp, err := c.doWithRetry(ctx, c.baseURL+"/day-selections", body)
	if err != nil {
		return nil, fmt.Errorf("advisor day selection: day %d: %w", req.Day, err)
	}
	defer resp.Body.Close()

	// 204 means the advisor declines to suggest; the planner goes greedy.
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisor day selection: day %d: unexpected status %d", req.Day, resp.StatusCode)
	}

	var decoded selectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("advisor day selection: decode response: %w", err)
	}

	return &domain.DaySelection{
		MorningAttraction:   domain.SelectionPick{Name: decoded.MorningAttraction.Name, Reason: decoded.MorningAttraction.Reason},
		Lunch:               domain.SelectionPick{Name: decoded.Lunch.Name, Reason: decoded.Lunch.Reason},
		AfternoonAttraction: domain.SelectionPick{Name: decoded.AfternoonAttraction.Name, Reason: decoded.AfternoonAttraction.Reason},
		Dinner:              domain.SelectionPick{Name: decoded.Dinner.Name, Reason: decoded.Dinner.Reason},
		OverallReason:       decoded.OverallReason,
	}, nil
}

// doWithRetry issues the POST, retrying transient failures (429/5xx and
// network errors) with a short fixed backoff.
func (c *Client) doWithRetry(ctx context.Context, url string, body []byte) (*http.Response, error) {
	const attempts = 3
	backoff := 500 * time.Millisecond

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.session.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

func toCandidates(pool []*domain.POI) []candidatePayload {
	out := make([]candidatePayload, 0, len(pool))
	for _, p := range pool {
		out = append(out, candidatePayload{
			Name:  p.Name,
			Price: p.Price,
			Lat:   p.Coord.Lat,
			Lon:   p.Coord.Lon,
		})
	}
	return out
}
