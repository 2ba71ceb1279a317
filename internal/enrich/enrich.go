// Package enrich calls the external insight service over HTTP/JSON. The
// service is best-effort: any failure (network, timeout, bad payload,
// exhausted budget) degrades to the canned fallback bundle and a notice.
// Enrichment never changes the computed scores.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// #region types

// Request is the payload sent to the insight service.
type Request struct {
	Answers        []int          `json:"answers"`
	Scores         map[string]int `json:"scores"`
	PrimaryStyle   string         `json:"primary_style"`
	SecondaryStyle string         `json:"secondary_style"`
	Language       string         `json:"language"`
	MicroChallenge map[string]any `json:"micro_challenge,omitempty"`
}

// Insights is the enriched narrative bundle.
type Insights struct {
	WhyThisFits           string   `json:"why_this_fits"`
	DeeperWatchouts       []string `json:"deeper_watchouts"`
	PersonalizedNextSteps string   `json:"personalized_next_steps"`
	MicroChallengeInsight string   `json:"micro_challenge_insight,omitempty"`
	ShareableSummary      string   `json:"shareable_summary"`
}

// Outcome pairs the insights with how they were obtained. Notice is set
// whenever the fallback bundle was used.
type Outcome struct {
	Insights Insights `json:"insights"`
	Fallback bool     `json:"fallback"`
	Notice   string   `json:"notice,omitempty"`
}

// #endregion types

// #region config

// Config holds the client knobs.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// MaxCallsPerSession caps enrichment requests per session.
	MaxCallsPerSession int
}

// DefaultConfig matches the consumed service's expectations.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:            baseURL,
		Timeout:            20 * time.Second,
		MaxCallsPerSession: 3,
	}
}

// #endregion config

// #region client

// httpDoer is the slice of http.Client the client needs; tests inject fakes.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the insight service.
type Client struct {
	config Config
	http   httpDoer
}

// NewClient creates a client with a timeout-bounded http.Client.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

// NewClientWithDoer creates a Client with an injected HTTP implementation.
// Used for testing without a live service.
func NewClientWithDoer(config Config, doer httpDoer) *Client {
	return &Client{config: config, http: doer}
}

// #endregion client

// #region enrich

// Enrich requests insights for a scored result. callCount is the session's
// enrichment counter including this call; exceeding the budget short-circuits
// to the fallback without touching the network. The returned error is always
// nil-equivalent for callers: failures are folded into the Outcome.
func (c *Client) Enrich(ctx context.Context, req Request, callCount int) Outcome {
	if c.config.MaxCallsPerSession > 0 && callCount > c.config.MaxCallsPerSession {
		return fallbackOutcome(fmt.Sprintf("enrichment budget exhausted (%d per session)", c.config.MaxCallsPerSession))
	}
	if c.config.BaseURL == "" {
		return fallbackOutcome("enrichment service not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fallbackOutcome(fmt.Sprintf("encode request: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/enrich-insights", bytes.NewReader(body))
	if err != nil {
		return fallbackOutcome(fmt.Sprintf("build request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fallbackOutcome(fmt.Sprintf("insight service unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallbackOutcome(fmt.Sprintf("insight service status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fallbackOutcome(fmt.Sprintf("read response: %v", err))
	}

	var insights Insights
	if err := json.Unmarshal(data, &insights); err != nil {
		return fallbackOutcome(fmt.Sprintf("invalid insight payload: %v", err))
	}
	if insights.WhyThisFits == "" || insights.ShareableSummary == "" {
		return fallbackOutcome("insight payload incomplete")
	}

	return Outcome{Insights: insights}
}

// #endregion enrich

// #region fallback

// Fallback returns the canned bundle used when the service cannot serve.
func Fallback() Insights {
	return Insights{
		WhyThisFits:           "Your results reflect your current self-awareness patterns.",
		DeeperWatchouts:       []string{"Stay curious about your growth areas", "Practice self-reflection regularly", "Be honest with yourself"},
		PersonalizedNextSteps: "Pick one small action from your results and try it this week.",
		ShareableSummary:      "I learned something new about how I work best.",
	}
}

func fallbackOutcome(notice string) Outcome {
	return Outcome{
		Insights: Fallback(),
		Fallback: true,
		Notice:   notice,
	}
}

// #endregion fallback
