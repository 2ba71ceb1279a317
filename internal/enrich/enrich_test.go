package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testRequest() Request {
	return Request{
		Answers:        []int{4, 3, 5},
		Scores:         map[string]int{"exec": 80, "anal": 60},
		PrimaryStyle:   "Executive",
		SecondaryStyle: "Analyst",
		Language:       "en",
	}
}

func TestEnrichSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/enrich-insights" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.PrimaryStyle != "Executive" {
			t.Errorf("primary = %s", req.PrimaryStyle)
		}
		json.NewEncoder(w).Encode(Insights{
			WhyThisFits:           "You plan before you act.",
			DeeperWatchouts:       []string{"a", "b", "c"},
			PersonalizedNextSteps: "Plan one thing.",
			ShareableSummary:      "I learned I lead with structure.",
		})
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	out := c.Enrich(context.Background(), testRequest(), 1)

	if out.Fallback {
		t.Fatalf("unexpected fallback: %s", out.Notice)
	}
	if out.Insights.WhyThisFits != "You plan before you act." {
		t.Errorf("insights = %+v", out.Insights)
	}
}

func TestEnrichBudgetExhausted(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(DefaultConfig(srv.URL))
	out := c.Enrich(context.Background(), testRequest(), 4)

	if !out.Fallback {
		t.Fatal("expected fallback past budget")
	}
	if called {
		t.Fatal("budget breach must not reach the network")
	}
}

func TestEnrichServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out := NewClient(DefaultConfig(srv.URL)).Enrich(context.Background(), testRequest(), 1)
	if !out.Fallback || out.Notice == "" {
		t.Fatalf("expected fallback with notice, got %+v", out)
	}
	if out.Insights.WhyThisFits == "" {
		t.Fatal("fallback bundle must be populated")
	}
}

func TestEnrichBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("here are your insights!"))
	}))
	defer srv.Close()

	out := NewClient(DefaultConfig(srv.URL)).Enrich(context.Background(), testRequest(), 1)
	if !out.Fallback {
		t.Fatal("expected fallback on invalid payload")
	}
}

func TestEnrichIncompletePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Insights{WhyThisFits: "partial"})
	}))
	defer srv.Close()

	out := NewClient(DefaultConfig(srv.URL)).Enrich(context.Background(), testRequest(), 1)
	if !out.Fallback {
		t.Fatal("expected fallback on incomplete payload")
	}
}

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestEnrichNetworkFailure(t *testing.T) {
	c := NewClientWithDoer(DefaultConfig("http://insight.internal"), failingDoer{})
	out := c.Enrich(context.Background(), testRequest(), 1)
	if !out.Fallback {
		t.Fatal("expected fallback on network failure")
	}
}

func TestEnrichTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := DefaultConfig(srv.URL)
	cfg.Timeout = 10 * time.Millisecond
	out := NewClient(cfg).Enrich(context.Background(), testRequest(), 1)
	if !out.Fallback {
		t.Fatal("expected fallback on timeout")
	}
}

func TestEnrichUnconfigured(t *testing.T) {
	out := NewClient(DefaultConfig("")).Enrich(context.Background(), testRequest(), 1)
	if !out.Fallback {
		t.Fatal("expected fallback when unconfigured")
	}
}
