package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/seedlinghq/seedling-engine/internal/analytics"
	"github.com/seedlinghq/seedling-engine/internal/enrich"
	"github.com/seedlinghq/seedling-engine/internal/session"
	"github.com/seedlinghq/seedling-engine/internal/share"
)

// #region helpers

func newTestServer(t *testing.T, enrichURL string) *Server {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	recorder, err := analytics.NewRecorder(store.DB())
	if err != nil {
		t.Fatalf("recorder: %v", err)
	}

	client := enrich.NewClient(enrich.DefaultConfig(enrichURL))
	s, err := NewServer(DefaultConfig(), store, recorder, client)
	if err != nil {
		t.Fatalf("server: %v", err)
	}
	return s
}

func do(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func neutralSeedlingAnswers() map[string]int {
	answers := make(map[string]int, 30)
	for i := 1; i <= 30; i++ {
		answers[fmt.Sprintf("q%d", i)] = 3
	}
	return answers
}

// #endregion helpers

// #region meta-tests

func TestHealth(t *testing.T) {
	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
}

func TestQuestionsDefaultsToReflection(t *testing.T) {
	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodGet, "/api/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["bank"] != "reflection" || body["locale"] != "en" {
		t.Errorf("bank/locale = %v/%v", body["bank"], body["locale"])
	}
	qs := body["questions"].([]any)
	if len(qs) != 12 {
		t.Errorf("question count = %d", len(qs))
	}
	if _, ok := body["labels"]; ok {
		t.Error("reflection bank should not carry likert labels")
	}
}

func TestQuestionsSeedlingCarriesLabels(t *testing.T) {
	s := newTestServer(t, "")
	_, body := do(t, s, http.MethodGet, "/api/questions?bank=seedling", nil)
	qs := body["questions"].([]any)
	if len(qs) != 30 {
		t.Errorf("question count = %d", len(qs))
	}
	labels := body["labels"].([]any)
	if len(labels) != 5 {
		t.Errorf("label count = %d", len(labels))
	}
}

func TestQuestionsUnknownLocaleReportsServedLocale(t *testing.T) {
	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodGet, "/api/questions?bank=reflection&locale=fr", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["locale"] != "en" {
		t.Errorf("locale = %v, want the en fallback actually served", body["locale"])
	}

	_, body = do(t, s, http.MethodGet, "/api/questions?bank=reflection&locale=te", nil)
	if body["locale"] != "te" {
		t.Errorf("locale = %v, want te (known locale is served as-is)", body["locale"])
	}
}

func TestQuestionsUnknownBank(t *testing.T) {
	s := newTestServer(t, "")
	w, _ := do(t, s, http.MethodGet, "/api/questions?bank=astrology", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

func TestChallengesCatalog(t *testing.T) {
	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodGet, "/api/challenges", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(body["challenges"].([]any)) != 3 {
		t.Errorf("challenges = %v", body["challenges"])
	}
}

// #endregion meta-tests

// #region result-tests

func TestResultsSeedlingNeutral(t *testing.T) {
	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodPost, "/api/results", map[string]any{
		"bank":    "seedling",
		"answers": neutralSeedlingAnswers(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %v", w.Code, body)
	}
	if body["style"] != "Connector" {
		t.Errorf("style = %v", body["style"])
	}
	if body["secondary_style"] != "Executive" {
		t.Errorf("secondary_style = %v", body["secondary_style"])
	}
	if _, ok := body["copy_text"].(string); !ok {
		t.Error("copy_text missing")
	}
	if _, ok := body["share_token"].(string); !ok {
		t.Error("share_token missing")
	}
	lm := body["learning_mode"].(string)
	if !strings.Contains(lm, "balanced mix") {
		t.Errorf("learning_mode = %q", lm)
	}
}

func TestResultsReflectionUsesProfiles(t *testing.T) {
	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodPost, "/api/results", map[string]any{
		"bank":    "reflection",
		"locale":  "hi",
		"answers": []any{3, 3, 3, 3, 3, 0, 3, 3, 0, 3},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %v", w.Code, body)
	}
	p := body["profile"].(map[string]any)
	if p["title"] != "योजनाकार" {
		t.Errorf("localized title = %v", p["title"])
	}
	if _, ok := body["style"]; ok {
		t.Error("reflection results should not carry a seedling style")
	}
}

func TestResultsOutOfRangeRejected(t *testing.T) {
	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodPost, "/api/results", map[string]any{
		"bank":    "seedling",
		"answers": map[string]int{"q1": 7},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	vetoes := body["vetoes"].([]any)
	if len(vetoes) == 0 {
		t.Fatal("expected veto details")
	}
	v := vetoes[0].(map[string]any)
	if v["type"] != "out_of_range" {
		t.Errorf("veto type = %v", v["type"])
	}
}

func TestResultsEmptyAnswersRejected(t *testing.T) {
	s := newTestServer(t, "")
	w, _ := do(t, s, http.MethodPost, "/api/results", map[string]any{
		"bank":    "reflection",
		"answers": map[string]int{},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", w.Code)
	}
}

func TestShareRoundTrip(t *testing.T) {
	s := newTestServer(t, "")
	_, body := do(t, s, http.MethodPost, "/api/results", map[string]any{
		"bank":    "seedling",
		"answers": neutralSeedlingAnswers(),
	})
	token := body["share_token"].(string)

	w, reopened := do(t, s, http.MethodGet, "/api/share/"+token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if reopened["style"] != body["style"] {
		t.Errorf("reopened style = %v, want %v", reopened["style"], body["style"])
	}
}

func TestShareEmptyTokenServesBalancedProfile(t *testing.T) {
	// A token can legitimately carry zero answers; the profile must land on
	// the balanced fallback, not the first declared category.
	token, err := share.Encode("reflection", "en", nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodGet, "/api/share/"+token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	p := body["profile"].(map[string]any)
	if p["key"] != "balanced" {
		t.Errorf("profile key = %v, want balanced", p["key"])
	}
}

func TestShareRejectsGarbage(t *testing.T) {
	s := newTestServer(t, "")
	w, _ := do(t, s, http.MethodGet, "/api/share/not-a-token", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

// #endregion result-tests

// #region session-tests

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t, "")

	w, body := do(t, s, http.MethodPost, "/api/sessions", map[string]any{"bank": "seedling"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %v", w.Code, body)
	}
	sess := body["session"].(map[string]any)
	id := sess["id"].(string)
	if sess["locale"] != "en" {
		t.Errorf("default locale = %v", sess["locale"])
	}

	w, body = do(t, s, http.MethodPost, "/api/sessions/"+id+"/answers", map[string]any{
		"question_id": "q21", "value": 5, "advance": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("answer status = %d body = %v", w.Code, body)
	}
	sess = body["session"].(map[string]any)
	if sess["index"].(float64) != 1 {
		t.Errorf("index after advance = %v", sess["index"])
	}

	w, body = do(t, s, http.MethodPost, "/api/sessions/"+id+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d body = %v", w.Code, body)
	}
	if body["session_id"] != id {
		t.Errorf("session_id = %v", body["session_id"])
	}
	// q21 is pure analytical weight, so a lone 5 makes Analyst the style.
	if body["style"] != "Analyst" {
		t.Errorf("style = %v", body["style"])
	}

	w, _ = do(t, s, http.MethodDelete, "/api/sessions/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w, _ = do(t, s, http.MethodGet, "/api/sessions/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d", w.Code)
	}
}

func TestSessionAnswerValidation(t *testing.T) {
	s := newTestServer(t, "")
	_, body := do(t, s, http.MethodPost, "/api/sessions", map[string]any{"bank": "reflection"})
	id := body["session"].(map[string]any)["id"].(string)

	w, _ := do(t, s, http.MethodPost, "/api/sessions/"+id+"/answers", map[string]any{
		"question_id": "q99", "value": 2,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown question status = %d", w.Code)
	}
	w, _ = do(t, s, http.MethodPost, "/api/sessions/"+id+"/answers", map[string]any{
		"question_id": "q1", "value": 9,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("out of range status = %d", w.Code)
	}
}

func TestSessionLocaleSwitch(t *testing.T) {
	s := newTestServer(t, "")
	_, body := do(t, s, http.MethodPost, "/api/sessions", map[string]any{"bank": "reflection", "locale": "en"})
	id := body["session"].(map[string]any)["id"].(string)

	w, body := do(t, s, http.MethodPost, "/api/sessions/"+id+"/locale", map[string]any{"locale": "te"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %v", w.Code, body)
	}
	if body["session"].(map[string]any)["locale"] != "te" {
		t.Errorf("locale = %v", body["session"].(map[string]any)["locale"])
	}

	w, _ = do(t, s, http.MethodPost, "/api/sessions/"+id+"/locale", map[string]any{"locale": "xx"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown locale status = %d", w.Code)
	}
}

func TestCompleteEmptySessionRejected(t *testing.T) {
	s := newTestServer(t, "")
	_, body := do(t, s, http.MethodPost, "/api/sessions", map[string]any{"bank": "seedling"})
	id := body["session"].(map[string]any)["id"].(string)

	w, _ := do(t, s, http.MethodPost, "/api/sessions/"+id+"/complete", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", w.Code)
	}
}

// #endregion session-tests

// #region enrich-tests

func TestEnrichUnconfiguredFallsBack(t *testing.T) {
	s := newTestServer(t, "")
	w, body := do(t, s, http.MethodPost, "/api/enrich-insights", map[string]any{
		"primary_style": "Explorer", "language": "en",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["fallback"] != true {
		t.Errorf("fallback = %v", body["fallback"])
	}
	if n, ok := body["notice"].(string); !ok || n == "" {
		t.Error("expected a notice explaining the fallback")
	}
}

func TestEnrichBudgetPerSession(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(enrich.Insights{
			WhyThisFits:      "because",
			ShareableSummary: "summary",
		})
	}))
	defer upstream.Close()

	s := newTestServer(t, upstream.URL)
	_, body := do(t, s, http.MethodPost, "/api/sessions", map[string]any{"bank": "seedling"})
	id := body["session"].(map[string]any)["id"].(string)

	for i := 1; i <= 3; i++ {
		_, body = do(t, s, http.MethodPost, "/api/enrich-insights", map[string]any{
			"session_id": id, "primary_style": "Explorer", "language": "en",
		})
		if body["fallback"] == true {
			t.Fatalf("call %d should hit the service, got fallback: %v", i, body["notice"])
		}
	}

	_, body = do(t, s, http.MethodPost, "/api/enrich-insights", map[string]any{
		"session_id": id, "primary_style": "Explorer", "language": "en",
	})
	if body["fallback"] != true {
		t.Error("fourth call should fall back on exhausted budget")
	}
}

func TestEnrichWithoutSessionNeverReachesService(t *testing.T) {
	var hits int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		json.NewEncoder(w).Encode(enrich.Insights{
			WhyThisFits:      "because",
			ShareableSummary: "summary",
		})
	}))
	defer upstream.Close()

	s := newTestServer(t, upstream.URL)
	for i := 0; i < 5; i++ {
		w, body := do(t, s, http.MethodPost, "/api/enrich-insights", map[string]any{
			"primary_style": "Explorer", "language": "en",
		})
		if w.Code != http.StatusOK || body["fallback"] != true {
			t.Fatalf("call %d: %d %v", i, w.Code, body)
		}
	}
	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Errorf("service was reached %d times without a session", n)
	}
}

func TestEnrichUnknownSession(t *testing.T) {
	s := newTestServer(t, "")
	w, _ := do(t, s, http.MethodPost, "/api/enrich-insights", map[string]any{
		"session_id": "nope", "primary_style": "Explorer",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

// #endregion enrich-tests

// #region analytics-tests

func TestAnalyticsRecordAndProject(t *testing.T) {
	s := newTestServer(t, "")

	w, body := do(t, s, http.MethodPost, "/api/analytics/record", map[string]any{
		"primary_style": "Explorer", "challenge_selected": "focus", "locale": "en",
	})
	if w.Code != http.StatusOK || body["status"] != "recorded" {
		t.Fatalf("record = %d %v", w.Code, body)
	}
	do(t, s, http.MethodPost, "/api/analytics/record", map[string]any{
		"primary_style": "Explorer", "locale": "hi",
	})

	w, body = do(t, s, http.MethodGet, "/api/analytics/styles", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("styles status = %d", w.Code)
	}
	styles := body["styles"].([]any)
	if len(styles) != 1 {
		t.Fatalf("styles = %v", styles)
	}
	top := styles[0].(map[string]any)
	if top["key"] != "Explorer" || top["count"].(float64) != 2 {
		t.Errorf("top bucket = %v", top)
	}
}

func TestAnalyticsRecordSkipsBadBody(t *testing.T) {
	s := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/record", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusOK || body["status"] != "skipped" {
		t.Errorf("response = %d %v", w.Code, body)
	}
}

// #endregion analytics-tests
