package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seedlinghq/seedling-engine/internal/analytics"
	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/challenge"
	"github.com/seedlinghq/seedling-engine/internal/enrich"
	"github.com/seedlinghq/seedling-engine/internal/gate"
	"github.com/seedlinghq/seedling-engine/internal/insight"
	"github.com/seedlinghq/seedling-engine/internal/profile"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
	"github.com/seedlinghq/seedling-engine/internal/session"
	"github.com/seedlinghq/seedling-engine/internal/share"
	"github.com/seedlinghq/seedling-engine/internal/summary"
)

// #region meta

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"banks":   []string{bank.BankReflection, bank.BankSeedling},
		"locales": profile.Locales(),
	})
}

func (s *Server) handleQuestions(c *gin.Context) {
	bankName := c.DefaultQuery("bank", bank.BankReflection)
	b, ok := bank.ByName(bankName)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown bank: " + bankName})
		return
	}
	locale := c.DefaultQuery("locale", b.DefaultLocale)
	// Questions falls back to the default locale's text for unknown locales;
	// the response reports the locale actually served.
	if !b.HasLocale(locale) {
		locale = b.DefaultLocale
	}

	type questionRow struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		Superhero bool   `json:"superhero,omitempty"`
	}
	qs := b.Questions(locale)
	rows := make([]questionRow, 0, len(qs))
	for _, q := range qs {
		rows = append(rows, questionRow{ID: q.ID, Text: q.Text, Superhero: q.Superhero})
	}

	resp := gin.H{
		"bank":      b.Name,
		"locale":    locale,
		"scale":     gin.H{"lo": b.Scale.Lo, "hi": b.Scale.Hi},
		"questions": rows,
	}
	if b.Name == bank.BankSeedling {
		resp["labels"] = bank.LikertLabels
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleChallenges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"challenges": challenge.Catalog()})
}

// #endregion meta

// #region results

type resultsRequest struct {
	Bank    string          `json:"bank"`
	Locale  string          `json:"locale"`
	Answers json.RawMessage `json:"answers"`
}

func (s *Server) handleResults(c *gin.Context) {
	var req resultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	b, ok := bank.ByName(req.Bank)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown bank: " + req.Bank})
		return
	}
	answers, err := bank.ParseAnswers(b, req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid answers: " + err.Error()})
		return
	}
	locale := req.Locale
	if locale == "" {
		locale = b.DefaultLocale
	}

	decision := s.gate.Evaluate(b, answers, locale)
	if decision.Vetoed {
		c.JSON(http.StatusUnprocessableEntity, rejectionBody(decision))
		return
	}

	res := scoring.Compute(b, answers)
	payload, _ := resultPayload(b, locale, answers, res)
	payload["gate"] = gin.H{"action": decision.Action, "soft_score": decision.SoftScore}
	c.JSON(http.StatusOK, payload)
}

// rejectionBody shapes a vetoed gate decision for the wire.
func rejectionBody(d gate.Decision) gin.H {
	vetoes := make([]gin.H, 0, len(d.VetoSignals))
	for _, v := range d.VetoSignals {
		vetoes = append(vetoes, gin.H{"type": string(v.Type), "reason": v.Reason})
	}
	return gin.H{
		"error":  d.Reason,
		"action": d.Action,
		"vetoes": vetoes,
	}
}

// resultPayload assembles the bank-specific result body. The second return is
// the seedling copy text, empty for the reflection bank.
func resultPayload(b *bank.Bank, locale string, answers bank.AnswerSet, res scoring.Result) (gin.H, string) {
	payload := gin.H{
		"bank":   b.Name,
		"locale": locale,
		"result": res,
	}
	if token, err := share.Encode(b.Name, locale, answers); err == nil {
		payload["share_token"] = token
	}

	if b.Name == bank.BankSeedling {
		dims := res.Dims()
		primary, secondary := scoring.SelectStyles(dims)
		sp := profile.Style(primary)
		copyText := summary.CopyText(sp, dims)
		payload["style"] = primary
		payload["secondary_style"] = secondary
		payload["style_profile"] = sp
		payload["secondary_style_profile"] = profile.Style(secondary)
		payload["meters"] = insight.Meters(res)
		payload["learning_mode"] = insight.LearningMode(dims)
		payload["copy_text"] = copyText
		return payload, copyText
	}

	payload["profile"] = profile.Lookup(res.Primary, locale)
	payload["secondary_profile"] = profile.Lookup(res.Secondary, locale)
	return payload, ""
}

// #endregion results

// #region share

func (s *Server) handleShare(c *gin.Context) {
	bankName, locale, answers, err := share.Decode(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, _ := bank.ByName(bankName)
	res := scoring.Compute(b, answers)
	payload, _ := resultPayload(b, locale, answers, res)
	c.JSON(http.StatusOK, payload)
}

// #endregion share

// #region sessions

type createSessionRequest struct {
	Bank   string `json:"bank"`
	Locale string `json:"locale"`
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	b, ok := bank.ByName(req.Bank)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown bank: " + req.Bank})
		return
	}
	locale := req.Locale
	if locale == "" {
		locale = b.DefaultLocale
	}
	if !b.HasLocale(locale) && locale != b.DefaultLocale {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown locale: " + locale})
		return
	}

	sess := session.New(b.Name, locale, time.Now())
	if err := s.store.Save(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess})
}

func (s *Server) handleGetSession(c *gin.Context) {
	sess, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

type answerRequest struct {
	QuestionID string `json:"question_id"`
	Value      int    `json:"value"`
	Advance    bool   `json:"advance"`
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	sess, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	b, _ := bank.ByName(sess.Bank)
	if _, ok := b.Question(req.QuestionID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown question: " + req.QuestionID})
		return
	}
	if !b.Scale.Contains(req.Value) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value outside scale"})
		return
	}

	now := time.Now()
	sess = sess.Answer(req.QuestionID, req.Value, now)
	if req.Advance {
		sess = sess.Advance(len(b.Questions(b.DefaultLocale)), now)
	}
	if err := s.store.Save(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

type localeRequest struct {
	Locale string `json:"locale"`
}

func (s *Server) handleSetLocale(c *gin.Context) {
	var req localeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	sess, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	b, _ := bank.ByName(sess.Bank)
	if !b.HasLocale(req.Locale) && req.Locale != b.DefaultLocale {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown locale: " + req.Locale})
		return
	}

	sess = sess.WithLocale(req.Locale, time.Now())
	if err := s.store.Save(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

func (s *Server) handleComplete(c *gin.Context) {
	sess, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	b, _ := bank.ByName(sess.Bank)

	decision := s.gate.Evaluate(b, sess.Answers, sess.Locale)
	if decision.Vetoed {
		c.JSON(http.StatusUnprocessableEntity, rejectionBody(decision))
		return
	}

	res := scoring.Compute(b, sess.Answers)
	payload, copyText := resultPayload(b, sess.Locale, sess.Answers, res)
	if err := s.store.SaveResult(sess.ID, res, copyText); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	payload["session_id"] = sess.ID
	payload["gate"] = gin.H{"action": decision.Action, "soft_score": decision.SoftScore}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	if err := s.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// #endregion sessions

// #region enrich

type enrichRequest struct {
	SessionID      string         `json:"session_id"`
	Answers        []int          `json:"answers"`
	Scores         map[string]int `json:"scores"`
	PrimaryStyle   string         `json:"primary_style"`
	SecondaryStyle string         `json:"secondary_style"`
	Language       string         `json:"language"`
	MicroChallenge map[string]any `json:"micro_challenge,omitempty"`
}

// handleEnrich proxies to the insight service. It always answers 200: any
// failure degrades to the fallback bundle, never to an error status. The
// per-session budget lives in the store, so a request without a session id
// has no counter to charge and is served the fallback directly.
func (s *Server) handleEnrich(c *gin.Context) {
	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if req.SessionID == "" {
		c.JSON(http.StatusOK, enrich.Outcome{
			Insights: enrich.Fallback(),
			Fallback: true,
			Notice:   "session_id required for enriched insights",
		})
		return
	}
	callCount, err := s.store.IncrementEnrichCalls(req.SessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	outcome := s.enricher.Enrich(c.Request.Context(), enrich.Request{
		Answers:        req.Answers,
		Scores:         req.Scores,
		PrimaryStyle:   req.PrimaryStyle,
		SecondaryStyle: req.SecondaryStyle,
		Language:       req.Language,
		MicroChallenge: req.MicroChallenge,
	}, callCount)
	c.JSON(http.StatusOK, outcome)
}

// #endregion enrich

// #region analytics

type analyticsRecordRequest struct {
	PrimaryStyle      string `json:"primary_style"`
	ChallengeSelected string `json:"challenge_selected"`
	Locale            string `json:"locale"`
}

func (s *Server) handleAnalyticsRecord(c *gin.Context) {
	var req analyticsRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "skipped"})
		return
	}
	if s.recorder == nil {
		c.JSON(http.StatusOK, gin.H{"status": "skipped"})
		return
	}
	err := s.recorder.Record(analytics.Event{
		PrimaryStyle:      req.PrimaryStyle,
		ChallengeSelected: req.ChallengeSelected,
		Locale:            req.Locale,
	})
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "skipped"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

func (s *Server) handleAnalyticsStyles(c *gin.Context) {
	if s.recorder == nil {
		c.JSON(http.StatusOK, gin.H{"styles": []analytics.Count{}, "locales": []analytics.Count{}})
		return
	}
	styles, err := s.recorder.StyleDistribution()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	locales, err := s.recorder.LocaleDistribution()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"styles": styles, "locales": locales})
}

// #endregion analytics
