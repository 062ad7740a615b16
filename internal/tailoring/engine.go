package tailoring

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/providers/llm"
)

const (
	// Upper bound on one model round trip; the transport has its own timeout
	// beneath this.
	requestTimeout = 30 * time.Second

	defaultScore = 75
)

// Engine runs the AI tailoring path and reconciles the model's free-text
// reply into a TailoringResult. Every failure mode degrades to BuildFallback;
// Tailor never returns an error.
type Engine struct {
	provider llm.Provider // nil when no credential is configured
	log      *logrus.Logger
}

func NewEngine(provider llm.Provider, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
	}
	return &Engine{provider: provider, log: log}
}

func (e *Engine) Tailor(ctx context.Context, resume *models.ResumeContent, job *models.JobDescription) *models.TailoringResult {
	start := time.Now()

	if e.provider == nil {
		return e.degrade(resume, job, "api key not configured", start)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	prompt := BuildPrompt(resume, job)
	completion, err := e.provider.Complete(ctx, prompt)
	if err != nil {
		e.log.WithError(err).Warn("llm request failed, using fallback")
		return e.degrade(resume, job, "llm request failed", start)
	}

	result, reason := e.reconcile(completion.Text, resume)
	if result == nil {
		e.log.WithField("reason", reason).Warn("llm response unusable, using fallback")
		return e.degrade(resume, job, reason, start)
	}

	result.Metadata = models.TailoringMetadata{
		Source:       models.SourceAI,
		Model:        e.provider.Model(),
		ProcessingMS: time.Since(start).Milliseconds(),
		TokensUsed:   completion.TokensUsed,
	}
	return result
}

// reconcile validates and normalizes the raw completion. A nil result means
// the reply was unusable; the second return value says why.
func (e *Engine) reconcile(text string, resume *models.ResumeContent) (*models.TailoringResult, string) {
	payload, ok := sliceJSON(text)
	if !ok {
		return nil, "no JSON object in completion"
	}

	var raw struct {
		TailoredResume json.RawMessage `json:"tailoredResume"`
		Score          json.RawMessage `json:"score"`
		KeywordMatches json.RawMessage `json:"keywordMatches"`
		Suggestions    json.RawMessage `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, "completion is not valid JSON"
	}

	// tailoredResume is the one required field; the nested shape is passed
	// through as-is and rendered defensively downstream.
	var tailored *models.ResumeContent
	if len(raw.TailoredResume) > 0 {
		if err := json.Unmarshal(raw.TailoredResume, &tailored); err != nil {
			tailored = nil
		}
	}
	if tailored == nil {
		return nil, "completion lacks tailoredResume"
	}

	score := defaultScore
	var f float64
	if len(raw.Score) > 0 && json.Unmarshal(raw.Score, &f) == nil {
		score = clampScore(int(f))
	}

	return &models.TailoringResult{
		TailoredResume: *tailored,
		Score:          score,
		KeywordMatches: stringList(raw.KeywordMatches),
		Suggestions:    stringList(raw.Suggestions),
	}, ""
}

func (e *Engine) degrade(resume *models.ResumeContent, job *models.JobDescription, reason string, start time.Time) *models.TailoringResult {
	result := BuildFallback(resume, job)
	result.Metadata.FallbackReason = reason
	result.Metadata.ProcessingMS = time.Since(start).Milliseconds()
	return result
}

// sliceJSON cuts the substring between the first '{' and the last '}' so
// prose-wrapped JSON still parses.
func sliceJSON(text string) (string, bool) {
	open := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if open < 0 || end <= open {
		return "", false
	}
	return text[open : end+1], true
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func stringList(raw json.RawMessage) []string {
	var out []string
	if len(raw) > 0 && json.Unmarshal(raw, &out) == nil && out != nil {
		return out
	}
	return []string{}
}
