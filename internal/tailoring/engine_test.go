package tailoring

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/providers/llm"
)

type fakeProvider struct {
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (*llm.Completion, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Completion{Text: f.text, TokensUsed: 42}, nil
}

func (f *fakeProvider) Model() string { return "test-model" }
func (f *fakeProvider) Close() error  { return nil }

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sampleResume() *models.ResumeContent {
	return &models.ResumeContent{
		RawText: "I build services in Golang and deploy on Kubernetes.",
	}
}

func TestEngine_NoProviderUsesFallback(t *testing.T) {
	e := NewEngine(nil, testLogger())

	got := e.Tailor(context.Background(), sampleResume(), acmeJob())

	require.NotNil(t, got)
	assert.Equal(t, models.SourceFallback, got.Metadata.Source)
	assert.Equal(t, "api key not configured", got.Metadata.FallbackReason)
	assert.Equal(t, 76, got.Score)
}

func TestEngine_TransportErrorUsesFallback(t *testing.T) {
	p := &fakeProvider{err: errors.New("connection refused")}
	e := NewEngine(p, testLogger())

	got := e.Tailor(context.Background(), sampleResume(), acmeJob())

	assert.Equal(t, 1, p.calls)
	assert.Equal(t, models.SourceFallback, got.Metadata.Source)
	assert.Equal(t, "llm request failed", got.Metadata.FallbackReason)
}

func TestEngine_ProseWrappedJSONIsRepaired(t *testing.T) {
	p := &fakeProvider{text: `Sure! Here you go: {"tailoredResume": {"summary": "Tailored."}, "score": 88, "keywordMatches": ["golang"], "suggestions": ["tighten summary"]} Hope that helps!`}
	e := NewEngine(p, testLogger())

	got := e.Tailor(context.Background(), sampleResume(), acmeJob())

	assert.Equal(t, models.SourceAI, got.Metadata.Source)
	assert.Equal(t, "test-model", got.Metadata.Model)
	assert.Equal(t, 42, got.Metadata.TokensUsed)
	assert.Equal(t, 88, got.Score)
	assert.Equal(t, "Tailored.", got.TailoredResume.Summary)
	assert.Equal(t, []string{"golang"}, got.KeywordMatches)
	assert.Equal(t, []string{"tighten summary"}, got.Suggestions)
}

func TestEngine_ScoreClampedHigh(t *testing.T) {
	p := &fakeProvider{text: `Sure! {"tailoredResume": {"summary": "ok"}, "score": 150}`}
	e := NewEngine(p, testLogger())

	got := e.Tailor(context.Background(), sampleResume(), acmeJob())

	assert.Equal(t, models.SourceAI, got.Metadata.Source)
	assert.Equal(t, 100, got.Score)
}

func TestEngine_ScoreClampedLow(t *testing.T) {
	p := &fakeProvider{text: `{"tailoredResume": {"summary": "ok"}, "score": -5}`}
	e := NewEngine(p, testLogger())

	got := e.Tailor(context.Background(), sampleResume(), acmeJob())

	assert.Equal(t, 0, got.Score)
}

func TestEngine_MissingScoreDefaults(t *testing.T) {
	p := &fakeProvider{text: `{"tailoredResume": {"summary": "ok"}}`}
	e := NewEngine(p, testLogger())

	got := e.Tailor(context.Background(), sampleResume(), acmeJob())

	assert.Equal(t, models.SourceAI, got.Metadata.Source)
	assert.Equal(t, 75, got.Score)
	assert.Equal(t, []string{}, got.KeywordMatches)
	assert.Equal(t, []string{}, got.Suggestions)
}

func TestEngine_NonListFieldsDefaultToEmpty(t *testing.T) {
	p := &fakeProvider{text: `{"tailoredResume": {"summary": "ok"}, "keywordMatches": "golang", "suggestions": 7}`}
	e := NewEngine(p, testLogger())

	got := e.Tailor(context.Background(), sampleResume(), acmeJob())

	assert.Equal(t, models.SourceAI, got.Metadata.Source)
	assert.Equal(t, []string{}, got.KeywordMatches)
	assert.Equal(t, []string{}, got.Suggestions)
}

func TestEngine_MalformedCompletionsMatchFallback(t *testing.T) {
	resume := sampleResume()
	job := acmeJob()
	want := BuildFallback(resume, job)

	cases := []struct {
		name string
		text string
	}{
		{"plain prose", "I cannot produce JSON today."},
		{"truncated JSON", `{"tailoredResume": {"summary": "oops"`},
		{"missing tailoredResume", `{"score": 90, "keywordMatches": []}`},
		{"null tailoredResume", `{"tailoredResume": null, "score": 90}`},
		{"empty string", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine(&fakeProvider{text: tc.text}, testLogger())

			got := e.Tailor(context.Background(), resume, job)

			assert.Equal(t, models.SourceFallback, got.Metadata.Source)
			assert.NotEmpty(t, got.Metadata.FallbackReason)
			assert.Equal(t, want.TailoredResume, got.TailoredResume)
			assert.Equal(t, want.Score, got.Score)
			assert.Equal(t, want.KeywordMatches, got.KeywordMatches)
			assert.Equal(t, want.Suggestions, got.Suggestions)
		})
	}
}

func TestSliceJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`{"a":1}`, `{"a":1}`, true},
		{`prefix {"a":1} suffix`, `{"a":1}`, true},
		{`{"a":{"b":2}} trailing`, `{"a":{"b":2}}`, true},
		{"no braces", "", false},
		{"only } closing", "", false},
		{"} reversed {", "", false},
	}
	for _, tc := range cases {
		got, ok := sliceJSON(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
