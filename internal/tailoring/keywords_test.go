package tailoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorhq/resume-tailor/internal/models"
)

func TestExtractKeywords_BasicMatch(t *testing.T) {
	job := "requires Golang, Kubernetes, distributed systems"
	resume := "I build services in Golang and deploy on Kubernetes."

	got := ExtractKeywords(job, resume)

	assert.Equal(t, []string{"golang", "kubernetes"}, got)
}

func TestExtractKeywords_AtMostTen(t *testing.T) {
	job := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima"
	resume := strings.ToUpper(job) // everything matches, case-insensitively

	got := ExtractKeywords(job, resume)

	require.Len(t, got, 10)
	assert.Equal(t, "alpha", got[0])
	assert.Equal(t, "juliett", got[9])
}

func TestExtractKeywords_DedupesPreservingOrder(t *testing.T) {
	job := "python python java python java rust"
	resume := "java, rust and python daily"

	got := ExtractKeywords(job, resume)

	assert.Equal(t, []string{"python", "java", "rust"}, got)
}

func TestExtractKeywords_ShortTokensIgnored(t *testing.T) {
	// Tokens under 3 characters never count, even when present.
	got := ExtractKeywords("go ML is it", "go ml is it")
	assert.Empty(t, got)
}

func TestExtractKeywords_EmptyInputs(t *testing.T) {
	assert.Empty(t, ExtractKeywords("", ""))
	assert.Empty(t, ExtractKeywords("", "some resume"))
	assert.Empty(t, ExtractKeywords("some job", ""))
}

func TestExtractKeywords_AllLowercase(t *testing.T) {
	got := ExtractKeywords("Requires KUBERNETES and Terraform", "kubernetes terraform")
	for _, k := range got {
		assert.Equal(t, strings.ToLower(k), k)
	}
}

func TestFlattenResume_PrefersRawText(t *testing.T) {
	r := &models.ResumeContent{
		Summary: "structured summary",
		RawText: "the raw truth",
	}
	assert.Equal(t, "the raw truth", FlattenResume(r))
}

func TestFlattenResume_FallsBackToJSON(t *testing.T) {
	r := &models.ResumeContent{
		Summary: "structured summary",
		Skills:  []string{"Go", "Docker"},
	}

	flat := FlattenResume(r)

	assert.Contains(t, flat, "structured summary")
	assert.Contains(t, flat, "Docker")
}

func TestFlattenResume_Nil(t *testing.T) {
	assert.Equal(t, "", FlattenResume(nil))
}
