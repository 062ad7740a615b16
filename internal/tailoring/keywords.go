package tailoring

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tailorhq/resume-tailor/internal/models"
)

// maxKeywords caps how many job-description terms a match list carries.
const maxKeywords = 10

// Tokens shorter than 3 characters are noise ("a", "of", "to"); 3 is the
// documented minimum.
var wordPattern = regexp.MustCompile(`\b\w{3,}\b`)

// ExtractKeywords returns the job-description terms that also occur in the
// resume text: lowercase word tokens of jobText, kept when they appear as a
// substring of the lowercased resumeText, deduplicated in first-occurrence
// order and truncated to 10. Pure; empty inputs yield an empty list.
func ExtractKeywords(jobText, resumeText string) []string {
	words := wordPattern.FindAllString(strings.ToLower(jobText), -1)
	haystack := strings.ToLower(resumeText)

	matches := make([]string, 0, maxKeywords)
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if !strings.Contains(haystack, w) {
			continue
		}
		matches = append(matches, w)
		if len(matches) == maxKeywords {
			break
		}
	}
	return matches
}

// FlattenResume renders a resume as plain text for substring matching.
// RawText is preferred when present (it is the source of truth for pasted
// resumes); otherwise the structured fields are flattened via their JSON
// encoding.
func FlattenResume(resume *models.ResumeContent) string {
	if resume == nil {
		return ""
	}
	if resume.RawText != "" {
		return resume.RawText
	}
	b, err := json.Marshal(resume)
	if err != nil {
		return ""
	}
	return string(b)
}
