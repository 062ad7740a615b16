package tailoring

import (
	"regexp"
	"strings"

	"github.com/tailorhq/resume-tailor/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
)

// ParseRawText does a best-effort extraction of name, email, phone, and a
// skills line from pasted resume text. The raw text is always kept on the
// result; the structured fields are a convenience, not a guarantee.
func ParseRawText(raw string) *models.ResumeContent {
	resume := &models.ResumeContent{RawText: raw}

	resume.PersonalInfo.Email = emailPattern.FindString(raw)
	resume.PersonalInfo.Phone = strings.TrimSpace(phonePattern.FindString(raw))

	lines := strings.Split(raw, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// The first short contact-free line is almost always the name.
		if !strings.Contains(line, "@") && len(line) <= 60 && !phonePattern.MatchString(line) {
			resume.PersonalInfo.Name = line
		}
		break
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if !strings.HasPrefix(lower, "skills") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed[len("skills"):], ":"))
		if rest == "" {
			continue
		}
		for _, s := range strings.Split(rest, ",") {
			if s = strings.TrimSpace(s); s != "" {
				resume.Skills = append(resume.Skills, s)
			}
		}
		break
	}

	return resume
}
