package tailoring

import (
	"fmt"
	"strings"

	"github.com/tailorhq/resume-tailor/internal/models"
)

// BuildPrompt renders the instruction block sent to the model. The JSON shape
// named in the TASK section is the contract the reconciliation step validates
// against, so any change here has to be mirrored there.
func BuildPrompt(resume *models.ResumeContent, job *models.JobDescription) string {
	var b strings.Builder

	b.WriteString("You are an expert resume writer and ATS optimization specialist.\n\n")

	b.WriteString("CURRENT RESUME:\n")
	fmt.Fprintf(&b, "Name: %s\n", orNotProvided(resume.PersonalInfo.Name))
	fmt.Fprintf(&b, "Summary: %s\n", orNotProvided(resume.Summary))
	fmt.Fprintf(&b, "Skills: %s\n", orNotProvided(strings.Join(resume.Skills, ", ")))
	fmt.Fprintf(&b, "Experience: %s\n", orNotProvided(experienceLine(resume.Experience)))

	// Raw text carries more signal than partially extracted fields, so it is
	// always included when present.
	b.WriteString("\nRAW TEXT:\n")
	if resume.RawText != "" {
		b.WriteString(resume.RawText)
		b.WriteString("\n")
	} else {
		b.WriteString("No raw text provided\n")
	}

	b.WriteString("\nTARGET JOB:\n")
	fmt.Fprintf(&b, "Title: %s\n", job.Title)
	fmt.Fprintf(&b, "Company: %s\n", job.Company)
	fmt.Fprintf(&b, "Description: %s\n", job.Description)
	fmt.Fprintf(&b, "Requirements: %s\n", orNotSpecified(strings.Join(job.Requirements, "; ")))

	b.WriteString(`
TASK: Optimize this resume for the job posting. Return ONLY valid JSON with:
{
  "tailoredResume": {
    "personalInfo": {"name": "Current Name", "email": "email@example.com", "phone": "123-456-7890", "location": "Location"},
    "summary": "Enhanced summary with job-relevant keywords",
    "skills": ["skill1", "skill2", "skill3"],
    "experience": [{"title": "Job Title", "company": "Company", "duration": "2020-2023", "description": "Enhanced description"}],
    "education": [{"degree": "Degree", "school": "School", "year": "2020"}],
    "projects": []
  },
  "score": 85,
  "keywordMatches": ["keyword1", "keyword2", "keyword3"],
  "suggestions": ["suggestion1", "suggestion2", "suggestion3"]
}

Focus on incorporating job keywords naturally and highlighting relevant experience.
Do not include explanations, markdown, or text before or after the JSON.`)

	return b.String()
}

func experienceLine(entries []models.Experience) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s at %s", e.Title, e.Company))
	}
	return strings.Join(parts, "; ")
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
