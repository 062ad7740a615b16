package models

// PersonalInfo is the contact block of a resume.
type PersonalInfo struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Location string `bson:"location" json:"location"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
}

type Experience struct {
	Title       string `bson:"title" json:"title"`
	Company     string `bson:"company" json:"company"`
	Duration    string `bson:"duration" json:"duration"`
	Description string `bson:"description" json:"description"`
}

type Education struct {
	Degree string `bson:"degree" json:"degree"`
	School string `bson:"school" json:"school"`
	Year   string `bson:"year" json:"year"`
}

type Project struct {
	Name         string   `bson:"name" json:"name"`
	Description  string   `bson:"description" json:"description"`
	Technologies []string `bson:"technologies,omitempty" json:"technologies,omitempty"`
}

// ResumeContent is the canonical resume shape shared by the API, the store,
// and the LLM contract (the json names are part of the model's expected
// output, so they stay camelCase).
//
// When RawText is set and the structured fields are empty, RawText is the
// source of truth for downstream consumers.
type ResumeContent struct {
	PersonalInfo PersonalInfo `bson:"personal_info" json:"personalInfo"`
	Summary      string       `bson:"summary" json:"summary"`
	Skills       []string     `bson:"skills" json:"skills"`
	Experience   []Experience `bson:"experience" json:"experience"`
	Education    []Education  `bson:"education" json:"education"`
	Projects     []Project    `bson:"projects,omitempty" json:"projects,omitempty"`
	RawText      string       `bson:"raw_text,omitempty" json:"rawText,omitempty"`
}

// HasStructuredContent reports whether any structured section is populated.
func (r *ResumeContent) HasStructuredContent() bool {
	if r == nil {
		return false
	}
	return r.Summary != "" || len(r.Skills) > 0 || len(r.Experience) > 0 ||
		len(r.Education) > 0 || len(r.Projects) > 0
}
