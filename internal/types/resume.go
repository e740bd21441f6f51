package types

// ParsedResumeData is the backend parser's structured view of an uploaded
// resume. List fields are always non-nil after passing through the transform
// package, even when the backend omitted them.
type ParsedResumeData struct {
	Summary        string            `json:"summary,omitempty"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Projects       []Project         `json:"projects"`
	Languages      []string          `json:"languages"`
	Certifications []string          `json:"certifications"`
}

// ExperienceEntry is one position in the candidate's work history.
type ExperienceEntry struct {
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights"`
}

// EducationEntry is one school in the candidate's education history.
type EducationEntry struct {
	School         string  `json:"school"`
	Degree         string  `json:"degree,omitempty"`
	Major          string  `json:"major,omitempty"`
	StartDate      string  `json:"start_date,omitempty"`
	EndDate        string  `json:"end_date,omitempty"`
	GPA            float64 `json:"gpa,omitempty"`
	GraduationYear int     `json:"graduation_year,omitempty"`
}

// Project is one personal or professional project from the resume.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}
