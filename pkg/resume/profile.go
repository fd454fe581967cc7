package resume

// NotAvailable is the placeholder for scalar profile fields the model did not return.
const NotAvailable = "N/A"

// CandidateProfile is the structured form of a resume.
type CandidateProfile struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	LinkedIn   string           `json:"linkedin"`
	Education  []EducationItem  `json:"education"`
	Experience []ExperienceItem `json:"experience"`
	Skills     []string         `json:"skills"`
	Summary    string           `json:"summary"`
}

type EducationItem struct {
	Degree     string `json:"degree"`
	Major      string `json:"major"`
	University string `json:"university"`
	Years      string `json:"years"`
}

type ExperienceItem struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Years       string `json:"years"`
	Description string `json:"description"`
}

// emptyProfile is the decode target: scalars preset to N/A so that keys
// missing from the model output keep the placeholder.
func emptyProfile() CandidateProfile {
	return CandidateProfile{
		Name:     NotAvailable,
		Email:    NotAvailable,
		Phone:    NotAvailable,
		LinkedIn: NotAvailable,
		Summary:  NotAvailable,
	}
}

// normalize replaces nil slices so the JSON form always carries []. Values
// the model returned are kept as they are.
func (p *CandidateProfile) normalize() {
	if p.Education == nil {
		p.Education = []EducationItem{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceItem{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
}
