// Package types defines the document model shared across the application.
package types

// PersonalInfo holds the contact and summary fields shown in the resume header.
// All fields are optional; empty strings are rendered as absent.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
	Summary   string `json:"summary"`
}

// WorkExperience is a single employment entry. If Current is true the entry
// is open-ended and EndDate is cleared.
type WorkExperience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"` // "YYYY-MM"
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	ID                 string `json:"id"`
	Degree             string `json:"degree"`
	Institution        string `json:"institution"`
	Location           string `json:"location"`
	GraduationDate     string `json:"graduationDate"`
	GPA                string `json:"gpa"`
	RelevantCoursework string `json:"relevantCoursework"`
	Achievements       string `json:"achievements"`
}

// Skill category keys. The skills map always carries exactly these three keys.
const (
	SkillTechnical = "technical"
	SkillSoft      = "soft"
	SkillLanguages = "languages"
)

// SkillCategories lists the fixed category keys in display order.
var SkillCategories = []string{SkillTechnical, SkillSoft, SkillLanguages}

// Skills maps a fixed category key to an ordered list of skill names.
type Skills map[string][]string

// IsEmpty reports whether no category has any entries.
func (s Skills) IsEmpty() bool {
	for _, list := range s {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

// Project is a single project entry. If Ongoing is true the entry is
// open-ended and EndDate is cleared.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	GitHub       string `json:"github"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Ongoing      bool   `json:"ongoing"`
}

// Certification is a single certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	ExpiryDate   string `json:"expiryDate"`
	CredentialID string `json:"credentialId"`
	URL          string `json:"url"`
}

// ResumeDocument is the normalized in-memory resume edited by the user.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         Skills           `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Hobbies        []string         `json:"hobbies"`
}

// ResumeTemplateDefault is the fallback resume template id.
const ResumeTemplateDefault = "modern"

// ResumeTemplates lists the valid resume template ids.
var ResumeTemplates = []string{"modern", "classic", "creative", "minimal"}

// ValidResumeTemplate reports whether id names a known resume template.
func ValidResumeTemplate(id string) bool {
	for _, t := range ResumeTemplates {
		if t == id {
			return true
		}
	}
	return false
}

// EmptyResume returns the initial resume value: every string empty, every
// collection present but empty. This is the value restored by a reset.
func EmptyResume() *ResumeDocument {
	return &ResumeDocument{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills: Skills{
			SkillTechnical: {},
			SkillSoft:      {},
			SkillLanguages: {},
		},
		Projects:       []Project{},
		Certifications: []Certification{},
		Hobbies:        []string{},
	}
}

// Normalize repairs a document loaded from storage: nil collections become
// empty, the fixed skill categories are ensured, and open-ended entries have
// their end dates cleared.
func (d *ResumeDocument) Normalize() {
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkExperience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Hobbies == nil {
		d.Hobbies = []string{}
	}
	if d.Skills == nil {
		d.Skills = Skills{}
	}
	for _, cat := range SkillCategories {
		if d.Skills[cat] == nil {
			d.Skills[cat] = []string{}
		}
	}
	for i := range d.WorkExperience {
		if d.WorkExperience[i].Current {
			d.WorkExperience[i].EndDate = ""
		}
	}
	for i := range d.Projects {
		if d.Projects[i].Ongoing {
			d.Projects[i].EndDate = ""
		}
	}
}
