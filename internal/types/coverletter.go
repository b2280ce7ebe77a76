package types

// LetterContent holds the three independently edited slots of a cover
// letter. The fields are always defined strings, never absent.
type LetterContent struct {
	Opening string `json:"opening"`
	Body    string `json:"body"`
	Closing string `json:"closing"`
}

// Customizations controls how generated letter content is phrased.
type Customizations struct {
	Tone     string `json:"tone"`
	Length   string `json:"length"`
	Emphasis string `json:"emphasis"`
}

// CoverLetterDocument is the normalized in-memory cover letter.
type CoverLetterDocument struct {
	JobTitle       string         `json:"jobTitle"`
	CompanyName    string         `json:"companyName"`
	HiringManager  string         `json:"hiringManager"`
	JobDescription string         `json:"jobDescription"`
	Content        LetterContent  `json:"content"`
	Template       string         `json:"template"`
	Industry       string         `json:"industry"`
	Customizations Customizations `json:"customizations"`
}

// LetterTemplateDefault is the fallback cover letter template id.
const LetterTemplateDefault = "professional"

// LetterTemplates lists the valid cover letter template ids.
var LetterTemplates = []string{"professional", "modern", "creative", "executive"}

// Industries lists the valid industry ids for letter customization.
var Industries = []string{
	"technology", "finance", "healthcare", "education",
	"marketing", "consulting", "retail", "manufacturing",
}

// Customization enums.
var (
	Tones    = []string{"professional", "enthusiastic", "confident", "friendly"}
	Lengths  = []string{"short", "medium", "long"}
	Emphases = []string{"experience", "skills", "education", "passion"}
)

// ValidLetterTemplate reports whether id names a known letter template.
func ValidLetterTemplate(id string) bool {
	for _, t := range LetterTemplates {
		if t == id {
			return true
		}
	}
	return false
}

// ValidIndustry reports whether id names a known industry.
func ValidIndustry(id string) bool {
	for _, t := range Industries {
		if t == id {
			return true
		}
	}
	return false
}

// EmptyCoverLetter returns the initial cover letter value.
func EmptyCoverLetter() *CoverLetterDocument {
	return &CoverLetterDocument{
		Template: LetterTemplateDefault,
		Industry: "technology",
		Customizations: Customizations{
			Tone:     "professional",
			Length:   "medium",
			Emphasis: "experience",
		},
	}
}

// Normalize repairs a letter loaded from storage: unknown enum values fall
// back to their defaults. Content fields are value strings and need no repair.
func (d *CoverLetterDocument) Normalize() {
	if !ValidLetterTemplate(d.Template) {
		d.Template = LetterTemplateDefault
	}
	if !ValidIndustry(d.Industry) {
		d.Industry = "technology"
	}
	if d.Customizations.Tone == "" {
		d.Customizations.Tone = "professional"
	}
	if d.Customizations.Length == "" {
		d.Customizations.Length = "medium"
	}
	if d.Customizations.Emphasis == "" {
		d.Customizations.Emphasis = "experience"
	}
}
