package templates

import "github.com/reco/reco-builder/internal/types"

// Definition pairs a template's theme with its fixed section order.
type Definition struct {
	ID    string
	Theme Theme
	Order []SectionKind
}

// resumeRegistry holds the closed set of resume template variants. Unknown
// ids fall back to the default at lookup time, never at call sites.
var resumeRegistry = map[string]Definition{
	"modern": {
		ID: "modern",
		Theme: Theme{
			AccentColor:  "#3B82F6",
			HeaderBG:     "#3B82F6",
			HeaderText:   "#FFFFFF",
			TextColor:    "#374151",
			MutedColor:   "#6B7280",
			FontFamily:   "Arial, Helvetica, sans-serif",
			HeaderCenter: true,
			HeadingRule:  true,
		},
		Order: []SectionKind{
			KindHeader, KindSummary, KindExperience, KindEducation,
			KindSkills, KindProjects, KindCertifications, KindHobbies,
		},
	},
	"classic": {
		ID: "classic",
		Theme: Theme{
			AccentColor:   "#1F2937",
			HeaderText:    "#111827",
			TextColor:     "#374151",
			MutedColor:    "#6B7280",
			FontFamily:    "Georgia, 'Times New Roman', serif",
			HeaderCenter:  true,
			UpperHeadings: true,
			HeadingRule:   true,
		},
		Order: []SectionKind{
			KindHeader, KindSummary, KindExperience, KindEducation,
			KindSkills, KindProjects, KindCertifications, KindHobbies,
		},
	},
	"creative": {
		ID: "creative",
		Theme: Theme{
			AccentColor: "#667eea",
			HeaderBG:    "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
			HeaderText:  "#FFFFFF",
			TextColor:   "#374151",
			MutedColor:  "#6B7280",
			FontFamily:  "Arial, Helvetica, sans-serif",
			TagPills:    true,
		},
		Order: []SectionKind{
			KindHeader, KindSummary, KindSkills, KindExperience,
			KindProjects, KindEducation, KindCertifications, KindHobbies,
		},
	},
	"minimal": {
		ID: "minimal",
		Theme: Theme{
			AccentColor: "#111827",
			HeaderText:  "#111827",
			TextColor:   "#374151",
			MutedColor:  "#9CA3AF",
			FontFamily:  "Helvetica, Arial, sans-serif",
		},
		Order: []SectionKind{
			KindHeader, KindSummary, KindExperience, KindProjects,
			KindEducation, KindSkills, KindCertifications, KindHobbies,
		},
	},
}

// letterRegistry holds the closed set of cover letter template variants.
var letterRegistry = map[string]Definition{
	"professional": {
		ID: "professional",
		Theme: Theme{
			AccentColor: "#1F2937",
			HeaderText:  "#1F2937",
			TextColor:   "#374151",
			MutedColor:  "#6B7280",
			FontFamily:  "Arial, Helvetica, sans-serif",
		},
		Order: letterOrder,
	},
	"modern": {
		ID: "modern",
		Theme: Theme{
			AccentColor: "#3B82F6",
			HeaderText:  "#3B82F6",
			TextColor:   "#374151",
			MutedColor:  "#6B7280",
			FontFamily:  "Arial, Helvetica, sans-serif",
			HeadingRule: true,
		},
		Order: letterOrder,
	},
	"creative": {
		ID: "creative",
		Theme: Theme{
			AccentColor: "#667eea",
			HeaderText:  "#667eea",
			TextColor:   "#374151",
			MutedColor:  "#6B7280",
			FontFamily:  "Arial, Helvetica, sans-serif",
			TagPills:    true,
		},
		Order: letterOrder,
	},
	"executive": {
		ID: "executive",
		Theme: Theme{
			AccentColor: "#000000",
			HeaderText:  "#000000",
			TextColor:   "#374151",
			MutedColor:  "#6B7280",
			FontFamily:  "Georgia, 'Times New Roman', serif",
		},
		Order: letterOrder,
	},
}

// Letters share one section order across variants; only styling differs.
var letterOrder = []SectionKind{
	KindDate, KindRecipient, KindSalutation,
	KindOpening, KindBody, KindClosing, KindSignature,
}

func resumeDefinition(id string) Definition {
	if def, ok := resumeRegistry[id]; ok {
		return def
	}
	return resumeRegistry[types.ResumeTemplateDefault]
}

func letterDefinition(id string) Definition {
	if def, ok := letterRegistry[id]; ok {
		return def
	}
	return letterRegistry[types.LetterTemplateDefault]
}
