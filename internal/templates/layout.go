// Package templates maps documents to layout trees under a closed registry
// of named template variants. Templates are pure: the same document always
// produces the same tree, and swapping templates changes presentation only.
package templates

// SectionKind identifies a layout section.
type SectionKind string

// Resume section kinds, in the vocabulary shared by all resume templates.
const (
	KindHeader         SectionKind = "header"
	KindSummary        SectionKind = "summary"
	KindExperience     SectionKind = "experience"
	KindEducation      SectionKind = "education"
	KindSkills         SectionKind = "skills"
	KindProjects       SectionKind = "projects"
	KindCertifications SectionKind = "certifications"
	KindHobbies        SectionKind = "hobbies"
)

// Cover letter section kinds.
const (
	KindDate       SectionKind = "date"
	KindRecipient  SectionKind = "recipient"
	KindSalutation SectionKind = "salutation"
	KindOpening    SectionKind = "opening"
	KindBody       SectionKind = "body"
	KindClosing    SectionKind = "closing"
	KindSignature  SectionKind = "signature"
)

// Item is one presentable unit within a section: an experience entry, an
// education entry, a skill category row, a letter paragraph.
type Item struct {
	Title    string
	Subtitle string
	Meta     string
	Body     string
	Tags     []string
}

// Section is an ordered group of items under an optional heading. Sections
// with no qualifying data never appear in a LayoutTree.
type Section struct {
	Kind    SectionKind
	Heading string
	Items   []Item
}

// Theme carries the presentation knobs a template applies. Nothing in a
// Theme may change which text is shown.
type Theme struct {
	AccentColor   string
	HeaderBG      string // CSS background for the header band; empty for none
	HeaderText    string
	TextColor     string
	MutedColor    string
	FontFamily    string
	HeaderCenter  bool
	UpperHeadings bool
	HeadingRule   bool
	TagPills      bool
}

// LayoutTree is the ordered, themed section list a template produces from a
// document.
type LayoutTree struct {
	Template string
	Theme    Theme
	Sections []Section
}

// Section returns the section of the given kind, or nil when suppressed.
func (t *LayoutTree) Section(kind SectionKind) *Section {
	for i := range t.Sections {
		if t.Sections[i].Kind == kind {
			return &t.Sections[i]
		}
	}
	return nil
}

// Kinds returns the section kinds in layout order.
func (t *LayoutTree) Kinds() []SectionKind {
	kinds := make([]SectionKind, len(t.Sections))
	for i, s := range t.Sections {
		kinds[i] = s.Kind
	}
	return kinds
}

// Section headings are fixed per kind, not per template: a heading is part
// of the displayed content, which template swaps must not alter.
var headings = map[SectionKind]string{
	KindSummary:        "Professional Summary",
	KindExperience:     "Work Experience",
	KindEducation:      "Education",
	KindSkills:         "Skills",
	KindProjects:       "Projects",
	KindCertifications: "Certifications",
	KindHobbies:        "Hobbies & Interests",
}
