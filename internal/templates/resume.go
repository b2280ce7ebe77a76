package templates

import (
	"strings"

	"github.com/reco/reco-builder/internal/types"
)

// BuildResume produces the layout tree for a resume under the named
// template. Unknown template ids use the default variant. Sections with no
// qualifying data are omitted entirely.
func BuildResume(doc *types.ResumeDocument, templateID string) *LayoutTree {
	def := resumeDefinition(templateID)

	builders := map[SectionKind]func(*types.ResumeDocument) *Section{
		KindHeader:         buildHeader,
		KindSummary:        buildSummary,
		KindExperience:     buildExperience,
		KindEducation:      buildEducation,
		KindSkills:         buildSkills,
		KindProjects:       buildProjects,
		KindCertifications: buildCertifications,
		KindHobbies:        buildHobbies,
	}

	tree := &LayoutTree{Template: def.ID, Theme: def.Theme}
	for _, kind := range def.Order {
		if section := builders[kind](doc); section != nil {
			tree.Sections = append(tree.Sections, *section)
		}
	}
	return tree
}

func buildHeader(doc *types.ResumeDocument) *Section {
	info := doc.PersonalInfo
	name := strings.TrimSpace(strings.TrimSpace(info.FirstName) + " " + strings.TrimSpace(info.LastName))

	var contact []string
	appendNonEmpty(&contact, info.Email)
	appendNonEmpty(&contact, info.Phone)
	appendNonEmpty(&contact, cityStateLine(info))
	appendNonEmpty(&contact, info.Address)
	appendNonEmpty(&contact, info.LinkedIn)
	appendNonEmpty(&contact, info.Website)

	if name == "" && len(contact) == 0 {
		return nil
	}
	return &Section{
		Kind:  KindHeader,
		Items: []Item{{Title: name, Tags: contact}},
	}
}

// cityStateLine joins city, state and zip the way an address line reads:
// "Portland, OR 97201", degrading gracefully when parts are missing.
func cityStateLine(info types.PersonalInfo) string {
	city := strings.TrimSpace(info.City)
	state := strings.TrimSpace(info.State)
	zip := strings.TrimSpace(info.ZipCode)

	line := city
	if state != "" {
		if line != "" {
			line += ", "
		}
		line += state
	}
	if zip != "" {
		if line != "" {
			line += " "
		}
		line += zip
	}
	return line
}

func buildSummary(doc *types.ResumeDocument) *Section {
	summary := strings.TrimSpace(doc.PersonalInfo.Summary)
	if summary == "" {
		return nil
	}
	return &Section{
		Kind:    KindSummary,
		Heading: headings[KindSummary],
		Items:   []Item{{Body: summary}},
	}
}

func buildExperience(doc *types.ResumeDocument) *Section {
	if len(doc.WorkExperience) == 0 {
		return nil
	}
	section := &Section{Kind: KindExperience, Heading: headings[KindExperience]}
	for _, exp := range doc.WorkExperience {
		subtitle := exp.Company
		if exp.Location != "" {
			subtitle = joinSubtitle(subtitle, exp.Location)
		}
		section.Items = append(section.Items, Item{
			Title:    exp.JobTitle,
			Subtitle: subtitle,
			Meta:     FormatRange(exp.StartDate, exp.EndDate, exp.Current, "Present"),
			Body:     strings.TrimSpace(exp.Description),
		})
	}
	return section
}

func buildEducation(doc *types.ResumeDocument) *Section {
	if len(doc.Education) == 0 {
		return nil
	}
	section := &Section{Kind: KindEducation, Heading: headings[KindEducation]}
	for _, edu := range doc.Education {
		subtitle := edu.Institution
		if edu.Location != "" {
			subtitle = joinSubtitle(subtitle, edu.Location)
		}
		var lines []string
		if edu.GPA != "" {
			lines = append(lines, "GPA: "+edu.GPA)
		}
		if s := strings.TrimSpace(edu.RelevantCoursework); s != "" {
			lines = append(lines, "Relevant Coursework: "+s)
		}
		if s := strings.TrimSpace(edu.Achievements); s != "" {
			lines = append(lines, s)
		}
		section.Items = append(section.Items, Item{
			Title:    edu.Degree,
			Subtitle: subtitle,
			Meta:     FormatDate(edu.GraduationDate),
			Body:     strings.Join(lines, "\n"),
		})
	}
	return section
}

// skillLabels maps the fixed category keys to their display labels.
var skillLabels = map[string]string{
	types.SkillTechnical: "Technical",
	types.SkillSoft:      "Soft",
	types.SkillLanguages: "Languages",
}

func buildSkills(doc *types.ResumeDocument) *Section {
	if doc.Skills.IsEmpty() {
		return nil
	}
	section := &Section{Kind: KindSkills, Heading: headings[KindSkills]}
	for _, cat := range types.SkillCategories {
		list := doc.Skills[cat]
		if len(list) == 0 {
			continue
		}
		section.Items = append(section.Items, Item{
			Title: skillLabels[cat],
			Tags:  append([]string(nil), list...),
		})
	}
	return section
}

func buildProjects(doc *types.ResumeDocument) *Section {
	if len(doc.Projects) == 0 {
		return nil
	}
	section := &Section{Kind: KindProjects, Heading: headings[KindProjects]}
	for _, p := range doc.Projects {
		var subtitle string
		if p.Technologies != "" {
			subtitle = "Technologies: " + p.Technologies
		}
		var links []string
		appendNonEmpty(&links, p.Link)
		appendNonEmpty(&links, p.GitHub)
		section.Items = append(section.Items, Item{
			Title:    p.Name,
			Subtitle: subtitle,
			Meta:     FormatRange(p.StartDate, p.EndDate, p.Ongoing, "Ongoing"),
			Body:     strings.TrimSpace(p.Description),
			Tags:     links,
		})
	}
	return section
}

func buildCertifications(doc *types.ResumeDocument) *Section {
	if len(doc.Certifications) == 0 {
		return nil
	}
	section := &Section{Kind: KindCertifications, Heading: headings[KindCertifications]}
	for _, c := range doc.Certifications {
		var lines []string
		if s := FormatDate(c.ExpiryDate); s != "" {
			lines = append(lines, "Expires: "+s)
		}
		if c.CredentialID != "" {
			lines = append(lines, "Credential ID: "+c.CredentialID)
		}
		var links []string
		appendNonEmpty(&links, c.URL)
		section.Items = append(section.Items, Item{
			Title:    c.Name,
			Subtitle: c.Issuer,
			Meta:     FormatDate(c.Date),
			Body:     strings.Join(lines, "\n"),
			Tags:     links,
		})
	}
	return section
}

func buildHobbies(doc *types.ResumeDocument) *Section {
	var hobbies []string
	for _, h := range doc.Hobbies {
		appendNonEmpty(&hobbies, h)
	}
	if len(hobbies) == 0 {
		return nil
	}
	return &Section{
		Kind:    KindHobbies,
		Heading: headings[KindHobbies],
		Items:   []Item{{Tags: hobbies}},
	}
}

func joinSubtitle(a, b string) string {
	if a == "" {
		return b
	}
	return a + " • " + b
}

func appendNonEmpty(dst *[]string, s string) {
	if strings.TrimSpace(s) != "" {
		*dst = append(*dst, strings.TrimSpace(s))
	}
}
