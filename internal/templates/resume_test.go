package templates

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reco/reco-builder/internal/types"
)

func sampleResume() *types.ResumeDocument {
	doc := types.EmptyResume()
	doc.PersonalInfo = types.PersonalInfo{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Phone: "555-0134",
		City: "London", State: "UK",
		Summary: "Engineer with a decade of analytical systems work.",
	}
	doc.WorkExperience = []types.WorkExperience{
		{ID: "w1", JobTitle: "Engineer", Company: "Acme", Location: "Remote",
			StartDate: "2022-01", Current: true,
			Description: "Built the analytical engine."},
	}
	doc.Skills[types.SkillTechnical] = []string{"Go", "SQL"}
	doc.Projects = []types.Project{
		{ID: "p1", Name: "Notes", Technologies: "Go", StartDate: "2021-03",
			Ongoing: true, Description: "A note-taking tool."},
	}
	doc.Hobbies = []string{"Chess"}
	return doc
}

func TestBuildResume_SectionSuppression(t *testing.T) {
	doc := sampleResume() // education and certifications are empty

	for _, id := range types.ResumeTemplates {
		tree := BuildResume(doc, id)

		assert.Nil(t, tree.Section(KindEducation), "%s: empty education must be omitted", id)
		assert.Nil(t, tree.Section(KindCertifications), "%s: empty certifications must be omitted", id)
		assert.NotNil(t, tree.Section(KindExperience), id)
		assert.NotNil(t, tree.Section(KindSkills), id)
		assert.NotNil(t, tree.Section(KindProjects), id)
		assert.NotNil(t, tree.Section(KindHobbies), id)
	}
}

func TestBuildResume_EmptyDocumentHasNoSections(t *testing.T) {
	tree := BuildResume(types.EmptyResume(), "modern")
	assert.Empty(t, tree.Sections)
}

func TestBuildResume_AllBlankSummarySuppressed(t *testing.T) {
	doc := types.EmptyResume()
	doc.PersonalInfo.Summary = "   \n  "
	doc.PersonalInfo.FirstName = "Ada"

	tree := BuildResume(doc, "classic")
	assert.Nil(t, tree.Section(KindSummary))
	assert.NotNil(t, tree.Section(KindHeader))
}

func TestBuildResume_OrderIsFixedPerTemplate(t *testing.T) {
	doc := sampleResume()
	doc.Education = []types.Education{{ID: "e1", Degree: "BSc", Institution: "State"}}
	doc.Certifications = []types.Certification{{ID: "c1", Name: "CKA", Issuer: "CNCF"}}

	for id, def := range resumeRegistry {
		tree := BuildResume(doc, id)
		assert.Equal(t, def.Order, tree.Kinds(), "template %s must emit its declared order", id)
	}
}

func TestBuildResume_ClassicEndToEnd(t *testing.T) {
	doc := types.EmptyResume()
	doc.WorkExperience = []types.WorkExperience{
		{ID: "w1", JobTitle: "Engineer", Company: "Acme", StartDate: "2022-01", Current: true},
	}

	tree := BuildResume(doc, "classic")

	exp := tree.Section(KindExperience)
	require.NotNil(t, exp)
	require.Len(t, exp.Items, 1)
	assert.Equal(t, "Engineer", exp.Items[0].Title)
	assert.Equal(t, "Acme", exp.Items[0].Subtitle)
	assert.Equal(t, "Jan 2022 - Present", exp.Items[0].Meta)

	assert.Nil(t, tree.Section(KindEducation), "no Education heading for empty education")
}

func TestBuildResume_UnknownTemplateFallsBack(t *testing.T) {
	doc := sampleResume()
	tree := BuildResume(doc, "vaporwave")
	assert.Equal(t, types.ResumeTemplateDefault, tree.Template)
	assert.Equal(t, BuildResume(doc, "modern").Sections, tree.Sections)
}

// treeText flattens every displayed string in a tree. Sorted, it is the
// content fingerprint that must survive a template swap.
func treeText(tree *LayoutTree) []string {
	var out []string
	add := func(s string) {
		if s != "" {
			out = append(out, s)
		}
	}
	for _, sec := range tree.Sections {
		add(sec.Heading)
		for _, item := range sec.Items {
			add(item.Title)
			add(item.Subtitle)
			add(item.Meta)
			add(item.Body)
			for _, tag := range item.Tags {
				add(tag)
			}
		}
	}
	sort.Strings(out)
	return out
}

func TestBuildResume_TemplateSwapPreservesContent(t *testing.T) {
	doc := sampleResume()
	doc.Education = []types.Education{
		{ID: "e1", Degree: "BSc Mathematics", Institution: "State", GPA: "3.9",
			GraduationDate: "2019-06"},
	}

	baseline := treeText(BuildResume(doc, "modern"))
	require.NotEmpty(t, baseline)

	for _, id := range types.ResumeTemplates {
		assert.Equal(t, baseline, treeText(BuildResume(doc, id)),
			"template %s must show the same content", id)
	}
}

func TestBuildResume_SkillsCategoriesLabelled(t *testing.T) {
	doc := types.EmptyResume()
	doc.Skills[types.SkillTechnical] = []string{"Go"}
	doc.Skills[types.SkillLanguages] = []string{"French"}

	tree := BuildResume(doc, "modern")
	skills := tree.Section(KindSkills)
	require.NotNil(t, skills)
	require.Len(t, skills.Items, 2, "empty soft category is skipped")
	assert.Equal(t, "Technical", skills.Items[0].Title)
	assert.Equal(t, []string{"Go"}, skills.Items[0].Tags)
	assert.Equal(t, "Languages", skills.Items[1].Title)
}

func TestBuildHeader_CityStateLine(t *testing.T) {
	doc := types.EmptyResume()
	doc.PersonalInfo = types.PersonalInfo{FirstName: "Ada", City: "Portland", State: "OR", ZipCode: "97201"}

	tree := BuildResume(doc, "minimal")
	header := tree.Section(KindHeader)
	require.NotNil(t, header)
	assert.Contains(t, header.Items[0].Tags, "Portland, OR 97201")
}
