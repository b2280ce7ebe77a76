// Package validation defines the API request shapes and their validation
// rules.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reco/reco-builder/internal/types"
)

var validate = validator.New()

// GenerateSectionRequest asks for one resume section to be rewritten.
type GenerateSectionRequest struct {
	Content        string `json:"content" validate:"required,min=1"`
	JobDescription string `json:"jobDescription,omitempty"`
}

// Validate validates the GenerateSectionRequest using the validator.
func (r *GenerateSectionRequest) Validate() error {
	return friendly(validate.Struct(r))
}

// GenerateLetterRequest asks for cover letter content. An empty Slot
// regenerates the whole letter.
type GenerateLetterRequest struct {
	Slot string `json:"slot,omitempty" validate:"omitempty,oneof=opening body closing"`
}

// Validate validates the GenerateLetterRequest using the validator.
func (r *GenerateLetterRequest) Validate() error {
	return friendly(validate.Struct(r))
}

// SetTemplateRequest selects the active resume template.
type SetTemplateRequest struct {
	Template string `json:"template" validate:"required"`
}

// Validate checks the template id against the known resume templates.
func (r *SetTemplateRequest) Validate() error {
	if err := friendly(validate.Struct(r)); err != nil {
		return err
	}
	if !types.ValidResumeTemplate(r.Template) {
		return fmt.Errorf("unknown template %q", r.Template)
	}
	return nil
}

// letterRequirements are the fields a letter must carry before generation.
type letterRequirements struct {
	JobTitle    string `validate:"required"`
	CompanyName string `validate:"required"`
}

// LetterReady reports whether the stored letter has the job details that
// generation prompts depend on.
func LetterReady(doc *types.CoverLetterDocument) error {
	req := letterRequirements{
		JobTitle:    strings.TrimSpace(doc.JobTitle),
		CompanyName: strings.TrimSpace(doc.CompanyName),
	}
	if err := validate.Struct(&req); err != nil {
		return errors.New("job title and company name are required before generating")
	}
	return nil
}

// friendly rewrites validator's struct-path errors into messages that can
// be returned to an API client as-is.
func friendly(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required", "min":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+fe.Param())
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
