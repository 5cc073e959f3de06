package validators

import (
	"strings"

	"github.com/CorrelAid/form_intake/models"
)

// NormalizeLead trims surrounding whitespace from every field. The text
// itself is kept as typed; templates escape it on output.
func NormalizeLead(form models.LeadForm) models.LeadForm {
	return models.LeadForm{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Message: strings.TrimSpace(form.Message),
	}
}

// NormalizeFeedback trims surrounding whitespace from every field.
func NormalizeFeedback(form models.FeedbackForm) models.FeedbackForm {
	return models.FeedbackForm{
		Name:     strings.TrimSpace(form.Name),
		Email:    strings.TrimSpace(form.Email),
		Rating:   strings.TrimSpace(form.Rating),
		Comments: strings.TrimSpace(form.Comments),
	}
}
