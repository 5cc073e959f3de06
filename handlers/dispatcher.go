package handlers

import (
	"context"

	"github.com/CorrelAid/form_intake/models"
	"github.com/CorrelAid/form_intake/templates"
	"github.com/CorrelAid/form_intake/validators"
)

// Confirmation messages shown above a cleared form.
const (
	LeadSuccessMessage     = "Lead submitted successfully!"
	FeedbackSuccessMessage = "Feedback submitted successfully!"
)

// LeadSaver persists a validated lead payload.
type LeadSaver interface {
	SaveLead(ctx context.Context, form models.LeadForm) (*models.Lead, error)
}

// FeedbackSaver persists a validated feedback payload.
type FeedbackSaver interface {
	SaveFeedback(ctx context.Context, form models.FeedbackForm) (*models.Feedback, error)
}

// View is what a form page renders: the template, the payload to echo back,
// and any errors or confirmation message.
type View struct {
	Template string
	FormType string
	Lead     models.LeadForm
	Feedback models.FeedbackForm
	Errors   validators.ValidationErrors
	Message  string
}

// Dispatcher picks the lead or feedback path from the "type" discriminator.
// Only "feedback" selects the feedback path; anything else is a lead.
type Dispatcher struct {
	leads    LeadSaver
	feedback FeedbackSaver
}

func NewDispatcher(leads LeadSaver, feedback FeedbackSaver) *Dispatcher {
	return &Dispatcher{leads: leads, feedback: feedback}
}

// ShowForm returns an empty form of the requested type.
func (d *Dispatcher) ShowForm(formType string) View {
	if isFeedback(formType) {
		return feedbackView(models.FeedbackForm{})
	}
	return leadView(models.LeadForm{})
}

// SubmitForm validates the payload matching formType and, if it passes, saves
// it. Invalid payloads come back in the view with their errors and nothing is
// written. Storage failures are returned as the error.
func (d *Dispatcher) SubmitForm(ctx context.Context, formType string, feedback models.FeedbackForm, lead models.LeadForm) (View, error) {
	if isFeedback(formType) {
		if errs := validators.ValidateFeedback(feedback); errs.HasErrors() {
			v := feedbackView(feedback)
			v.Errors = errs
			return v, nil
		}
		if _, err := d.feedback.SaveFeedback(ctx, feedback); err != nil {
			return View{}, err
		}
		v := feedbackView(models.FeedbackForm{})
		v.Message = FeedbackSuccessMessage
		return v, nil
	}

	if errs := validators.ValidateLead(lead); errs.HasErrors() {
		v := leadView(lead)
		v.Errors = errs
		return v, nil
	}
	if _, err := d.leads.SaveLead(ctx, lead); err != nil {
		return View{}, err
	}
	v := leadView(models.LeadForm{})
	v.Message = LeadSuccessMessage
	return v, nil
}

func isFeedback(formType string) bool {
	return formType == models.FormTypeFeedback
}

func leadView(form models.LeadForm) View {
	return View{Template: templates.LeadForm, FormType: models.FormTypeLead, Lead: form}
}

func feedbackView(form models.FeedbackForm) View {
	return View{Template: templates.FeedbackForm, FormType: models.FormTypeFeedback, Feedback: form}
}
