package models

// Form type discriminators carried in the "type" field.
const (
	FormTypeLead     = "lead"
	FormTypeFeedback = "feedback"
)

// LeadForm is the payload bound from the lead capture form.
type LeadForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// FeedbackForm is the payload bound from the customer feedback form. Rating
// stays raw until validation so a bad value can be shown back to the user.
type FeedbackForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Rating   string `form:"rating"`
	Comments string `form:"comments"`
}
