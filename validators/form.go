package validators

import (
	"strconv"
	"strings"

	"github.com/CorrelAid/form_intake/models"
	"github.com/go-playground/validator/v10"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

var validate = validator.New()

// ValidateLead checks a lead payload. Message is optional.
func ValidateLead(form models.LeadForm) ValidationErrors {
	var errs ValidationErrors
	requireText(&errs, "name", form.Name, "Name is mandatory")
	checkEmail(&errs, form.Email)
	return errs
}

// ValidateFeedback checks a feedback payload. Within a field only the first
// failing rule is reported.
func ValidateFeedback(form models.FeedbackForm) ValidationErrors {
	var errs ValidationErrors
	requireText(&errs, "name", form.Name, "Name is mandatory")
	checkEmail(&errs, form.Email)
	checkRating(&errs, form.Rating)
	requireText(&errs, "comments", form.Comments, "Comments are mandatory")
	return errs
}

func requireText(errs *ValidationErrors, field, value, message string) bool {
	if strings.TrimSpace(value) == "" {
		errs.add(field, message)
		return false
	}
	return true
}

func checkEmail(errs *ValidationErrors, email string) {
	if !requireText(errs, "email", email, "Email is mandatory") {
		return
	}
	if err := validate.Var(strings.TrimSpace(email), "email"); err != nil {
		errs.add("email", "Email should be valid")
	}
}

func checkRating(errs *ValidationErrors, raw string) {
	if !requireText(errs, "rating", raw, "Rating is mandatory") {
		return
	}
	rating, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil:
		errs.add("rating", "Rating should be a number")
	case rating < MinRating:
		errs.add("rating", "Rating should not be less than 1")
	case rating > MaxRating:
		errs.add("rating", "Rating should not be more than 5")
	}
}
