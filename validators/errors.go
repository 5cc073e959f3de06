package validators

import "strings"

// FieldError is one failed rule on one form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors collects every field failure of a payload so the form can
// show all of them at once.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// HasErrors reports whether any rule failed.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// For returns the messages recorded for field, in rule order. Templates call
// it to annotate inputs.
func (v ValidationErrors) For(field string) []string {
	var out []string
	for _, fe := range v {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

// Fields lists the fields that failed, without duplicates.
func (v ValidationErrors) Fields() []string {
	seen := make(map[string]struct{}, len(v))
	var out []string
	for _, fe := range v {
		if _, ok := seen[fe.Field]; ok {
			continue
		}
		seen[fe.Field] = struct{}{}
		out = append(out, fe.Field)
	}
	return out
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}
