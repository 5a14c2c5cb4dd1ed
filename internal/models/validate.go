package models

import "unicode/utf8"

// Field names a form field in validation results.
type Field string

const (
	FieldLabel    Field = "labelRaw"
	FieldType     Field = "type"
	FieldLogin    Field = "login"
	FieldPassword Field = "password"
)

const (
	MaxLabelLength    = 50
	MaxLoginLength    = 100
	MaxPasswordLength = 100
)

// ValidationResult maps every failing field to its message. Valid is true
// iff Errors is empty.
type ValidationResult struct {
	Valid  bool
	Errors map[Field]string
}

// Validate checks in with the English message catalog.
func Validate(in AccountFormInput) ValidationResult {
	return ValidateWith(in, EnglishMessages)
}

// ValidateWith checks every field of in independently and collects all
// failures. The password is only checked for local accounts: an empty type
// does not make the password required.
func ValidateWith(in AccountFormInput, msg Messages) ValidationResult {
	errs := make(map[Field]string)

	if length(in.LabelRaw) > MaxLabelLength {
		errs[FieldLabel] = msg.maxLength(MaxLabelLength)
	}

	switch {
	case in.Type == "":
		errs[FieldType] = msg.Required
	case !in.Type.Known():
		errs[FieldType] = msg.UnknownType
	}

	switch {
	case in.Login == "":
		errs[FieldLogin] = msg.Required
	case length(in.Login) > MaxLoginLength:
		errs[FieldLogin] = msg.maxLength(MaxLoginLength)
	}

	if in.Type == AccountTypeLocal {
		switch {
		case in.Password == "":
			errs[FieldPassword] = msg.Required
		case length(in.Password) > MaxPasswordLength:
			errs[FieldPassword] = msg.maxLength(MaxPasswordLength)
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// length counts code points. Counting UTF-16 units would differ only for
// characters outside the Basic Multilingual Plane, which count twice there.
func length(s string) int {
	return utf8.RuneCountInString(s)
}
