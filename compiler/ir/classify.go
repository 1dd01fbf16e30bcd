package ir

import "strings"

// nameHints are field names treated as a display-name source.
var nameHints = []string{"name", "fullName", "firstName", "username"}

// signupWords is the loose form-title pattern that tips an email+password
// form into signup when no confirm or name field is present.
var signupWords = []string{"sign up", "signup", "register", "create"}

// Classification is the shared predicate over the flattened field list.
// Signup strictly precedes and excludes login: a form with a confirm
// field classifies as signup even when its title says nothing.
type Classification struct {
	HasEmail    bool
	HasPassword bool
	HasConfirm  bool
	HasNameHint bool
	IsSignup    bool
	IsLogin     bool
}

// IsAuthForm reports whether auth-specific schema rules and submit logic apply.
func (c Classification) IsAuthForm() bool {
	return c.IsLogin || c.IsSignup
}

// Classify computes the form classification. Behavior is undefined when a
// descriptor carries duplicate email or password fields; callers are
// expected to reject those upstream.
func Classify(f *Form) Classification {
	var c Classification
	for _, field := range f.FlatFields() {
		if field.Name == "email" || field.Subtype == InputEmail {
			c.HasEmail = true
		}
		if field.Name == "password" || field.Subtype == InputPassword {
			c.HasPassword = true
		}
		if field.Name == "confirmPassword" {
			c.HasConfirm = true
		}
		for _, hint := range nameHints {
			if field.Name == hint {
				c.HasNameHint = true
			}
		}
	}

	if f.AuthEnabled && c.HasEmail && c.HasPassword {
		if c.HasConfirm || c.HasNameHint || titleSuggestsSignup(f.Name) {
			c.IsSignup = true
		} else {
			c.IsLogin = true
		}
	}
	return c
}

func titleSuggestsSignup(title string) bool {
	lower := strings.ToLower(title)
	for _, w := range signupWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// DisplayNameField returns the first field matching the name-hint set, in
// field order. Missing hint means the caller derives the display name
// from the email local part.
func DisplayNameField(fields []Field) (Field, bool) {
	for _, f := range fields {
		for _, hint := range nameHints {
			if f.Name == hint {
				return f, true
			}
		}
	}
	return Field{}, false
}
