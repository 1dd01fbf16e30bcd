// Package emitter contains the text synthesizers: each turns part of a
// form descriptor into one fragment of generated source. Every function
// here is pure; the assembler in package compiler concatenates fragments
// into complete files.
package emitter

import (
	"strings"
	"unicode"
)

// ExportName converts a free-form title to a PascalCase identifier.
// "contact us" -> "ContactUs", "sign-up form" -> "SignUpForm".
func ExportName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r):
			b.WriteRune(r)
			upperNext = true
		default:
			upperNext = true
		}
	}
	return b.String()
}

// HumanizeName turns an identifier into display text.
// "confirmPassword" -> "Confirm password", "full_name" -> "Full name".
func HumanizeName(name string) string {
	if name == "" {
		return ""
	}
	words := splitWords(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	joined := strings.Join(words, " ")
	return strings.ToUpper(joined[:1]) + joined[1:]
}

func splitWords(s string) []string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0:
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// indentBlock shifts every non-empty line of s right by n spaces.
func indentBlock(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// jsString escapes text for a double-quoted JS string literal.
func jsString(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n")
	return r.Replace(s)
}
