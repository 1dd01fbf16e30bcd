package emitter

import (
	"fmt"
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// File upload bounds are fixed product decisions: 5 MiB per file and
// image mimetypes only.
const (
	maxFileSizeExpr  = "5 * 1024 * 1024"
	allowedFileTypes = `["image/png", "image/jpeg", "image/gif", "image/webp"]`
)

// Schema synthesizes the zod declaration plus the inferred type alias for
// the flattened field list. Classification toggles the auth-only rules:
// password min-length and, for signup with a confirm field, the
// cross-field equality refinement attached to confirmPassword.
func Schema(fields []ir.Field, c ir.Classification) string {
	var b strings.Builder
	b.WriteString("const formSchema = z.object({\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s: %s,\n", f.Name, zodRule(f, c))
	}
	b.WriteString("})")

	if c.IsSignup && hasFieldNamed(fields, "password") && hasFieldNamed(fields, "confirmPassword") {
		b.WriteString(".refine((data) => data.password === data.confirmPassword, {\n")
		b.WriteString("  message: \"Passwords do not match\",\n")
		b.WriteString("  path: [\"confirmPassword\"],\n")
		b.WriteString("})")
	}
	b.WriteString("\n\n")
	b.WriteString("type FormValues = z.infer<typeof formSchema>\n")
	return b.String()
}

// zodRule maps one field to its validation rule. The mapping is total:
// every kind/subtype lands on a row, and unknown kinds fall through to
// the plain string rule.
func zodRule(f ir.Field, c ir.Classification) string {
	label := f.Label
	if label == "" {
		label = HumanizeName(f.Name)
	}

	switch f.Kind {
	case ir.KindCheckbox:
		if f.Required {
			return fmt.Sprintf(`z.boolean().refine((value) => value === true, { message: "%s is required" })`, jsString(label))
		}
		return "z.boolean().default(false)"

	case ir.KindSelect, ir.KindRadio:
		rule := fmt.Sprintf("z.enum([%s])", enumValues(f.Options))
		if !f.Required {
			rule += ".optional()"
		}
		return rule

	case ir.KindDate:
		if f.Required {
			return fmt.Sprintf(`z.date({ required_error: "%s is required" }).min(new Date("1900-01-01"), { message: "%s must be after January 1st, 1900" })`,
				jsString(label), jsString(label))
		}
		return "z.date().optional()"

	case ir.KindFile:
		rule := "z.array(z.instanceof(File))"
		if f.Required {
			rule += fmt.Sprintf(`.min(1, { message: "%s is required" })`, jsString(label))
		}
		rule += fmt.Sprintf(`.refine((files) => files.every((file) => file.size <= %s), { message: "Each file must be 5MB or less" })`, maxFileSizeExpr)
		rule += fmt.Sprintf(`.refine((files) => files.every((file) => %s.includes(file.type)), { message: "Only PNG, JPEG, GIF and WebP images are allowed" })`, allowedFileTypes)
		return rule

	case ir.KindInput:
		return inputRule(f, c, label)

	default:
		// Textarea and forward-compatible unknowns validate as strings.
		return stringRule(f.Required, label, "")
	}
}

func inputRule(f ir.Field, c ir.Classification, label string) string {
	if f.Subtype == ir.InputPassword && c.IsAuthForm() {
		return `z.string().min(8, { message: "Password must be at least 8 characters" })`
	}

	switch f.Subtype {
	case ir.InputEmail:
		return stringRule(f.Required, label, `.email({ message: "Enter a valid email address" })`)
	case ir.InputURL:
		return stringRule(f.Required, label, `.url({ message: "Enter a valid URL" })`)
	case ir.InputPhone:
		return stringRule(f.Required, label, `.regex(/^\+?[\d\s()-]{7,20}$/, { message: "Enter a valid phone number" })`)
	default:
		// Plain, number, and password-outside-auth are required/optional strings.
		return stringRule(f.Required, label, "")
	}
}

// stringRule builds the shared string pattern: required asserts min
// length 1, optional accepts the empty string.
func stringRule(required bool, label, format string) string {
	if required {
		return fmt.Sprintf(`z.string().min(1, { message: "%s is required" })%s`, jsString(label), format)
	}
	return fmt.Sprintf("z.string()%s.optional().or(z.literal(\"\"))", format)
}

func enumValues(options []ir.Option) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = fmt.Sprintf("%q", opt.Value)
	}
	return strings.Join(parts, ", ")
}

func hasFieldNamed(fields []ir.Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
