package emitter

import (
	"strings"
	"testing"

	"github.com/formsmith/formsmith/compiler/ir"
)

func classify(fields []ir.Field, authEnabled bool, name string) ir.Classification {
	return ir.Classify(&ir.Form{Name: name, Fields: fields, AuthEnabled: authEnabled})
}

func TestSchemaRequiredCheckbox(t *testing.T) {
	f := ir.Field{Kind: ir.KindCheckbox, Name: "agree", Label: "Terms", Required: true}
	rule := zodRule(f, ir.Classification{})
	if !strings.Contains(rule, "z.boolean().refine((value) => value === true") {
		t.Fatalf("required checkbox must only pass on true: %s", rule)
	}
}

func TestSchemaOptionalCheckboxDefaultsFalse(t *testing.T) {
	f := ir.Field{Kind: ir.KindCheckbox, Name: "newsletter"}
	if got := zodRule(f, ir.Classification{}); got != "z.boolean().default(false)" {
		t.Fatalf("optional checkbox rule mismatch: %s", got)
	}
}

func TestSchemaEnumFollowsOptionOrder(t *testing.T) {
	f := ir.Field{
		Kind: ir.KindSelect, Name: "plan", Required: true,
		Options: []ir.Option{{Label: "Pro", Value: "pro"}, {Label: "Free", Value: "free"}},
	}
	if got := zodRule(f, ir.Classification{}); got != `z.enum(["pro", "free"])` {
		t.Fatalf("enum rule mismatch: %s", got)
	}
	f.Required = false
	if got := zodRule(f, ir.Classification{}); !strings.HasSuffix(got, ".optional()") {
		t.Fatalf("optional enum must wrap in optional(): %s", got)
	}
}

func TestSchemaDateBounds(t *testing.T) {
	f := ir.Field{Kind: ir.KindDate, Name: "birthday", Label: "Birthday", Required: true}
	rule := zodRule(f, ir.Classification{})
	if !strings.Contains(rule, `new Date("1900-01-01")`) {
		t.Fatalf("required date must carry the 1900-01-01 floor: %s", rule)
	}
	f.Required = false
	if got := zodRule(f, ir.Classification{}); got != "z.date().optional()" {
		t.Fatalf("optional date rule mismatch: %s", got)
	}
}

func TestSchemaFileBounds(t *testing.T) {
	f := ir.Field{Kind: ir.KindFile, Name: "photos", Label: "Photos", Required: true}
	rule := zodRule(f, ir.Classification{})
	for _, want := range []string{
		".min(1,",
		"file.size <= 5 * 1024 * 1024",
		`"image/png"`, `"image/jpeg"`, `"image/gif"`, `"image/webp"`,
	} {
		if !strings.Contains(rule, want) {
			t.Fatalf("file rule missing %q: %s", want, rule)
		}
	}
	// Size and type bounds apply even when the field is optional.
	f.Required = false
	rule = zodRule(f, ir.Classification{})
	if strings.Contains(rule, ".min(1,") {
		t.Fatalf("optional file must not require entries: %s", rule)
	}
	if !strings.Contains(rule, "5 * 1024 * 1024") {
		t.Fatalf("optional file keeps the size bound: %s", rule)
	}
}

func TestSchemaTextRules(t *testing.T) {
	cases := []struct {
		sub  ir.InputSubtype
		want string
	}{
		{ir.InputEmail, ".email("},
		{ir.InputURL, ".url("},
		{ir.InputPhone, ".regex("},
	}
	for _, tc := range cases {
		f := ir.Field{Kind: ir.KindInput, Name: "v", Label: "V", Required: true, Subtype: tc.sub}
		rule := zodRule(f, ir.Classification{})
		if !strings.Contains(rule, tc.want) || !strings.Contains(rule, ".min(1,") {
			t.Fatalf("subtype %s rule mismatch: %s", tc.sub, rule)
		}
	}

	optional := ir.Field{Kind: ir.KindInput, Name: "nickname", Label: "Nickname"}
	if got := zodRule(optional, ir.Classification{}); got != `z.string().optional().or(z.literal(""))` {
		t.Fatalf("optional string must accept the empty string: %s", got)
	}
}

func TestSchemaPasswordRuleOnlyOnAuthForms(t *testing.T) {
	pw := ir.Field{Kind: ir.KindInput, Name: "password", Label: "Password", Required: true, Subtype: ir.InputPassword}
	email := ir.Field{Kind: ir.KindInput, Name: "email", Required: true, Subtype: ir.InputEmail}

	authed := classify([]ir.Field{email, pw}, true, "")
	if got := zodRule(pw, authed); !strings.Contains(got, ".min(8,") {
		t.Fatalf("auth form password needs min length 8: %s", got)
	}

	plain := classify([]ir.Field{email, pw}, false, "")
	if got := zodRule(pw, plain); strings.Contains(got, ".min(8,") {
		t.Fatalf("password outside auth forms is a plain string: %s", got)
	}
}

func TestSchemaConfirmEqualityOnSignupOnly(t *testing.T) {
	fields := []ir.Field{
		{Kind: ir.KindInput, Name: "email", Required: true, Subtype: ir.InputEmail},
		{Kind: ir.KindInput, Name: "password", Required: true, Subtype: ir.InputPassword},
		{Kind: ir.KindInput, Name: "confirmPassword", Required: true, Subtype: ir.InputPassword},
	}
	out := Schema(fields, classify(fields, true, ""))
	if !strings.Contains(out, "data.password === data.confirmPassword") {
		t.Fatalf("signup schema needs the equality refinement:\n%s", out)
	}
	if !strings.Contains(out, `path: ["confirmPassword"]`) {
		t.Fatalf("equality refinement must attach to confirmPassword:\n%s", out)
	}

	out = Schema(fields, classify(fields, false, ""))
	if strings.Contains(out, "data.password === data.confirmPassword") {
		t.Fatalf("non-auth form must not get the refinement:\n%s", out)
	}
}

func TestSchemaEmitsTypeAlias(t *testing.T) {
	out := Schema([]ir.Field{{Kind: ir.KindInput, Name: "note"}}, ir.Classification{})
	if !strings.Contains(out, "type FormValues = z.infer<typeof formSchema>") {
		t.Fatalf("missing inferred type alias:\n%s", out)
	}
}
