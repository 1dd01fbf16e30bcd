package emitter

import (
	"strings"
	"testing"

	"github.com/formsmith/formsmith/compiler/ir"
)

func TestRenderFieldUnknownKindDegrades(t *testing.T) {
	out := RenderField(ir.Field{Kind: "hologram", Name: "x"}, ir.Classification{})
	if !strings.HasPrefix(out, "{/*") || !strings.Contains(out, "hologram") {
		t.Fatalf("unknown kind must degrade to a comment placeholder: %s", out)
	}
}

func TestRenderInputEmail(t *testing.T) {
	out := RenderField(ir.Field{
		Kind: ir.KindInput, Name: "email", Label: "Email",
		Placeholder: "you@example.com", Subtype: ir.InputEmail, Required: true,
	}, ir.Classification{})
	for _, want := range []string{
		`name="email"`,
		`type="email"`,
		`autoComplete="email"`,
		`placeholder="you@example.com"`,
		"<FormMessage />",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("email input missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPasswordToggle(t *testing.T) {
	out := RenderField(ir.Field{
		Kind: ir.KindInput, Name: "password", Label: "Password", Subtype: ir.InputPassword, Required: true,
	}, ir.Classification{IsLogin: true})
	if !strings.Contains(out, "setShowPassword((current) => !current)") {
		t.Fatalf("password field needs a visibility toggle:\n%s", out)
	}
	if strings.Contains(out, "passwordStrength") {
		t.Fatalf("login password must not render a strength meter:\n%s", out)
	}
}

func TestRenderPasswordStrengthMeterOnSignup(t *testing.T) {
	signup := ir.Classification{IsSignup: true}
	out := RenderField(ir.Field{Kind: ir.KindInput, Name: "password", Subtype: ir.InputPassword}, signup)
	if !strings.Contains(out, "passwordStrength(field.value)") {
		t.Fatalf("signup password field feeds the strength meter:\n%s", out)
	}

	// Only the field literally named password gets the meter.
	out = RenderField(ir.Field{Kind: ir.KindInput, Name: "confirmPassword", Subtype: ir.InputPassword}, signup)
	if strings.Contains(out, "passwordStrength") {
		t.Fatalf("confirm field must not render a meter:\n%s", out)
	}
}

func TestRenderSelectUsesControllerBinding(t *testing.T) {
	out := RenderField(ir.Field{
		Kind: ir.KindSelect, Name: "country", Label: "Country", Required: true,
		Options: []ir.Option{{Label: "Latvia", Value: "lv"}, {Label: "Brazil", Value: "br"}},
	}, ir.Classification{})
	if !strings.Contains(out, "onValueChange={field.onChange} value={field.value}") {
		t.Fatalf("select binds through the explicit get/set pair:\n%s", out)
	}
	lv := strings.Index(out, `value="lv"`)
	br := strings.Index(out, `value="br"`)
	if lv == -1 || br == -1 || lv > br {
		t.Fatalf("option order must follow the descriptor:\n%s", out)
	}
}

func TestRenderCheckboxHasNoMessageLine(t *testing.T) {
	out := RenderField(ir.Field{Kind: ir.KindCheckbox, Name: "agree", Label: "I agree", Required: true}, ir.Classification{})
	if strings.Contains(out, "<FormMessage />") {
		t.Fatalf("boolean fields carry no message line:\n%s", out)
	}
	if !strings.Contains(out, "checked={field.value} onCheckedChange={field.onChange}") {
		t.Fatalf("checkbox binds through the get/set pair:\n%s", out)
	}
}

func TestRenderRadioOnePerOption(t *testing.T) {
	out := RenderField(ir.Field{
		Kind: ir.KindRadio, Name: "size", Label: "Size",
		Options: []ir.Option{{Label: "Small", Value: "s"}, {Label: "Large", Value: "l"}},
	}, ir.Classification{})
	if strings.Count(out, "<RadioGroupItem") != 2 {
		t.Fatalf("radio renders one item per option:\n%s", out)
	}
}

func TestRenderDateFixedBounds(t *testing.T) {
	out := RenderField(ir.Field{Kind: ir.KindDate, Name: "birthday", Label: "Birthday"}, ir.Classification{})
	if !strings.Contains(out, `date > new Date() || date < new Date("1900-01-01")`) {
		t.Fatalf("date picker must disable future and pre-1900 dates:\n%s", out)
	}
	if !strings.Contains(out, "Pick a date") {
		t.Fatalf("empty placeholder falls back to the default trigger text:\n%s", out)
	}
}

func TestRenderFileNativeBinding(t *testing.T) {
	out := RenderField(ir.Field{Kind: ir.KindFile, Name: "photos", Label: "Photos"}, ir.Classification{})
	if !strings.Contains(out, `type="file"`) || !strings.Contains(out, "multiple") {
		t.Fatalf("file field uses the native multi-file input:\n%s", out)
	}
	if !strings.Contains(out, "Array.from(event.target.files ?? [])") {
		t.Fatalf("file list converts through Array.from:\n%s", out)
	}
}

func TestRenderDescriptionCaption(t *testing.T) {
	withDesc := RenderField(ir.Field{Kind: ir.KindInput, Name: "note", Label: "Note", Description: "Optional context"}, ir.Classification{})
	if !strings.Contains(withDesc, "<FormDescription>Optional context</FormDescription>") {
		t.Fatalf("description must render as a caption:\n%s", withDesc)
	}
	without := RenderField(ir.Field{Kind: ir.KindInput, Name: "note", Label: "Note"}, ir.Classification{})
	if strings.Contains(without, "FormDescription") {
		t.Fatalf("no caption without description text:\n%s", without)
	}
}
