package emitter

import (
	"strings"
	"testing"

	"github.com/formsmith/formsmith/compiler/ir"
)

func loginForm() *ir.Form {
	return &ir.Form{
		Name:        "Login",
		Framework:   ir.FrameworkNext,
		AuthEnabled: true,
		Fields: []ir.Field{
			{Kind: ir.KindInput, Name: "email", Label: "Email", Subtype: ir.InputEmail, Required: true},
			{Kind: ir.KindInput, Name: "password", Label: "Password", Subtype: ir.InputPassword, Required: true},
		},
	}
}

func signupForm() *ir.Form {
	f := loginForm()
	f.Name = "Sign Up"
	f.Fields = append(f.Fields, ir.Field{
		Kind: ir.KindInput, Name: "confirmPassword", Label: "Confirm password",
		Subtype: ir.InputPassword, Required: true,
	})
	return f
}

func TestComponentLoginFlow(t *testing.T) {
	out := Component(loginForm())

	if !strings.Contains(out, "authClient.signIn.email(") {
		t.Fatalf("login component must call signIn.email:\n%s", out)
	}
	if strings.Contains(out, "authClient.signUp.email(") {
		t.Fatalf("login component must not call signUp.email")
	}
	if strings.Contains(out, "passwordStrength") {
		t.Fatalf("login component must not carry the strength meter")
	}
	if !strings.Contains(out, `"Signing in..." : "Sign in"`) {
		t.Fatalf("login submit labels missing:\n%s", out)
	}
	if !strings.Contains(out, "export function LoginForm()") {
		t.Fatalf("component export name wrong:\n%s", out)
	}
}

func TestComponentSignupFlow(t *testing.T) {
	out := Component(signupForm())

	if !strings.Contains(out, "authClient.signUp.email(") {
		t.Fatalf("signup component must call signUp.email:\n%s", out)
	}
	if !strings.Contains(out, "data.password === data.confirmPassword") {
		t.Fatalf("signup schema must compare password fields:\n%s", out)
	}
	if !strings.Contains(out, "function passwordStrength(") {
		t.Fatalf("signup component carries the strength helper:\n%s", out)
	}
	if !strings.Contains(out, `values.email.split("@")[0]`) {
		t.Fatalf("signup without a display-name field derives name from email:\n%s", out)
	}
	if !strings.Contains(out, `"Creating account..." : "Create account"`) {
		t.Fatalf("signup submit label missing:\n%s", out)
	}
}

func TestComponentSignupUsesNameField(t *testing.T) {
	f := signupForm()
	f.Fields = append([]ir.Field{
		{Kind: ir.KindInput, Name: "fullName", Label: "Full name", Required: true},
	}, f.Fields...)
	out := Component(f)
	if !strings.Contains(out, "name: values.fullName") {
		t.Fatalf("signup must pass the display-name field:\n%s", out)
	}
	if strings.Contains(out, `split("@")`) {
		t.Fatalf("email fallback must not appear when a name field exists")
	}
}

func TestComponentGenericSubmit(t *testing.T) {
	form := &ir.Form{
		Name:      "Feedback",
		Framework: ir.FrameworkReact,
		Fields: []ir.Field{
			{Kind: ir.KindTextarea, Name: "message", Label: "Message", Required: true},
		},
	}
	out := Component(form)
	if strings.Contains(out, "authClient") {
		t.Fatalf("non-auth form must not touch the auth client:\n%s", out)
	}
	if !strings.Contains(out, "console.log(values)") {
		t.Fatalf("generic handler logs the values:\n%s", out)
	}
	if !strings.Contains(out, `"Submitting..." : "Submit"`) {
		t.Fatalf("generic submit label missing:\n%s", out)
	}
}

func TestComponentSteppedNavigation(t *testing.T) {
	form := &ir.Form{
		Name:      "Onboarding",
		Framework: ir.FrameworkNext,
		Steps: []ir.Step{
			{ID: "who", Title: "About you", Fields: []ir.Field{
				{Kind: ir.KindInput, Name: "name", Label: "Name", Required: true},
			}},
			{ID: "detail", Title: "Details", Fields: []ir.Field{
				{Kind: ir.KindTextarea, Name: "bio", Label: "Bio"},
			}},
		},
	}
	out := Component(form)

	for _, want := range []string{
		"const steps = [",
		"form.trigger(steps[step].fields as (keyof FormValues)[])",
		"Math.min(current + 1, steps.length - 1)",
		"Math.max(current - 1, 0)",
		"<Progress value={((step + 1) / steps.length) * 100}",
		`step !== 0 && "hidden"`,
		`step !== 1 && "hidden"`,
		"onClick={prevStep} disabled={step === 0}",
		"onClick={nextStep}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("stepped component missing %q:\n%s", want, out)
		}
	}
	// All steps stay mounted so form state survives navigation.
	if !strings.Contains(out, `name="name"`) || !strings.Contains(out, `name="bio"`) {
		t.Fatalf("every step's fields must render:\n%s", out)
	}
}

func TestComponentOAuthButtons(t *testing.T) {
	f := loginForm()
	f.OAuthProviders = []string{"github", "google"}
	out := Component(f)
	for _, want := range []string{
		"Or continue with",
		`signInWithProvider("github")`,
		`signInWithProvider("google")`,
		"<FaGithub",
		"<FcGoogle",
		"function signInWithProvider(",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("oauth section missing %q:\n%s", want, out)
		}
	}
}

func TestOAuthButtonsSkipEmptyIds(t *testing.T) {
	if out := OAuthButtons([]string{""}); out != "" {
		t.Fatalf("empty provider ids must render nothing, got:\n%s", out)
	}
	out := OAuthButtons([]string{"", "github"})
	if !strings.Contains(out, `signInWithProvider("github")`) {
		t.Fatalf("github button missing:\n%s", out)
	}
	if strings.Contains(out, `signInWithProvider("")`) {
		t.Fatalf("empty provider id rendered a button:\n%s", out)
	}
}
