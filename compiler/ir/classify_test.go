package ir

import "testing"

func field(kind FieldKind, name string, sub InputSubtype) Field {
	return Field{Kind: kind, Name: name, Subtype: sub, Required: true}
}

func TestClassifyLogin(t *testing.T) {
	form := &Form{
		Name:        "Welcome back",
		AuthEnabled: true,
		Fields: []Field{
			field(KindInput, "email", InputEmail),
			field(KindInput, "password", InputPassword),
		},
	}
	c := Classify(form)
	if !c.IsLogin || c.IsSignup {
		t.Fatalf("expected login classification, got %+v", c)
	}
	if !c.IsAuthForm() {
		t.Fatal("login form must be an auth form")
	}
}

func TestClassifySignupPrecedence(t *testing.T) {
	// Confirm field and no signup wording must still classify as signup.
	form := &Form{
		Name:        "Welcome back",
		AuthEnabled: true,
		Fields: []Field{
			field(KindInput, "email", InputEmail),
			field(KindInput, "password", InputPassword),
			field(KindInput, "confirmPassword", InputPassword),
		},
	}
	c := Classify(form)
	if !c.IsSignup {
		t.Fatalf("expected signup, got %+v", c)
	}
	if c.IsLogin {
		t.Fatal("signup must exclude login")
	}
}

func TestClassifySignupByTitle(t *testing.T) {
	form := &Form{
		Name:        "Create your account",
		AuthEnabled: true,
		Fields: []Field{
			field(KindInput, "email", InputEmail),
			field(KindInput, "password", InputPassword),
		},
	}
	if c := Classify(form); !c.IsSignup {
		t.Fatalf("title should tip classification to signup, got %+v", c)
	}
}

func TestClassifySignupByNameHint(t *testing.T) {
	form := &Form{
		Name:        "Account",
		AuthEnabled: true,
		Fields: []Field{
			field(KindInput, "fullName", InputText),
			field(KindInput, "email", InputEmail),
			field(KindInput, "password", InputPassword),
		},
	}
	if c := Classify(form); !c.IsSignup || !c.HasNameHint {
		t.Fatalf("name hint should tip classification to signup, got %+v", Classify(form))
	}
}

func TestClassifyAuthDisabled(t *testing.T) {
	form := &Form{
		Name: "Sign up",
		Fields: []Field{
			field(KindInput, "email", InputEmail),
			field(KindInput, "password", InputPassword),
		},
	}
	c := Classify(form)
	if c.IsAuthForm() {
		t.Fatalf("auth disabled must never classify as auth form: %+v", c)
	}
	if !c.HasEmail || !c.HasPassword {
		t.Fatal("field detection should still run with auth disabled")
	}
}

func TestClassifySubtypeDetection(t *testing.T) {
	// Detection keys on subtype as well as literal names.
	form := &Form{
		AuthEnabled: true,
		Fields: []Field{
			field(KindInput, "workEmail", InputEmail),
			field(KindInput, "secret", InputPassword),
		},
	}
	c := Classify(form)
	if !c.HasEmail || !c.HasPassword {
		t.Fatalf("subtype detection failed: %+v", c)
	}
	if !c.IsLogin {
		t.Fatalf("expected login, got %+v", c)
	}
}

func TestFlatFieldsStepped(t *testing.T) {
	form := &Form{
		Fields: []Field{field(KindInput, "ignored", InputText)},
		Steps: []Step{
			{ID: "one", Fields: []Field{field(KindInput, "a", InputText), field(KindInput, "b", InputText)}},
			{ID: "two", Fields: []Field{field(KindTextarea, "c", "")}},
		},
	}
	flat := form.FlatFields()
	if len(flat) != 3 {
		t.Fatalf("expected 3 flattened fields, got %d", len(flat))
	}
	if flat[0].Name != "a" || flat[2].Name != "c" {
		t.Fatalf("step order not preserved: %+v", flat)
	}
}

func TestDisplayNameFieldOrder(t *testing.T) {
	fields := []Field{
		field(KindInput, "email", InputEmail),
		field(KindInput, "username", InputText),
		field(KindInput, "firstName", InputText),
	}
	got, ok := DisplayNameField(fields)
	if !ok || got.Name != "username" {
		t.Fatalf("expected first hint match username, got %v %v", got.Name, ok)
	}
	if _, ok := DisplayNameField(fields[:1]); ok {
		t.Fatal("email alone must not match a name hint")
	}
}
