package compiler

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/formsmith/formsmith/compiler/ir"
)

func registrationForm() *ir.Form {
	return &ir.Form{
		Name:           "Create Account",
		Description:    "Sign up for the service",
		Framework:      ir.FrameworkNext,
		Database:       ir.AdapterPrisma,
		AuthEnabled:    true,
		OAuthProviders: []string{"github", "google"},
		AuthPlugins:    []ir.AuthPlugin{ir.PluginPasskey, ir.PluginTwoFactor},
		Fields: []ir.Field{
			{Kind: ir.KindInput, Name: "fullName", Label: "Full name", Required: true},
			{Kind: ir.KindInput, Name: "email", Label: "Email", Subtype: ir.InputEmail, Required: true},
			{Kind: ir.KindInput, Name: "password", Label: "Password", Subtype: ir.InputPassword, Required: true},
			{Kind: ir.KindInput, Name: "confirmPassword", Label: "Confirm password", Subtype: ir.InputPassword, Required: true},
			{Kind: ir.KindDate, Name: "birthday", Label: "Birthday"},
		},
	}
}

func TestGenerateAuthBundleLayout(t *testing.T) {
	b := Generate(registrationForm())

	paths := make([]string, len(b.Files))
	for i, f := range b.Files {
		paths[i] = f.Path
	}
	want := []string{
		"components/create-account-form.tsx",
		"lib/auth.ts",
		"lib/auth-client.ts",
		"prisma/schema.prisma",
		"lib/db.ts",
	}
	if len(paths) != len(want) {
		t.Fatalf("file set = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("file %d = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestGenerateDrizzleBundleLayout(t *testing.T) {
	form := registrationForm()
	form.Database = ir.AdapterDrizzle
	b := Generate(form)

	var hasSchema, hasClient bool
	for _, f := range b.Files {
		switch f.Path {
		case "db/schema.ts":
			hasSchema = true
		case "db/index.ts":
			hasClient = true
		case "prisma/schema.prisma", "lib/db.ts":
			t.Fatalf("prisma artifact %s in a drizzle bundle", f.Path)
		}
	}
	if !hasSchema || !hasClient {
		t.Fatalf("drizzle artifacts missing: %+v", b.Files)
	}
}

func TestGenerateNonAuthBundleIsComponentOnly(t *testing.T) {
	form := &ir.Form{
		Name:      "Feedback",
		Framework: ir.FrameworkReact,
		Fields:    []ir.Field{{Kind: ir.KindTextarea, Name: "message", Label: "Message", Required: true}},
	}
	b := Generate(form)
	if len(b.Files) != 1 || b.Files[0].Path != "components/feedback-form.tsx" {
		t.Fatalf("non-auth bundle = %+v", b.Files)
	}
	for _, d := range b.Dependencies {
		if d == "better-auth" || strings.Contains(d, "prisma") {
			t.Fatalf("non-auth bundle must not depend on %s", d)
		}
	}
}

func TestDependenciesSortedAndConditional(t *testing.T) {
	b := Generate(registrationForm())
	if !sortedStrings(b.Dependencies) {
		t.Fatalf("dependencies not sorted: %v", b.Dependencies)
	}
	for _, want := range []string{"better-auth", "@prisma/client", "prisma", "react-icons", "date-fns", "react-hook-form", "zod"} {
		if !containsString(b.Dependencies, want) {
			t.Fatalf("dependency %s missing from %v", want, b.Dependencies)
		}
	}
	if containsString(b.Dependencies, "drizzle-orm") {
		t.Fatalf("prisma bundle must not depend on drizzle-orm")
	}
}

func TestManifestLists(t *testing.T) {
	form := registrationForm()
	b := Generate(form)
	out, err := Manifest(form, b)
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	var m struct {
		Form         string   `json:"form"`
		Framework    string   `json:"framework"`
		Files        []string `json:"files"`
		Dependencies []string `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("manifest is not valid json: %v\n%s", err, out)
	}
	if m.Form != "Create Account" || m.Framework != "next" {
		t.Fatalf("manifest header wrong: %+v", m)
	}
	if len(m.Files) != len(b.Files) || len(m.Dependencies) != len(b.Dependencies) {
		t.Fatalf("manifest lists incomplete: %+v", m)
	}
}

func TestGenerateValidationSchemaStandalone(t *testing.T) {
	out := GenerateValidationSchema([]ir.Field{
		{Kind: ir.KindInput, Name: "email", Label: "Email", Subtype: ir.InputEmail, Required: true},
		{Kind: ir.KindInput, Name: "password", Label: "Password", Subtype: ir.InputPassword, Required: true},
	}, true)
	if !strings.Contains(out, "const formSchema = z.object({") {
		t.Fatalf("schema declaration missing:\n%s", out)
	}
	if !strings.Contains(out, "min(8,") {
		t.Fatalf("authEnabled must activate the password length rule:\n%s", out)
	}
}

func TestDeterministicBundleAcrossTenRuns(t *testing.T) {
	form := registrationForm()
	form.Steps = []ir.Step{
		{ID: "identity", Title: "Identity", Fields: form.Fields[:2]},
		{ID: "security", Title: "Security", Fields: form.Fields[2:]},
	}
	form.Fields = nil

	var baseline string
	for i := 0; i < 10; i++ {
		h := hashBundle(Generate(form))
		if i == 0 {
			baseline = h
			continue
		}
		if h != baseline {
			t.Fatalf("non-deterministic generation detected on run %d: baseline=%s current=%s", i+1, baseline, h)
		}
	}
}

func hashBundle(b Bundle) string {
	sum := sha256.New()
	for _, f := range b.Files {
		sum.Write([]byte(f.Path))
		sum.Write([]byte{0})
		sum.Write([]byte(f.Contents))
		sum.Write([]byte{0})
	}
	for _, d := range b.Dependencies {
		sum.Write([]byte(d))
		sum.Write([]byte{0})
	}
	return hex.EncodeToString(sum.Sum(nil))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
