package emitter

import (
	"strings"
	"testing"

	"github.com/formsmith/formsmith/compiler/ir"
)

func TestImportsMinimalForTextOnlyForm(t *testing.T) {
	form := &ir.Form{
		Name:      "Contact",
		Framework: ir.FrameworkReact,
		Fields: []ir.Field{
			{Kind: ir.KindInput, Name: "name", Required: true},
			{Kind: ir.KindInput, Name: "subject"},
		},
	}
	out := Imports(form, ir.Classify(form))
	for _, banned := range []string{"ui/select", "ui/checkbox", "ui/radio-group", "ui/progress", "ui/calendar", "ui/popover", "ui/textarea", "date-fns", "auth-client", "react-icons"} {
		if strings.Contains(out, banned) {
			t.Fatalf("text-only form must not import %s:\n%s", banned, out)
		}
	}
	for _, want := range []string{"ui/button", "ui/card", "ui/form", "ui/input", "sonner", "react-hook-form", "@hookform/resolvers/zod"} {
		if !strings.Contains(out, want) {
			t.Fatalf("baseline import %s missing:\n%s", want, out)
		}
	}
}

func TestImportsClientDirectivePerFramework(t *testing.T) {
	form := &ir.Form{Fields: []ir.Field{{Kind: ir.KindInput, Name: "a"}}}
	cases := map[ir.Framework]bool{
		ir.FrameworkNext:     true,
		ir.FrameworkRemix:    true,
		ir.FrameworkReact:    false,
		ir.FrameworkTanstack: false,
	}
	for fw, want := range cases {
		form.Framework = fw
		out := Imports(form, ir.Classify(form))
		got := strings.HasPrefix(out, "\"use client\"\n")
		if got != want {
			t.Fatalf("framework %s: client directive = %v, want %v", fw, got, want)
		}
	}
}

func TestImportsSteppedAddsProgressAndCn(t *testing.T) {
	form := &ir.Form{
		Framework: ir.FrameworkNext,
		Steps: []ir.Step{
			{ID: "a", Fields: []ir.Field{{Kind: ir.KindInput, Name: "x"}}},
		},
	}
	out := Imports(form, ir.Classify(form))
	if !strings.Contains(out, "ui/progress") || !strings.Contains(out, `{ cn } from "@/lib/utils"`) {
		t.Fatalf("stepped form needs progress indicator and cn helper:\n%s", out)
	}
}

func TestImportsDateGroup(t *testing.T) {
	form := &ir.Form{
		Framework: ir.FrameworkNext,
		Fields:    []ir.Field{{Kind: ir.KindDate, Name: "when"}},
	}
	out := Imports(form, ir.Classify(form))
	for _, want := range []string{`{ format } from "date-fns"`, "ui/calendar", "ui/popover", "CalendarIcon"} {
		if !strings.Contains(out, want) {
			t.Fatalf("date group missing %s:\n%s", want, out)
		}
	}
}

func TestImportsOAuthIconsGroupedByModule(t *testing.T) {
	form := &ir.Form{
		Framework:      ir.FrameworkReact,
		OAuthProviders: []string{"github", "google", "discord"},
		Fields:         []ir.Field{{Kind: ir.KindInput, Name: "a"}},
	}
	out := Imports(form, ir.Classify(form))
	if !strings.Contains(out, `import { FaGithub, FaDiscord } from "react-icons/fa"`) {
		t.Fatalf("fa icons must share one import line:\n%s", out)
	}
	if !strings.Contains(out, `import { FcGoogle } from "react-icons/fc"`) {
		t.Fatalf("fc module gets its own line:\n%s", out)
	}
	if !strings.Contains(out, "auth-client") {
		t.Fatalf("oauth pulls the auth client handle:\n%s", out)
	}
}

func TestAnalyzeFeaturesWalksSteps(t *testing.T) {
	form := &ir.Form{
		Steps: []ir.Step{
			{Fields: []ir.Field{{Kind: ir.KindInput, Name: "p", Subtype: ir.InputPassword}}},
			{Fields: []ir.Field{{Kind: ir.KindSelect, Name: "s"}, {Kind: ir.KindFile, Name: "f"}}},
		},
	}
	ft := AnalyzeFeatures(form)
	if !ft.HasPassword || !ft.HasSelect || !ft.HasFile || !ft.HasSteps {
		t.Fatalf("feature analysis missed stepped fields: %+v", ft)
	}
}
