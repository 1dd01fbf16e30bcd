package emitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// Features records which optional import groups a form pulls in.
type Features struct {
	HasTextarea bool
	HasSelect   bool
	HasCheckbox bool
	HasRadio    bool
	HasDate     bool
	HasFile     bool
	HasPassword bool
	HasSteps    bool
	HasOAuth    bool
}

// AnalyzeFeatures walks the flattened field list once and computes the
// conditional import groups.
func AnalyzeFeatures(form *ir.Form) Features {
	ft := Features{
		HasSteps: form.Stepped(),
		HasOAuth: len(form.OAuthProviders) > 0,
	}
	for _, f := range form.FlatFields() {
		switch f.Kind {
		case ir.KindTextarea:
			ft.HasTextarea = true
		case ir.KindSelect:
			ft.HasSelect = true
		case ir.KindCheckbox:
			ft.HasCheckbox = true
		case ir.KindRadio:
			ft.HasRadio = true
		case ir.KindDate:
			ft.HasDate = true
		case ir.KindFile:
			ft.HasFile = true
		case ir.KindInput:
			if f.Subtype == ir.InputPassword {
				ft.HasPassword = true
			}
		}
	}
	return ft
}

// Imports computes the import block for the component file: a fixed
// baseline plus one group per feature in play. The set is minimal; a
// text-only flat form imports none of the optional component modules.
func Imports(form *ir.Form, c ir.Classification) string {
	ft := AnalyzeFeatures(form)

	var b strings.Builder
	if form.Framework.UsesClientDirective() {
		b.WriteString("\"use client\"\n\n")
	}

	b.WriteString("import { useState } from \"react\"\n")
	b.WriteString("import { useForm } from \"react-hook-form\"\n")
	b.WriteString("import { zodResolver } from \"@hookform/resolvers/zod\"\n")
	b.WriteString("import { z } from \"zod\"\n")
	if ft.HasDate {
		b.WriteString("import { format } from \"date-fns\"\n")
	}
	if icons := lucideIcons(ft); len(icons) > 0 {
		fmt.Fprintf(&b, "import { %s } from \"lucide-react\"\n", strings.Join(icons, ", "))
	}
	b.WriteString("import { toast } from \"sonner\"\n")

	// Baseline UI: submit button, card container, labeled input scaffolding.
	b.WriteString("import { Button } from \"@/components/ui/button\"\n")
	b.WriteString("import { Card, CardContent, CardDescription, CardHeader, CardTitle } from \"@/components/ui/card\"\n")
	if ft.HasDate {
		b.WriteString("import { Calendar } from \"@/components/ui/calendar\"\n")
	}
	if ft.HasCheckbox {
		b.WriteString("import { Checkbox } from \"@/components/ui/checkbox\"\n")
	}
	b.WriteString("import { Form, FormControl, FormDescription, FormField, FormItem, FormLabel, FormMessage } from \"@/components/ui/form\"\n")
	b.WriteString("import { Input } from \"@/components/ui/input\"\n")
	if ft.HasDate {
		b.WriteString("import { Popover, PopoverContent, PopoverTrigger } from \"@/components/ui/popover\"\n")
	}
	if ft.HasSteps {
		b.WriteString("import { Progress } from \"@/components/ui/progress\"\n")
	}
	if ft.HasRadio {
		b.WriteString("import { RadioGroup, RadioGroupItem } from \"@/components/ui/radio-group\"\n")
	}
	if ft.HasSelect {
		b.WriteString("import { Select, SelectContent, SelectItem, SelectTrigger, SelectValue } from \"@/components/ui/select\"\n")
	}
	if ft.HasTextarea {
		b.WriteString("import { Textarea } from \"@/components/ui/textarea\"\n")
	}
	if ft.HasSteps || ft.HasDate {
		b.WriteString("import { cn } from \"@/lib/utils\"\n")
	}
	if c.IsAuthForm() || ft.HasOAuth {
		b.WriteString("import { authClient } from \"@/lib/auth-client\"\n")
	}
	for _, line := range providerIconImports(form.OAuthProviders) {
		b.WriteString(line + "\n")
	}
	return b.String()
}

func lucideIcons(ft Features) []string {
	var icons []string
	if ft.HasDate {
		icons = append(icons, "CalendarIcon")
	}
	if ft.HasPassword {
		icons = append(icons, "Eye", "EyeOff")
	}
	return icons
}

// providerIconImports groups the descriptor's providers by icon module,
// skipping ids missing from the catalog. Order follows the module path.
func providerIconImports(providers []string) []string {
	byModule := make(map[string][]string)
	seen := make(map[string]bool)
	for _, id := range providers {
		p, ok := ir.LookupProvider(id)
		if !ok || seen[p.Icon] {
			continue
		}
		seen[p.Icon] = true
		byModule[p.ImportPath] = append(byModule[p.ImportPath], p.Icon)
	}

	modules := make([]string, 0, len(byModule))
	for m := range byModule {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	lines := make([]string, 0, len(modules))
	for _, m := range modules {
		lines = append(lines, fmt.Sprintf("import { %s } from %q", strings.Join(byModule[m], ", "), m))
	}
	return lines
}
