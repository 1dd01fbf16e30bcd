package emitter

import (
	"fmt"
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// Component assembles the full form component file: imports, schema,
// utilities, then the component function with either the flat
// validate-then-submit body or the stepped state machine.
func Component(form *ir.Form) string {
	c := ir.Classify(form)
	ft := AnalyzeFeatures(form)
	fields := form.FlatFields()

	var b strings.Builder
	b.WriteString(Imports(form, c))
	b.WriteString("\n")
	b.WriteString(Schema(fields, c))
	b.WriteString("\n")
	if util := Utilities(c, ft.HasOAuth); util != "" {
		b.WriteString(util)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "export function %s() {\n", componentName(form))
	b.WriteString("  const [isSubmitting, setIsSubmitting] = useState(false)\n")
	if ft.HasPassword {
		b.WriteString("  const [showPassword, setShowPassword] = useState(false)\n")
	}
	if ft.HasSteps {
		b.WriteString("  const [step, setStep] = useState(0)\n")
	}
	b.WriteString("\n")
	writeFormHook(&b, fields)
	b.WriteString("\n")
	b.WriteString(SubmitHandler(c, fields, form.Framework))
	if ft.HasSteps {
		b.WriteString("\n")
		writeStepMachine(&b, form.Steps)
	}
	b.WriteString("\n")
	writeReturn(&b, form, c, ft)
	b.WriteString("}\n")
	return b.String()
}

func componentName(form *ir.Form) string {
	name := ExportName(form.Name)
	if name == "" {
		return "GeneratedForm"
	}
	if !strings.HasSuffix(name, "Form") {
		name += "Form"
	}
	return name
}

func writeFormHook(b *strings.Builder, fields []ir.Field) {
	b.WriteString("  const form = useForm<FormValues>({\n")
	b.WriteString("    resolver: zodResolver(formSchema),\n")
	b.WriteString("    defaultValues: {\n")
	for _, f := range fields {
		fmt.Fprintf(b, "      %s: %s,\n", f.Name, defaultValue(f))
	}
	b.WriteString("    },\n")
	b.WriteString("  })\n")
}

func defaultValue(f ir.Field) string {
	switch f.Kind {
	case ir.KindCheckbox:
		return "false"
	case ir.KindFile:
		return "[]"
	case ir.KindSelect, ir.KindRadio, ir.KindDate:
		return "undefined"
	default:
		return `""`
	}
}

// writeStepMachine emits the step table and the next/back transitions.
// next validates only the current step's fields and clamps at the last
// index; back never validates and clamps at zero.
func writeStepMachine(b *strings.Builder, steps []ir.Step) {
	b.WriteString("  const steps = [\n")
	for _, s := range steps {
		names := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			names[i] = fmt.Sprintf("%q", f.Name)
		}
		fmt.Fprintf(b, "    { title: %q, fields: [%s] },\n", s.Title, strings.Join(names, ", "))
	}
	b.WriteString("  ]\n")
	b.WriteString("\n")
	b.WriteString("  async function nextStep() {\n")
	b.WriteString("    const valid = await form.trigger(steps[step].fields as (keyof FormValues)[])\n")
	b.WriteString("    if (valid) {\n")
	b.WriteString("      setStep((current) => Math.min(current + 1, steps.length - 1))\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("\n")
	b.WriteString("  function prevStep() {\n")
	b.WriteString("    setStep((current) => Math.max(current - 1, 0))\n")
	b.WriteString("  }\n")
}

func writeReturn(b *strings.Builder, form *ir.Form, c ir.Classification, ft Features) {
	b.WriteString("  return (\n")
	b.WriteString("    <Card className=\"mx-auto w-full max-w-lg\">\n")
	b.WriteString("      <CardHeader>\n")
	fmt.Fprintf(b, "        <CardTitle>%s</CardTitle>\n", form.Name)
	if form.Description != "" {
		fmt.Fprintf(b, "        <CardDescription>%s</CardDescription>\n", form.Description)
	}
	b.WriteString("      </CardHeader>\n")
	b.WriteString("      <CardContent>\n")
	b.WriteString("        <Form {...form}>\n")
	b.WriteString("          <form onSubmit={form.handleSubmit(onSubmit)} className=\"space-y-6\">\n")
	if ft.HasSteps {
		writeSteppedBody(b, form, c)
	} else {
		for _, f := range form.Fields {
			b.WriteString(indentBlock(RenderField(f, c), 12))
			b.WriteString("\n")
		}
		writeSubmitButton(b, c)
	}
	b.WriteString("          </form>\n")
	b.WriteString("        </Form>\n")
	if oauth := OAuthButtons(form.OAuthProviders); oauth != "" {
		b.WriteString(indentBlock(oauth, 8))
		b.WriteString("\n")
	}
	b.WriteString("      </CardContent>\n")
	b.WriteString("    </Card>\n")
	b.WriteString("  )\n")
}

// Steps stay mounted and hide via cn so field state survives navigation.
func writeSteppedBody(b *strings.Builder, form *ir.Form, c ir.Classification) {
	b.WriteString("            <Progress value={((step + 1) / steps.length) * 100} />\n")
	for i, s := range form.Steps {
		fmt.Fprintf(b, "            <div className={cn(\"space-y-6\", step !== %d && \"hidden\")}>\n", i)
		b.WriteString("              <div>\n")
		fmt.Fprintf(b, "                <h3 className=\"text-lg font-medium\">%s</h3>\n", s.Title)
		if s.Description != "" {
			fmt.Fprintf(b, "                <p className=\"text-sm text-muted-foreground\">%s</p>\n", s.Description)
		}
		b.WriteString("              </div>\n")
		for _, f := range s.Fields {
			b.WriteString(indentBlock(RenderField(f, c), 14))
			b.WriteString("\n")
		}
		b.WriteString("            </div>\n")
	}
	b.WriteString("            <div className=\"flex justify-between\">\n")
	b.WriteString("              <Button type=\"button\" variant=\"outline\" onClick={prevStep} disabled={step === 0}>\n")
	b.WriteString("                Back\n")
	b.WriteString("              </Button>\n")
	b.WriteString("              {step < steps.length - 1 ? (\n")
	b.WriteString("                <Button type=\"button\" onClick={nextStep}>\n")
	b.WriteString("                  Next\n")
	b.WriteString("                </Button>\n")
	b.WriteString("              ) : (\n")
	idle, busy := submitLabels(c)
	b.WriteString("                <Button type=\"submit\" disabled={isSubmitting}>\n")
	fmt.Fprintf(b, "                  {isSubmitting ? %q : %q}\n", busy, idle)
	b.WriteString("                </Button>\n")
	b.WriteString("              )}\n")
	b.WriteString("            </div>\n")
}

func writeSubmitButton(b *strings.Builder, c ir.Classification) {
	idle, busy := submitLabels(c)
	b.WriteString("            <Button type=\"submit\" className=\"w-full\" disabled={isSubmitting}>\n")
	fmt.Fprintf(b, "              {isSubmitting ? %q : %q}\n", busy, idle)
	b.WriteString("            </Button>\n")
}

func submitLabels(c ir.Classification) (idle, busy string) {
	switch {
	case c.IsLogin:
		return "Sign in", "Signing in..."
	case c.IsSignup:
		return "Create account", "Creating account..."
	default:
		return "Submit", "Submitting..."
	}
}
