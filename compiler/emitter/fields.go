package emitter

import (
	"fmt"
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// RenderField turns one field descriptor into a JSX fragment. It never
// fails: unknown kinds degrade to a comment placeholder so a descriptor
// from a newer editor still produces a usable file.
//
// Fragments are emitted at indent zero; the assembler shifts them into
// place.
func RenderField(f ir.Field, c ir.Classification) string {
	switch f.Kind {
	case ir.KindInput:
		return renderInput(f, c)
	case ir.KindTextarea:
		return renderTextarea(f)
	case ir.KindSelect:
		return renderSelect(f)
	case ir.KindCheckbox:
		return renderCheckbox(f)
	case ir.KindRadio:
		return renderRadio(f)
	case ir.KindDate:
		return renderDate(f)
	case ir.KindFile:
		return renderFile(f)
	default:
		return fmt.Sprintf("{/* unsupported field kind %q (%s) */}", string(f.Kind), f.Name)
	}
}

func renderInput(f ir.Field, c ir.Classification) string {
	if f.Subtype == ir.InputPassword {
		return renderPassword(f, c)
	}

	var b strings.Builder
	fieldOpen(&b, f.Name)
	b.WriteString("    <FormItem>\n")
	fmt.Fprintf(&b, "      <FormLabel>%s</FormLabel>\n", f.Label)
	b.WriteString("      <FormControl>\n")
	fmt.Fprintf(&b, "        <Input%s%s%s {...field} />\n", typeAttr(f.Subtype), placeholderAttr(f.Placeholder), autocompleteAttr(f.Subtype))
	b.WriteString("      </FormControl>\n")
	writeDescription(&b, f, 6)
	b.WriteString("      <FormMessage />\n")
	b.WriteString("    </FormItem>\n")
	fieldClose(&b)
	return b.String()
}

func renderPassword(f ir.Field, c ir.Classification) string {
	var b strings.Builder
	fieldOpen(&b, f.Name)
	b.WriteString("    <FormItem>\n")
	fmt.Fprintf(&b, "      <FormLabel>%s</FormLabel>\n", f.Label)
	b.WriteString("      <FormControl>\n")
	b.WriteString("        <div className=\"relative\">\n")
	fmt.Fprintf(&b, "          <Input type={showPassword ? \"text\" : \"password\"}%s autoComplete=\"%s\" {...field} />\n",
		placeholderAttr(f.Placeholder), passwordAutocomplete(f, c))
	b.WriteString("          <button\n")
	b.WriteString("            type=\"button\"\n")
	b.WriteString("            className=\"absolute right-3 top-1/2 -translate-y-1/2 text-muted-foreground\"\n")
	b.WriteString("            onClick={() => setShowPassword((current) => !current)}\n")
	b.WriteString("          >\n")
	b.WriteString("            {showPassword ? <EyeOff className=\"h-4 w-4\" /> : <Eye className=\"h-4 w-4\" />}\n")
	b.WriteString("          </button>\n")
	b.WriteString("        </div>\n")
	b.WriteString("      </FormControl>\n")
	if f.Name == "password" && c.IsSignup {
		b.WriteString("      {field.value ? (\n")
		b.WriteString("        <p className=\"text-xs text-muted-foreground\">\n")
		b.WriteString("          Password strength: {passwordStrength(field.value)}\n")
		b.WriteString("        </p>\n")
		b.WriteString("      ) : null}\n")
	}
	writeDescription(&b, f, 6)
	b.WriteString("      <FormMessage />\n")
	b.WriteString("    </FormItem>\n")
	fieldClose(&b)
	return b.String()
}

func renderTextarea(f ir.Field) string {
	var b strings.Builder
	fieldOpen(&b, f.Name)
	b.WriteString("    <FormItem>\n")
	fmt.Fprintf(&b, "      <FormLabel>%s</FormLabel>\n", f.Label)
	b.WriteString("      <FormControl>\n")
	fmt.Fprintf(&b, "        <Textarea%s className=\"resize-none\" rows={4} {...field} />\n", placeholderAttr(f.Placeholder))
	b.WriteString("      </FormControl>\n")
	writeDescription(&b, f, 6)
	b.WriteString("      <FormMessage />\n")
	b.WriteString("    </FormItem>\n")
	fieldClose(&b)
	return b.String()
}

// renderSelect binds through the explicit value/onValueChange pair; the
// shadcn Select is not a native input, so plain register won't do.
func renderSelect(f ir.Field) string {
	var b strings.Builder
	fieldOpen(&b, f.Name)
	b.WriteString("    <FormItem>\n")
	fmt.Fprintf(&b, "      <FormLabel>%s</FormLabel>\n", f.Label)
	b.WriteString("      <Select onValueChange={field.onChange} value={field.value}>\n")
	b.WriteString("        <FormControl>\n")
	b.WriteString("          <SelectTrigger>\n")
	fmt.Fprintf(&b, "            <SelectValue placeholder=\"%s\" />\n", selectPlaceholder(f))
	b.WriteString("          </SelectTrigger>\n")
	b.WriteString("        </FormControl>\n")
	b.WriteString("        <SelectContent>\n")
	for _, opt := range f.Options {
		fmt.Fprintf(&b, "          <SelectItem value=\"%s\">%s</SelectItem>\n", jsString(opt.Value), opt.Label)
	}
	b.WriteString("        </SelectContent>\n")
	b.WriteString("      </Select>\n")
	writeDescription(&b, f, 6)
	b.WriteString("      <FormMessage />\n")
	b.WriteString("    </FormItem>\n")
	fieldClose(&b)
	return b.String()
}

// renderCheckbox is a single boolean toggle. Boolean fields carry their
// requirement message through the schema refinement, not a message line.
func renderCheckbox(f ir.Field) string {
	var b strings.Builder
	fieldOpen(&b, f.Name)
	b.WriteString("    <FormItem className=\"flex flex-row items-start space-x-3 space-y-0 rounded-md border p-4\">\n")
	b.WriteString("      <FormControl>\n")
	b.WriteString("        <Checkbox checked={field.value} onCheckedChange={field.onChange} />\n")
	b.WriteString("      </FormControl>\n")
	b.WriteString("      <div className=\"space-y-1 leading-none\">\n")
	fmt.Fprintf(&b, "        <FormLabel>%s</FormLabel>\n", f.Label)
	writeDescription(&b, f, 8)
	b.WriteString("      </div>\n")
	b.WriteString("    </FormItem>\n")
	fieldClose(&b)
	return b.String()
}

func renderRadio(f ir.Field) string {
	var b strings.Builder
	fieldOpen(&b, f.Name)
	b.WriteString("    <FormItem className=\"space-y-3\">\n")
	fmt.Fprintf(&b, "      <FormLabel>%s</FormLabel>\n", f.Label)
	b.WriteString("      <FormControl>\n")
	b.WriteString("        <RadioGroup onValueChange={field.onChange} value={field.value} className=\"flex flex-col space-y-1\">\n")
	for _, opt := range f.Options {
		b.WriteString("          <FormItem className=\"flex items-center space-x-3 space-y-0\">\n")
		b.WriteString("            <FormControl>\n")
		fmt.Fprintf(&b, "              <RadioGroupItem value=\"%s\" />\n", jsString(opt.Value))
		b.WriteString("            </FormControl>\n")
		fmt.Fprintf(&b, "            <FormLabel className=\"font-normal\">%s</FormLabel>\n", opt.Label)
		b.WriteString("          </FormItem>\n")
	}
	b.WriteString("        </RadioGroup>\n")
	b.WriteString("      </FormControl>\n")
	writeDescription(&b, f, 6)
	b.WriteString("      <FormMessage />\n")
	b.WriteString("    </FormItem>\n")
	fieldClose(&b)
	return b.String()
}

// renderDate disables future dates and anything before 1900-01-01. The
// bound is fixed product behavior, not configurable per field.
func renderDate(f ir.Field) string {
	placeholder := f.Placeholder
	if placeholder == "" {
		placeholder = "Pick a date"
	}
	var b strings.Builder
	fieldOpen(&b, f.Name)
	b.WriteString("    <FormItem className=\"flex flex-col\">\n")
	fmt.Fprintf(&b, "      <FormLabel>%s</FormLabel>\n", f.Label)
	b.WriteString("      <Popover>\n")
	b.WriteString("        <PopoverTrigger asChild>\n")
	b.WriteString("          <FormControl>\n")
	b.WriteString("            <Button\n")
	b.WriteString("              variant=\"outline\"\n")
	b.WriteString("              className={cn(\"w-full pl-3 text-left font-normal\", !field.value && \"text-muted-foreground\")}\n")
	b.WriteString("            >\n")
	fmt.Fprintf(&b, "              {field.value ? format(field.value, \"PPP\") : <span>%s</span>}\n", placeholder)
	b.WriteString("              <CalendarIcon className=\"ml-auto h-4 w-4 opacity-50\" />\n")
	b.WriteString("            </Button>\n")
	b.WriteString("          </FormControl>\n")
	b.WriteString("        </PopoverTrigger>\n")
	b.WriteString("        <PopoverContent className=\"w-auto p-0\" align=\"start\">\n")
	b.WriteString("          <Calendar\n")
	b.WriteString("            mode=\"single\"\n")
	b.WriteString("            selected={field.value}\n")
	b.WriteString("            onSelect={field.onChange}\n")
	b.WriteString("            disabled={(date) => date > new Date() || date < new Date(\"1900-01-01\")}\n")
	b.WriteString("          />\n")
	b.WriteString("        </PopoverContent>\n")
	b.WriteString("      </Popover>\n")
	writeDescription(&b, f, 6)
	b.WriteString("      <FormMessage />\n")
	b.WriteString("    </FormItem>\n")
	fieldClose(&b)
	return b.String()
}

// renderFile uses the input's native multi-file mechanism; no controller
// indirection and no preview.
func renderFile(f ir.Field) string {
	var b strings.Builder
	fieldOpen(&b, f.Name)
	b.WriteString("    <FormItem>\n")
	fmt.Fprintf(&b, "      <FormLabel>%s</FormLabel>\n", f.Label)
	b.WriteString("      <FormControl>\n")
	b.WriteString("        <Input\n")
	b.WriteString("          type=\"file\"\n")
	b.WriteString("          multiple\n")
	b.WriteString("          onChange={(event) => field.onChange(Array.from(event.target.files ?? []))}\n")
	b.WriteString("        />\n")
	b.WriteString("      </FormControl>\n")
	writeDescription(&b, f, 6)
	b.WriteString("      <FormMessage />\n")
	b.WriteString("    </FormItem>\n")
	fieldClose(&b)
	return b.String()
}

func fieldOpen(b *strings.Builder, name string) {
	b.WriteString("<FormField\n")
	b.WriteString("  control={form.control}\n")
	fmt.Fprintf(b, "  name=\"%s\"\n", name)
	b.WriteString("  render={({ field }) => (\n")
}

func fieldClose(b *strings.Builder) {
	b.WriteString("  )}\n")
	b.WriteString("/>")
}

func writeDescription(b *strings.Builder, f ir.Field, indent int) {
	if f.Description == "" {
		return
	}
	pad := strings.Repeat(" ", indent)
	fmt.Fprintf(b, "%s<FormDescription>%s</FormDescription>\n", pad, f.Description)
}

func typeAttr(sub ir.InputSubtype) string {
	switch sub {
	case ir.InputEmail, ir.InputPhone, ir.InputURL, ir.InputNumber:
		return fmt.Sprintf(" type=%q", string(sub))
	default:
		return ""
	}
}

func placeholderAttr(placeholder string) string {
	if placeholder == "" {
		return ""
	}
	return fmt.Sprintf(" placeholder=\"%s\"", jsString(placeholder))
}

func autocompleteAttr(sub ir.InputSubtype) string {
	if sub == ir.InputEmail {
		return " autoComplete=\"email\""
	}
	return ""
}

func passwordAutocomplete(f ir.Field, c ir.Classification) string {
	if c.IsSignup || f.Name == "confirmPassword" {
		return "new-password"
	}
	return "current-password"
}

func selectPlaceholder(f ir.Field) string {
	if f.Placeholder != "" {
		return jsString(f.Placeholder)
	}
	return "Select an option"
}
