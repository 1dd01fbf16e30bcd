package emitter

import (
	"fmt"
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// SubmitHandler synthesizes the onSubmit function for the component.
// Login and signup call the better-auth email primitives with a toast
// lifecycle; anything else logs the payload. The fragment is emitted at
// component-body indent (two spaces).
func SubmitHandler(c ir.Classification, fields []ir.Field, framework ir.Framework) string {
	switch {
	case c.IsLogin:
		return loginHandler()
	case c.IsSignup:
		return signupHandler(fields)
	default:
		return genericHandler()
	}
}

func loginHandler() string {
	var b strings.Builder
	b.WriteString("  async function onSubmit(values: FormValues) {\n")
	b.WriteString("    setIsSubmitting(true)\n")
	b.WriteString("    const toastId = toast.loading(\"Signing in...\")\n")
	b.WriteString("    await authClient.signIn.email(\n")
	b.WriteString("      {\n")
	b.WriteString("        email: values.email,\n")
	b.WriteString("        password: values.password,\n")
	b.WriteString("      },\n")
	b.WriteString("      {\n")
	b.WriteString("        onSuccess: () => {\n")
	b.WriteString("          toast.dismiss(toastId)\n")
	b.WriteString("          toast.success(\"Signed in successfully\")\n")
	b.WriteString("        },\n")
	b.WriteString("        onError: (ctx) => {\n")
	b.WriteString("          toast.dismiss(toastId)\n")
	b.WriteString("          toast.error(ctx.error.message)\n")
	b.WriteString("        },\n")
	b.WriteString("      }\n")
	b.WriteString("    )\n")
	b.WriteString("    setIsSubmitting(false)\n")
	b.WriteString("  }\n")
	return b.String()
}

func signupHandler(fields []ir.Field) string {
	// Display name comes from the first name-like field; without one the
	// local part of the email address stands in.
	nameExpr := `values.email.split("@")[0]`
	if f, ok := ir.DisplayNameField(fields); ok {
		nameExpr = "values." + f.Name
	}

	var b strings.Builder
	b.WriteString("  async function onSubmit(values: FormValues) {\n")
	b.WriteString("    setIsSubmitting(true)\n")
	b.WriteString("    const toastId = toast.loading(\"Creating your account...\")\n")
	b.WriteString("    await authClient.signUp.email(\n")
	b.WriteString("      {\n")
	fmt.Fprintf(&b, "        name: %s,\n", nameExpr)
	b.WriteString("        email: values.email,\n")
	b.WriteString("        password: values.password,\n")
	b.WriteString("      },\n")
	b.WriteString("      {\n")
	b.WriteString("        onSuccess: () => {\n")
	b.WriteString("          toast.dismiss(toastId)\n")
	b.WriteString("          toast.success(\"Account created successfully\")\n")
	b.WriteString("        },\n")
	b.WriteString("        onError: (ctx) => {\n")
	b.WriteString("          toast.dismiss(toastId)\n")
	b.WriteString("          toast.error(ctx.error.message)\n")
	b.WriteString("        },\n")
	b.WriteString("      }\n")
	b.WriteString("    )\n")
	b.WriteString("    setIsSubmitting(false)\n")
	b.WriteString("  }\n")
	return b.String()
}

func genericHandler() string {
	var b strings.Builder
	b.WriteString("  async function onSubmit(values: FormValues) {\n")
	b.WriteString("    setIsSubmitting(true)\n")
	b.WriteString("    try {\n")
	b.WriteString("      console.log(values)\n")
	b.WriteString("      toast.success(\"Form submitted successfully\")\n")
	b.WriteString("    } catch (error) {\n")
	b.WriteString("      toast.error(error instanceof Error ? error.message : \"Something went wrong\")\n")
	b.WriteString("    } finally {\n")
	b.WriteString("      setIsSubmitting(false)\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	return b.String()
}
