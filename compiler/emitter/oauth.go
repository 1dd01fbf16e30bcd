package emitter

import (
	"fmt"
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// OAuthButtons renders one social sign-in button per provider, in the
// descriptor's order. Unknown provider ids still get a button; they just
// lose the icon. Emitted at indent zero.
func OAuthButtons(providers []string) string {
	ids := make([]string, 0, len(providers))
	for _, id := range providers {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<div className=\"mt-6 space-y-4\">\n")
	b.WriteString("  <div className=\"relative\">\n")
	b.WriteString("    <div className=\"absolute inset-0 flex items-center\">\n")
	b.WriteString("      <span className=\"w-full border-t\" />\n")
	b.WriteString("    </div>\n")
	b.WriteString("    <div className=\"relative flex justify-center text-xs uppercase\">\n")
	b.WriteString("      <span className=\"bg-background px-2 text-muted-foreground\">Or continue with</span>\n")
	b.WriteString("    </div>\n")
	b.WriteString("  </div>\n")
	b.WriteString("  <div className=\"grid gap-2\">\n")
	for _, id := range ids {
		label := strings.ToUpper(id[:1]) + id[1:]
		icon := ""
		if p, ok := ir.LookupProvider(id); ok {
			label = p.Label
			icon = p.Icon
		}
		fmt.Fprintf(&b, "    <Button type=\"button\" variant=\"outline\" className=\"w-full\" onClick={() => signInWithProvider(%q)}>\n", id)
		if icon != "" {
			fmt.Fprintf(&b, "      <%s className=\"mr-2 h-4 w-4\" />\n", icon)
		}
		fmt.Fprintf(&b, "      Continue with %s\n", label)
		b.WriteString("    </Button>\n")
	}
	b.WriteString("  </div>\n")
	b.WriteString("</div>")
	return b.String()
}
