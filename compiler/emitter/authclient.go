package emitter

import (
	"fmt"
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// AuthClient synthesizes the client-side auth handle module. Each
// enabled plugin adds its client counterpart, in enumeration order.
func AuthClient(framework ir.Framework, set []ir.AuthPlugin) string {
	ordered := enabledPlugins(set)

	var b strings.Builder
	b.WriteString("import { createAuthClient } from \"better-auth/react\"\n")
	for _, p := range ordered {
		fmt.Fprintf(&b, "import { %s } from \"better-auth/client/plugins\"\n", plugins[p].ClientName)
	}
	b.WriteString("\n")
	b.WriteString("export const authClient = createAuthClient({\n")
	fmt.Fprintf(&b, "  baseURL: %s,\n", baseURLAccess(framework))
	if len(ordered) > 0 {
		calls := make([]string, len(ordered))
		for i, p := range ordered {
			calls[i] = plugins[p].ClientName + "()"
		}
		fmt.Fprintf(&b, "  plugins: [%s],\n", strings.Join(calls, ", "))
	}
	b.WriteString("})\n")
	return b.String()
}

func baseURLAccess(framework ir.Framework) string {
	if framework.UsesProcessEnv() {
		return "process.env.BETTER_AUTH_URL"
	}
	return "import.meta.env.VITE_BETTER_AUTH_URL"
}
