package emitter

import (
	"fmt"
	"strings"

	"github.com/formsmith/formsmith/compiler/ir"
)

// AuthConfig is the input to the server-side auth synthesizer.
type AuthConfig struct {
	Providers        []string
	HasEmailPassword bool
	Database         ir.DatabaseAdapter
	Framework        ir.Framework
	Plugins          []ir.AuthPlugin
}

type pluginMeta struct {
	ServerName string
	ServerPath string
	ClientName string
}

// Plugin catalog. Emission order always follows ir.AuthPlugins, not the
// descriptor's set order.
var plugins = map[ir.AuthPlugin]pluginMeta{
	ir.PluginTwoFactor:    {ServerName: "twoFactor", ServerPath: "better-auth/plugins", ClientName: "twoFactorClient"},
	ir.PluginOrganization: {ServerName: "organization", ServerPath: "better-auth/plugins", ClientName: "organizationClient"},
	ir.PluginPasskey:      {ServerName: "passkey", ServerPath: "better-auth/plugins/passkey", ClientName: "passkeyClient"},
	ir.PluginMagicLink:    {ServerName: "magicLink", ServerPath: "better-auth/plugins", ClientName: "magicLinkClient"},
	ir.PluginUsername:     {ServerName: "username", ServerPath: "better-auth/plugins", ClientName: "usernameClient"},
	ir.PluginAdmin:        {ServerName: "admin", ServerPath: "better-auth/plugins", ClientName: "adminClient"},
}

func enabledPlugins(set []ir.AuthPlugin) []ir.AuthPlugin {
	enabled := make(map[ir.AuthPlugin]bool, len(set))
	for _, p := range set {
		enabled[p] = true
	}
	var out []ir.AuthPlugin
	for _, p := range ir.AuthPlugins {
		if enabled[p] {
			out = append(out, p)
		}
	}
	return out
}

// EnvAccess renders the framework-appropriate environment accessor:
// process.env for server-rendered targets, import.meta.env with the
// VITE_ prefix for the build-tool-injected ones.
func EnvAccess(framework ir.Framework, name string) string {
	if framework.UsesProcessEnv() {
		return fmt.Sprintf("process.env.%s as string", name)
	}
	return fmt.Sprintf("import.meta.env.VITE_%s", name)
}

// Auth synthesizes the server-side better-auth configuration module.
func Auth(cfg AuthConfig) string {
	ordered := enabledPlugins(cfg.Plugins)

	var b strings.Builder
	b.WriteString("import { betterAuth } from \"better-auth\"\n")
	switch cfg.Database {
	case ir.AdapterDrizzle:
		b.WriteString("import { drizzleAdapter } from \"better-auth/adapters/drizzle\"\n")
	default:
		b.WriteString("import { prismaAdapter } from \"better-auth/adapters/prisma\"\n")
	}
	for _, p := range ordered {
		meta := plugins[p]
		fmt.Fprintf(&b, "import { %s } from %q\n", meta.ServerName, meta.ServerPath)
	}
	switch cfg.Database {
	case ir.AdapterDrizzle:
		b.WriteString("import { db } from \"@/db\"\n")
	default:
		b.WriteString("import { prisma } from \"@/lib/db\"\n")
	}
	b.WriteString("\n")
	b.WriteString("export const auth = betterAuth({\n")
	switch cfg.Database {
	case ir.AdapterDrizzle:
		b.WriteString("  database: drizzleAdapter(db, {\n")
		b.WriteString("    provider: \"pg\",\n")
		b.WriteString("  }),\n")
	default:
		b.WriteString("  database: prismaAdapter(prisma, {\n")
		b.WriteString("    provider: \"postgresql\",\n")
		b.WriteString("  }),\n")
	}
	if cfg.HasEmailPassword {
		b.WriteString("  emailAndPassword: {\n")
		b.WriteString("    enabled: true,\n")
		b.WriteString("  },\n")
	}
	if len(cfg.Providers) > 0 {
		b.WriteString("  socialProviders: {\n")
		for _, id := range cfg.Providers {
			envBase := strings.ToUpper(id)
			fmt.Fprintf(&b, "    %s: {\n", id)
			fmt.Fprintf(&b, "      clientId: %s,\n", EnvAccess(cfg.Framework, envBase+"_CLIENT_ID"))
			fmt.Fprintf(&b, "      clientSecret: %s,\n", EnvAccess(cfg.Framework, envBase+"_CLIENT_SECRET"))
			b.WriteString("    },\n")
		}
		b.WriteString("  },\n")
	}
	if len(ordered) > 0 {
		calls := make([]string, len(ordered))
		for i, p := range ordered {
			calls[i] = plugins[p].ServerName + "()"
		}
		fmt.Fprintf(&b, "  plugins: [%s],\n", strings.Join(calls, ", "))
	}
	b.WriteString("})\n")
	return b.String()
}
