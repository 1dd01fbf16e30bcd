// Package compiler assembles generated fragments into a complete bundle.
// Generation is a pure function of the descriptor: no I/O, no state, and
// byte-identical output for identical input.
package compiler

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/formsmith/formsmith/compiler/emitter"
	"github.com/formsmith/formsmith/compiler/ir"
)

// File is one generated artifact.
type File struct {
	Path     string `json:"path"`
	Contents string `json:"-"`
}

// Bundle is the complete output of one generation call.
type Bundle struct {
	Files        []File   `json:"files"`
	Dependencies []string `json:"dependencies"`
}

// Generate runs the full pipeline over a descriptor. The engine does not
// validate the descriptor; malformed input produces best-effort text
// (an empty dropdown, never an error).
func Generate(form *ir.Form) Bundle {
	c := ir.Classify(form)

	var files []File
	files = append(files, File{
		Path:     "components/" + kebabCase(componentFileBase(form)) + ".tsx",
		Contents: emitter.Component(form),
	})

	if form.AuthEnabled {
		files = append(files, File{
			Path: "lib/auth.ts",
			Contents: emitter.Auth(emitter.AuthConfig{
				Providers:        form.OAuthProviders,
				HasEmailPassword: c.HasEmail && c.HasPassword,
				Database:         form.Database,
				Framework:        form.Framework,
				Plugins:          form.AuthPlugins,
			}),
		})
		files = append(files, File{
			Path:     "lib/auth-client.ts",
			Contents: emitter.AuthClient(form.Framework, form.AuthPlugins),
		})
		switch form.Database {
		case ir.AdapterDrizzle:
			files = append(files,
				File{Path: "db/schema.ts", Contents: emitter.DatabaseSchema(form.Database)},
				File{Path: "db/index.ts", Contents: emitter.DatabaseClient(form.Database, form.Framework)},
			)
		default:
			files = append(files,
				File{Path: "prisma/schema.prisma", Contents: emitter.DatabaseSchema(form.Database)},
				File{Path: "lib/db.ts", Contents: emitter.DatabaseClient(form.Database, form.Framework)},
			)
		}
	}

	return Bundle{
		Files:        files,
		Dependencies: dependencies(form),
	}
}

// dependencies lists the npm packages the generated code imports,
// sorted for stable manifests.
func dependencies(form *ir.Form) []string {
	ft := emitter.AnalyzeFeatures(form)
	deps := map[string]bool{
		"react-hook-form":     true,
		"zod":                 true,
		"@hookform/resolvers": true,
		"sonner":              true,
		"lucide-react":        true,
	}
	if ft.HasDate {
		deps["date-fns"] = true
	}
	if ft.HasOAuth {
		deps["react-icons"] = true
	}
	if form.AuthEnabled {
		deps["better-auth"] = true
		switch form.Database {
		case ir.AdapterDrizzle:
			deps["drizzle-orm"] = true
			deps["pg"] = true
		default:
			deps["@prisma/client"] = true
			deps["prisma"] = true
		}
	}
	out := make([]string, 0, len(deps))
	for d := range deps {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Manifest renders the bundle's installable file manifest as JSON.
func Manifest(form *ir.Form, b Bundle) (string, error) {
	manifest := struct {
		Form         string   `json:"form"`
		Framework    string   `json:"framework"`
		Database     string   `json:"database"`
		Files        []string `json:"files"`
		Dependencies []string `json:"dependencies"`
	}{
		Form:         form.Name,
		Framework:    string(form.Framework),
		Database:     string(form.Database),
		Dependencies: b.Dependencies,
	}
	for _, f := range b.Files {
		manifest.Files = append(manifest.Files, f.Path)
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	return string(data) + "\n", nil
}

// GenerateFormComponent returns the full component file text.
func GenerateFormComponent(form *ir.Form) string {
	return emitter.Component(form)
}

// GenerateValidationSchema returns the zod declaration and type alias
// for a field list. authEnabled feeds classification so password rules
// behave as they would inside a full descriptor.
func GenerateValidationSchema(fields []ir.Field, authEnabled bool) string {
	form := &ir.Form{Fields: fields, AuthEnabled: authEnabled}
	return emitter.Schema(fields, ir.Classify(form))
}

// GenerateAuthConfig returns the server-side auth configuration module.
func GenerateAuthConfig(cfg emitter.AuthConfig) string {
	return emitter.Auth(cfg)
}

// GenerateAuthClient returns the client-side auth handle module.
func GenerateAuthClient(framework ir.Framework, set []ir.AuthPlugin) string {
	return emitter.AuthClient(framework, set)
}

// GenerateDatabaseSchema returns the adapter's schema file.
func GenerateDatabaseSchema(adapter ir.DatabaseAdapter) string {
	return emitter.DatabaseSchema(adapter)
}

// GenerateDatabaseClient returns the connection bootstrap file.
func GenerateDatabaseClient(adapter ir.DatabaseAdapter, framework ir.Framework) string {
	return emitter.DatabaseClient(adapter, framework)
}

func componentFileBase(form *ir.Form) string {
	name := emitter.ExportName(form.Name)
	if name == "" {
		return "generated-form"
	}
	if !strings.HasSuffix(name, "Form") {
		name += "Form"
	}
	return name
}

func kebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
