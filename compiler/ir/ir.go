// Package ir defines the declarative form description consumed by the
// emitters. It knows nothing about React, zod, or any generated syntax.
// A descriptor is a pure value: the whole pipeline is a function of it.
package ir

// FieldKind enumerates the supported form controls.
type FieldKind string

const (
	KindInput    FieldKind = "input"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindCheckbox FieldKind = "checkbox"
	KindRadio    FieldKind = "radio"
	KindDate     FieldKind = "date"
	KindFile     FieldKind = "file"
)

// InputSubtype narrows KindInput to a semantic input type.
type InputSubtype string

const (
	InputText     InputSubtype = "text"
	InputEmail    InputSubtype = "email"
	InputPassword InputSubtype = "password"
	InputPhone    InputSubtype = "tel"
	InputURL      InputSubtype = "url"
	InputNumber   InputSubtype = "number"
)

// Framework identifies the generation target.
type Framework string

const (
	FrameworkNext     Framework = "next"
	FrameworkReact    Framework = "react"
	FrameworkTanstack Framework = "tanstack"
	FrameworkRemix    Framework = "remix"
)

// Frameworks lists the supported targets in a stable order.
var Frameworks = []Framework{FrameworkNext, FrameworkReact, FrameworkTanstack, FrameworkRemix}

// UsesClientDirective reports whether the target's rendering model needs
// an explicit client-side opt-in prologue in generated components.
func (f Framework) UsesClientDirective() bool {
	return f == FrameworkNext || f == FrameworkRemix
}

// UsesProcessEnv reports whether the target reads configuration through
// the process environment. The other targets get build-tool injection
// (import.meta.env with a VITE_ prefix).
func (f Framework) UsesProcessEnv() bool {
	return f == FrameworkNext || f == FrameworkRemix
}

// DatabaseAdapter selects the flavor of the emitted schema/client pair.
type DatabaseAdapter string

const (
	AdapterPrisma  DatabaseAdapter = "prisma"
	AdapterDrizzle DatabaseAdapter = "drizzle"
)

// AuthPlugin is an optional better-auth capability. Each enabled plugin
// contributes one import line and one instantiation line to both the
// server config and the client handle.
type AuthPlugin string

const (
	PluginTwoFactor    AuthPlugin = "two-factor"
	PluginOrganization AuthPlugin = "organization"
	PluginPasskey      AuthPlugin = "passkey"
	PluginMagicLink    AuthPlugin = "magic-link"
	PluginUsername     AuthPlugin = "username"
	PluginAdmin        AuthPlugin = "admin"
)

// AuthPlugins is the fixed enumeration order; emitted plugin lines follow it.
var AuthPlugins = []AuthPlugin{
	PluginTwoFactor,
	PluginOrganization,
	PluginPasskey,
	PluginMagicLink,
	PluginUsername,
	PluginAdmin,
}

// Option is one selectable entry of a select or radio field.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Field describes one form input.
//
// Name is used verbatim as the schema key and the binding variable, so it
// must be identifier-safe; the engine does not sanitize it.
type Field struct {
	Kind        FieldKind    `json:"kind" yaml:"kind"`
	Name        string       `json:"name" yaml:"name"`
	Label       string       `json:"label" yaml:"label"`
	Placeholder string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool         `json:"required" yaml:"required"`
	Subtype     InputSubtype `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Options     []Option     `json:"options,omitempty" yaml:"options,omitempty"`
}

// Step groups fields for multi-step forms. A form is either flat or
// stepped, never both at render time.
type Step struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Form is the root generation input.
type Form struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Fields drives rendering when no steps are given. When Steps is
	// non-empty the renderer uses the steps and every other decision
	// (schema, classification, imports) uses FlatFields.
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
	Steps  []Step  `json:"steps,omitempty" yaml:"steps,omitempty"`

	OAuthProviders []string        `json:"oauthProviders,omitempty" yaml:"oauthProviders,omitempty"`
	Framework      Framework       `json:"framework" yaml:"framework"`
	Database       DatabaseAdapter `json:"database" yaml:"database"`
	AuthEnabled    bool            `json:"authEnabled" yaml:"authEnabled"`
	AuthPlugins    []AuthPlugin    `json:"authPlugins,omitempty" yaml:"authPlugins,omitempty"`
}

// Stepped reports whether the form renders one step at a time.
func (f *Form) Stepped() bool {
	return len(f.Steps) > 0
}

// FlatFields returns every step's fields concatenated in order, or the
// flat field list when the form has no steps.
func (f *Form) FlatFields() []Field {
	if !f.Stepped() {
		return f.Fields
	}
	var out []Field
	for _, s := range f.Steps {
		out = append(out, s.Fields...)
	}
	return out
}

// OAuthProvider is one row of the static provider table.
type OAuthProvider struct {
	ID    string
	Label string
	// Icon is the react-icons component name; ImportPath its module.
	Icon       string
	ImportPath string
}

// OAuthProviders is the immutable provider catalog. Button order in the
// generated markup follows the descriptor list, not this table.
var OAuthProviders = []OAuthProvider{
	{ID: "github", Label: "GitHub", Icon: "FaGithub", ImportPath: "react-icons/fa"},
	{ID: "google", Label: "Google", Icon: "FcGoogle", ImportPath: "react-icons/fc"},
	{ID: "discord", Label: "Discord", Icon: "FaDiscord", ImportPath: "react-icons/fa"},
	{ID: "facebook", Label: "Facebook", Icon: "FaFacebook", ImportPath: "react-icons/fa"},
	{ID: "apple", Label: "Apple", Icon: "FaApple", ImportPath: "react-icons/fa"},
	{ID: "microsoft", Label: "Microsoft", Icon: "FaMicrosoft", ImportPath: "react-icons/fa"},
	{ID: "twitter", Label: "X", Icon: "FaXTwitter", ImportPath: "react-icons/fa6"},
	{ID: "twitch", Label: "Twitch", Icon: "FaTwitch", ImportPath: "react-icons/fa"},
	{ID: "gitlab", Label: "GitLab", Icon: "FaGitlab", ImportPath: "react-icons/fa"},
	{ID: "linkedin", Label: "LinkedIn", Icon: "FaLinkedin", ImportPath: "react-icons/fa"},
}

// LookupProvider resolves a provider id against the catalog.
func LookupProvider(id string) (OAuthProvider, bool) {
	for _, p := range OAuthProviders {
		if p.ID == id {
			return p, true
		}
	}
	return OAuthProvider{}, false
}
