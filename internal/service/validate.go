package service

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/formsmith/formsmith/compiler/ir"
)

var validate = validator.New()

// Field names become schema keys and binding identifiers verbatim.
var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateDescriptor checks descriptor well-formedness at the service
// boundary. The engine itself stays best-effort; everything that should
// fail loudly fails here.
func ValidateDescriptor(form *ir.Form) error {
	if form == nil {
		return fmt.Errorf("descriptor is required")
	}
	if err := validate.Var(form.Name, "required"); err != nil {
		return fmt.Errorf("form name is required")
	}
	if err := validate.Var(string(form.Framework), "required,oneof=next react tanstack remix"); err != nil {
		return fmt.Errorf("unknown framework %q", form.Framework)
	}
	if form.AuthEnabled {
		if err := validate.Var(string(form.Database), "required,oneof=prisma drizzle"); err != nil {
			return fmt.Errorf("unknown database adapter %q", form.Database)
		}
	}
	if len(form.Fields) == 0 && len(form.Steps) == 0 {
		return fmt.Errorf("descriptor has no fields")
	}
	if len(form.Steps) > 0 {
		// Steps win; a flat field list left alongside them is ignored by
		// the engine, so it is not inspected here either.
		for i, s := range form.Steps {
			if len(s.Fields) == 0 {
				return fmt.Errorf("step %d (%s) has no fields", i, s.Title)
			}
			for _, f := range s.Fields {
				if err := validateField(f); err != nil {
					return fmt.Errorf("step %d: %w", i, err)
				}
			}
		}
	} else {
		for _, f := range form.Fields {
			if err := validateField(f); err != nil {
				return err
			}
		}
	}
	for _, p := range form.OAuthProviders {
		if err := validate.Var(p, "required"); err != nil {
			return fmt.Errorf("oauth provider id must not be empty")
		}
	}
	for _, p := range form.AuthPlugins {
		if err := validate.Var(string(p), "oneof=two-factor organization passkey magic-link username admin"); err != nil {
			return fmt.Errorf("unknown auth plugin %q", p)
		}
	}
	return nil
}

func validateField(f ir.Field) error {
	if !identifierRE.MatchString(f.Name) {
		return fmt.Errorf("field name %q is not identifier-safe", f.Name)
	}
	if err := validate.Var(string(f.Kind), "required,oneof=input textarea select checkbox radio date file"); err != nil {
		return fmt.Errorf("field %s: unknown kind %q", f.Name, f.Kind)
	}
	if f.Subtype != "" {
		if err := validate.Var(string(f.Subtype), "oneof=text email password tel url number"); err != nil {
			return fmt.Errorf("field %s: unknown input subtype %q", f.Name, f.Subtype)
		}
	}
	if f.Kind == ir.KindSelect || f.Kind == ir.KindRadio {
		if len(f.Options) == 0 {
			return fmt.Errorf("field %s: %s needs at least one option", f.Name, f.Kind)
		}
		for _, o := range f.Options {
			if err := validate.Var(o.Value, "required"); err != nil {
				return fmt.Errorf("field %s: option with empty value", f.Name)
			}
		}
	}
	return nil
}
