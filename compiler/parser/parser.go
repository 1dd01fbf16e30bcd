// Package parser loads form descriptors from JSON, YAML, or CUE files.
// It only decodes; descriptor well-formedness is the caller's concern.
package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/formsmith/formsmith/compiler/ir"
)

// LoadFile reads and decodes a descriptor, dispatching on extension.
func LoadFile(path string) (*ir.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".cue":
		return ParseCUE(data, path)
	default:
		return nil, fmt.Errorf("unsupported descriptor format %q", filepath.Ext(path))
	}
}

// ParseJSON decodes a JSON descriptor. Unknown keys are rejected so a
// typo in the editor payload fails loudly instead of dropping a field.
func ParseJSON(data []byte) (*ir.Form, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	var form ir.Form
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("decode descriptor json: %w", err)
	}
	return &form, nil
}

// ParseYAML decodes a YAML descriptor.
func ParseYAML(data []byte) (*ir.Form, error) {
	var form ir.Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("decode descriptor yaml: %w", err)
	}
	return &form, nil
}

// ParseCUE compiles a CUE descriptor and decodes the concrete value.
func ParseCUE(data []byte, filename string) (*ir.Form, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile descriptor cue: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate descriptor cue: %w", err)
	}
	var form ir.Form
	if err := v.Decode(&form); err != nil {
		return nil, fmt.Errorf("decode descriptor cue: %w", err)
	}
	return &form, nil
}
