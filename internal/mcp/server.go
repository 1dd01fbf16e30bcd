package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/formsmith/formsmith/compiler"
	"github.com/formsmith/formsmith/compiler/ir"
	"github.com/formsmith/formsmith/compiler/parser"
	"github.com/formsmith/formsmith/internal/service"
)

// Report is the unified tool response envelope.
type Report struct {
	Status    string            `json:"status"`
	Summary   []string          `json:"summary,omitempty"`
	Artifacts map[string]string `json:"artifacts,omitempty"`
}

func (r *Report) ToJSON() string {
	b, _ := json.MarshalIndent(r, "", "  ")
	return string(b)
}

func decodeDescriptorArg(request mcp.CallToolRequest) (*ir.Form, error) {
	raw := strings.TrimSpace(mcp.ParseString(request, "descriptor", ""))
	if raw == "" {
		return nil, fmt.Errorf("descriptor is required")
	}
	form, err := parser.ParseJSON([]byte(raw))
	if err != nil {
		return nil, err
	}
	if err := service.ValidateDescriptor(form); err != nil {
		return nil, err
	}
	return form, nil
}

func Run() {
	s := server.NewMCPServer(
		"Formsmith MCP Server",
		compiler.Version,
		server.WithLogging(),
	)

	s.AddTool(mcp.NewTool("generate_form",
		mcp.WithDescription("Compile a form descriptor into the full source bundle: component, auth config, auth client, database schema and client"),
		mcp.WithString("descriptor", mcp.Required(), mcp.Description("Form descriptor as JSON")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		form, err := decodeDescriptorArg(request)
		if err != nil {
			return mcp.NewToolResultText((&Report{Status: "Invalid", Summary: []string{err.Error()}}).ToJSON()), nil
		}

		bundle := compiler.Generate(form)
		report := &Report{
			Status:    "Generated",
			Summary:   []string{fmt.Sprintf("%d files, %d npm dependencies", len(bundle.Files), len(bundle.Dependencies))},
			Artifacts: make(map[string]string, len(bundle.Files)+1),
		}
		for _, f := range bundle.Files {
			report.Artifacts[f.Path] = f.Contents
		}
		if manifest, err := compiler.Manifest(form, bundle); err == nil {
			report.Artifacts["manifest.json"] = manifest
		}
		return mcp.NewToolResultText(report.ToJSON()), nil
	})

	s.AddTool(mcp.NewTool("classify_form",
		mcp.WithDescription("Classify a form descriptor: auth field detection, signup vs login intent"),
		mcp.WithString("descriptor", mcp.Required(), mcp.Description("Form descriptor as JSON")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		form, err := decodeDescriptorArg(request)
		if err != nil {
			return mcp.NewToolResultText((&Report{Status: "Invalid", Summary: []string{err.Error()}}).ToJSON()), nil
		}

		c := ir.Classify(form)
		b, _ := json.MarshalIndent(c, "", "  ")
		report := &Report{
			Status:    "Classified",
			Artifacts: map[string]string{"classification": string(b)},
		}
		switch {
		case c.IsSignup:
			report.Summary = append(report.Summary, "Descriptor reads as a signup form.")
		case c.IsLogin:
			report.Summary = append(report.Summary, "Descriptor reads as a login form.")
		default:
			report.Summary = append(report.Summary, "Descriptor is a plain data form.")
		}
		return mcp.NewToolResultText(report.ToJSON()), nil
	})

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("Server error: %v\n", err)
	}
}
