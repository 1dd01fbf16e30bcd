package compiler

// Version is the engine release tag, printed by the CLI and reported by
// the MCP server.
const Version = "0.3.0"
