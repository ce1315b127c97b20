// Package driving declares the use cases the CLI, TUI and MCP adapters call
// into: catalog loading, search, rendering, study list, settings and result
// actions. internal/core/services provides the implementations.
package driving
