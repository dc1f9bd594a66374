// Package cli provides common utilities for the soundbed command-line
// tools.
//
// This package includes:
//   - Mixing profile management (named policy presets)
//   - Output formatting (JSON, YAML)
//   - Request file loading (YAML/JSON)
//   - Terminal styling for run reports
//
// Configuration is stored in ~/.soundbed/, supporting multiple named
// profiles similar to kubectl contexts.
package cli
