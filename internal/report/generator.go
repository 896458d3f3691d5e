// Package report renders calculation results.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sivchari/calc/internal/config"
)

// Operation names a calculator operation.
type Operation string

// Supported operations.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
)

// Symbol returns the infix operator for op.
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	default:
		return string(op)
	}
}

// Result is the outcome of a single operation.
type Result struct {
	Operation Operation `json:"operation"`
	A         int       `json:"a"`
	B         int       `json:"b"`
	Value     int       `json:"result"`
}

// Generator handles result rendering.
type Generator struct {
	config *config.Config
}

// New creates a new report generator.
func New(cfg *config.Config) *Generator {
	return &Generator{
		config: cfg,
	}
}

// Write renders r to w, or to the configured output file when one is set.
func (g *Generator) Write(w io.Writer, r Result) error {
	var buf bytes.Buffer

	switch g.config.Output.Format {
	case config.FormatJSON:
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}

		buf.Write(data)
		buf.WriteByte('\n')
	default:
		fmt.Fprintf(&buf, "%d %s %d = %d\n", r.A, r.Operation.Symbol(), r.B, r.Value)
	}

	if g.config.Output.File != "" {
		if err := os.WriteFile(g.config.Output.File, buf.Bytes(), 0600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		return nil
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
