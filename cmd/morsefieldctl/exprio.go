package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/morsefield/kernel/internal/field"
	"github.com/morsefield/kernel/internal/protocol"
)

// readExpr loads an ExprWire JSON document from path, or from stdin if
// path is "-" or empty, and converts it to a field.Expr.
func readExpr(path string) (field.Expr, error) {
	r, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var wire protocol.ExprWire
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("morsefieldctl: decoding expression: %w", err)
	}
	return wire.ToExpr()
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("morsefieldctl: opening %s: %w", path, err)
	}
	return f, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
