// Package logging constructs the structured logger shared by the
// protocol server and the CLI. The pure kernel packages (internal/field,
// internal/topology) never import it: logging is an ambient concern of
// the collaborators that host the kernel, not of the kernel itself,
// which stays purely synchronous with no shared mutable state.
package logging

import "go.uber.org/zap"

// New builds a zap.Logger. debug switches between zap's production and
// development presets (JSON vs. console encoding, level, stacktraces).
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
