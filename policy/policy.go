// Package policy is an optional per-run guard layer attached to a run via
// context. It is deliberately decoupled from the engine so that using it is
// entirely opt-in – runs that do not embed a Policy in their context keep the
// default unrestricted behaviour.

package policy

import (
	"context"
	"strings"
)

// Policy represents the guard settings for the current run.
//
//   - MaxSymbols caps how many symbols a run may read (0 = unlimited).
//   - AllowList, BlockList filter symbols before transition matching.
//
// A nil *Policy means "accept everything the machine accepts" and is
// therefore the zero-cost default.
type Policy struct {
	MaxSymbols int      `json:"maxSymbols,omitempty" yaml:"maxSymbols,omitempty"`
	AllowList  []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList  []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// IsAllowed evaluates AllowList / BlockList. Both lists match by exact
// case-insensitive string comparison of the symbol's text form.
func (p *Policy) IsAllowed(symbol string) bool {
	if p == nil {
		return true
	}

	normalized := strings.ToLower(symbol)

	// BlockList has priority.
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}

	// AllowList – if empty everything is allowed, otherwise only the listed
	// entries.
	if len(p.AllowList) == 0 {
		return true
	}

	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}

	return false
}

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy or nil.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
