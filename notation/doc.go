// Package notation implements a parser for a compact, line-oriented
// textual notation describing finite-state machines. The notation is a
// convenience alternative to YAML documents for small machines; both forms
// produce the same model.Machine definition.
package notation
