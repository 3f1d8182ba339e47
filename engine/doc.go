// Package engine implements the deterministic finite-state machine
// execution core. An Engine owns a set of states and an ordered sequence of
// predicate transitions, validates their consistency once at the start of a
// run, and then consumes symbols one at a time from a caller-supplied
// source until the input is exhausted or a symbol is rejected.
//
// Transition selection follows a strict first-match policy: transitions are
// scanned in registration order and the earliest one whose source matches
// the current state and whose predicate accepts the symbol wins. The run
// loop is single-threaded and synchronous; an Engine must not be shared
// between concurrent runs.
package engine
