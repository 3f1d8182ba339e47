// Package model contains the in-memory representation of machine
// definitions used by the fsm engine.
//
// A machine is typically loaded from a YAML document or the compact textual
// notation into the Machine, State, Transition and Match structures, or
// assembled programmatically with the fluent builder API. Definitions are
// validated as a whole with Machine.Validate and compiled into a runnable
// engine by the engine package.
package model
