// Package fsm provides a deterministic finite state machine engine.
//
// Machines are defined declaratively (YAML or a compact text notation),
// validated structurally and compiled into an executable engine that
// consumes symbols from a pluggable source:
//
//	srv := fsm.New()
//	machine, _ := srv.Load(ctx, "binary.yaml")
//	rt, _ := srv.Runtime(machine)
//	accepted, err := rt.RunText(ctx, "0110")
//
// Machines can also be assembled programmatically through the model and
// engine packages when no declarative definition exists.
//
// For more details see the README and individual sub-packages.
package fsm
