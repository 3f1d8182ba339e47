package fsm

import (
	"context"

	"github.com/viant/fsm/engine"
	"github.com/viant/fsm/model"
	"github.com/viant/fsm/service/event"
	"github.com/viant/fsm/source"
)

// Runtime binds a machine definition to a compiled engine and reports run
// lifecycle events.
type Runtime struct {
	machine *model.Machine
	engine  *engine.Engine[string]
	events  *event.Service[string]
	runID   string
}

// Machine returns the machine definition.
func (r *Runtime) Machine() *model.Machine {
	return r.machine
}

// Engine returns the compiled engine.
func (r *Runtime) Engine() *engine.Engine[string] {
	return r.engine
}

// RunID returns the run identifier.
func (r *Runtime) RunID() string {
	return r.runID
}

// Run consumes symbols from src until end of input, publishing lifecycle
// events. It returns the accepted symbols, even when the run fails.
// Event delivery is best effort: when no consumer keeps up and the event
// queue fills, further events are dropped rather than stalling the run.
func (r *Runtime) Run(ctx context.Context, src source.Source[string]) ([]string, error) {
	r.publish(ctx, event.TypeRunStarted, "")
	accepted, err := r.engine.Run(ctx, src)
	if err != nil {
		r.publish(ctx, event.TypeRunRejected, err.Error())
		return accepted, err
	}
	r.publish(ctx, event.TypeRunCompleted, "")
	return accepted, nil
}

// RunText runs the machine over the runes of text.
func (r *Runtime) RunText(ctx context.Context, text string) ([]string, error) {
	return r.Run(ctx, source.NewText(text))
}

func (r *Runtime) publish(ctx context.Context, eventType event.Type, data string) {
	if r.events == nil {
		return
	}
	var stateID string
	if current := r.engine.Current(); current != nil {
		stateID = current.ID
	}
	_, _ = r.events.TryPublish(ctx, event.NewEvent[string](&event.Context{
		RunID:   r.runID,
		Machine: r.machine.Name,
		StateID: stateID,
		Type:    eventType,
	}, data))
}
