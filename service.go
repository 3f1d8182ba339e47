package fsm

import (
	"context"

	"github.com/viant/afs/storage"
	"github.com/viant/fsm/engine"
	"github.com/viant/fsm/internal/idgen"
	"github.com/viant/fsm/model"
	"github.com/viant/fsm/notation"
	"github.com/viant/fsm/service/dao/machine"
	mamemory "github.com/viant/fsm/service/dao/machine/memory"
	"github.com/viant/fsm/service/event"
	mmemory "github.com/viant/fsm/service/messaging/memory"
)

// Service is the high-level façade: it loads machine definitions, keeps a
// registry of loaded machines, compiles runtimes and publishes run events.
type Service struct {
	config     *Config
	machineDAO *machine.Service
	registry   *mamemory.Service
	events     *event.Service[string]
	baseURL    string
	fsOptions  []storage.Option
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	s.ensureBaseSetup()
}

func (s *Service) ensureBaseSetup() {
	if s.baseURL == "" {
		s.baseURL = s.config.BaseURL
	}
	if s.machineDAO == nil {
		s.machineDAO = machine.New(
			machine.WithBaseURL(s.baseURL),
			machine.WithFSOptions(s.fsOptions...))
	}
	if s.registry == nil {
		s.registry = mamemory.New()
	}
	if s.events == nil {
		s.events = event.New[string](event.WithQueueConfig[string](mmemory.Config{
			MaxRetries:  s.config.Events.MaxRetries,
			DeadLetter:  true,
			QueueBuffer: s.config.Events.QueueBuffer,
		}))
	}
}

// New creates a service
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

// Load retrieves, validates and caches a machine definition. The location may
// be relative to the configured base URL, absolute or a full URL.
func (s *Service) Load(ctx context.Context, location string) (*model.Machine, error) {
	aMachine, err := s.machineDAO.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	if err = s.registry.Save(ctx, aMachine); err != nil {
		return nil, err
	}
	return aMachine, nil
}

// Machine returns a previously loaded machine by name.
func (s *Service) Machine(ctx context.Context, name string) (*model.Machine, error) {
	return s.registry.Load(ctx, name)
}

// DecodeYAML decodes a YAML machine definition and validates it.
func (s *Service) DecodeYAML(data []byte) (*model.Machine, error) {
	aMachine, err := s.machineDAO.DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	if err = aMachine.Validate(); err != nil {
		return nil, err
	}
	return aMachine, nil
}

// ParseNotation parses a compact text definition and validates it.
func (s *Service) ParseNotation(data []byte) (*model.Machine, error) {
	aMachine, err := notation.Parse(data)
	if err != nil {
		return nil, err
	}
	if err = aMachine.Validate(); err != nil {
		return nil, err
	}
	return aMachine, nil
}

// Runtime compiles a machine into an executable runtime. A fresh run
// identifier is assigned and transitions are published as run events.
// Supplied engine options are applied after the event wiring, so callers may
// replace the run id or hooks.
func (s *Service) Runtime(aMachine *model.Machine, options ...engine.Option[string]) (*Runtime, error) {
	rt := &Runtime{machine: aMachine, events: s.events, runID: idgen.New()}
	opts := append([]engine.Option[string]{
		engine.WithRunID[string](rt.runID),
		engine.WithPostTransit[string](func(ctx context.Context, symbol string) {
			rt.publish(ctx, event.TypeSymbolAccepted, symbol)
		}),
	}, options...)
	eng, err := engine.FromMachine(aMachine, opts...)
	if err != nil {
		return nil, err
	}
	rt.engine = eng
	return rt, nil
}

// Events returns the run event service.
func (s *Service) Events() *event.Service[string] {
	return s.events
}

// Shutdown stops background event dispatch.
func (s *Service) Shutdown() {
	s.events.Shutdown()
}
