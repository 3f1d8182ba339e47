// Package memory provides an in-memory registry of machine definitions
// keyed by machine name.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/viant/fsm/model"
	"github.com/viant/fsm/service/dao"
)

// Service implements an in-memory, thread-safe registry of machine
// definitions. Definitions are treated as immutable once loaded, so the
// registry stores them as supplied without copying.
type Service struct {
	machines map[string]*model.Machine
	mux      sync.RWMutex
}

var _ dao.Service[string, model.Machine] = (*Service)(nil)

// New creates an empty registry
func New() *Service {
	return &Service{machines: make(map[string]*model.Machine)}
}

// Save registers the supplied machine under its name
func (s *Service) Save(_ context.Context, machine *model.Machine) error {
	if machine == nil {
		return dao.ErrNilEntity
	}
	if machine.Name == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	s.machines[machine.Name] = machine
	return nil
}

// Load returns the machine registered under the supplied name
func (s *Service) Load(_ context.Context, name string) (*model.Machine, error) {
	if name == "" {
		return nil, dao.ErrInvalidID
	}

	s.mux.RLock()
	machine, ok := s.machines[name]
	s.mux.RUnlock()

	if !ok {
		return nil, dao.ErrNotFound
	}
	return machine, nil
}

// Delete removes the machine registered under the supplied name
func (s *Service) Delete(_ context.Context, name string) error {
	if name == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.machines[name]; !ok {
		return dao.ErrNotFound
	}
	delete(s.machines, name)
	return nil
}

// List returns the registered machines, optionally filtered by a "name"
// parameter holding a name prefix
func (s *Service) List(_ context.Context, parameters ...*dao.Parameter) ([]*model.Machine, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	out := make([]*model.Machine, 0, len(s.machines))
	for _, machine := range s.machines {
		if !matches(machine.Name, parameters) {
			continue
		}
		out = append(out, machine)
	}
	return out, nil
}

func matches(name string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != "name" {
			continue
		}
		prefix, ok := parameter.Value.(string)
		if ok && !strings.HasPrefix(name, prefix) {
			return false
		}
	}
	return true
}
