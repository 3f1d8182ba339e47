package fsm

import (
	"github.com/viant/afs/storage"
	"github.com/viant/fsm/service/dao/machine"
	mamemory "github.com/viant/fsm/service/dao/machine/memory"
	"github.com/viant/fsm/service/event"
)

// Option customises the service
type Option func(s *Service)

// WithConfig sets the service configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithBaseURL sets the base URL for relative machine locations
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

// WithFsOptions sets the storage options used when loading machine definitions
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = options
	}
}

// WithMachineDAO sets the machine loader
func WithMachineDAO(dao *machine.Service) Option {
	return func(s *Service) {
		s.machineDAO = dao
	}
}

// WithRegistry sets the machine registry
func WithRegistry(registry *mamemory.Service) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithEventService sets the run event service
func WithEventService(service *event.Service[string]) Option {
	return func(s *Service) {
		s.events = service
	}
}
