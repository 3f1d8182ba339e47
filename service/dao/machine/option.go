package machine

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

// Option customises the definition service
type Option func(s *Service)

// WithFS sets the abstract file system service
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithBaseURL sets the base URL relative definition URLs resolve against
func WithBaseURL(baseURL string) Option {
	return func(s *Service) { s.baseURL = baseURL }
}

// WithFSOptions sets storage options passed to every download
func WithFSOptions(options ...storage.Option) Option {
	return func(s *Service) { s.fsOptions = options }
}
