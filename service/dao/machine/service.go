// Package machine loads machine definitions from YAML documents or the
// compact textual notation, addressed by URL through the abstract file
// system.
package machine

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/fsm/model"
	"github.com/viant/fsm/notation"
	"gopkg.in/yaml.v3"
)

// Service resolves, downloads and decodes machine definitions
type Service struct {
	fs        afs.Service
	baseURL   string
	fsOptions []storage.Option
}

// New creates a definition service
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Load loads a machine definition from the specified URL. Documents with a
// ".fsm" extension are parsed as the compact notation, everything else as
// YAML; a URL without extension defaults to ".yaml". The decoded machine is
// named after the document when the definition carries no name, and is
// validated before it is returned.
func (s *Service) Load(ctx context.Context, URL string) (*model.Machine, error) {
	URL = s.normalizeURL(URL)
	ext := path.Ext(URL)
	if ext == "" {
		ext = ".yaml"
		URL += ext
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load machine from %v: %w", URL, err)
	}

	var machine *model.Machine
	switch strings.ToLower(ext) {
	case ".fsm":
		machine, err = notation.Parse(data)
	default:
		machine, err = s.DecodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse machine from %v: %w", URL, err)
	}

	machine.Source = URL
	if machine.Name == "" {
		machine.Name = nameFromURL(URL)
	}
	if err := machine.Validate(); err != nil {
		return nil, err
	}
	return machine, nil
}

// DecodeYAML decodes a machine definition from YAML without validating it
func (s *Service) DecodeYAML(encoded []byte) (*model.Machine, error) {
	machine := &model.Machine{}
	if err := yaml.Unmarshal(encoded, machine); err != nil {
		return nil, err
	}
	return machine, nil
}

// normalizeURL resolves a relative URL against the configured base URL
func (s *Service) normalizeURL(URL string) string {
	if s.baseURL == "" {
		return URL
	}
	if strings.Contains(URL, "://") || strings.HasPrefix(URL, "/") {
		return URL
	}
	return url.Join(s.baseURL, URL)
}

// nameFromURL extracts the machine name from a URL (file name without
// extension)
func nameFromURL(URL string) string {
	base := path.Base(URL)
	return strings.TrimSuffix(base, path.Ext(base))
}
