package lockor

import (
	"github.com/viant/afs"
	"github.com/viant/lockor/policy"
	"github.com/viant/lockor/progress"
	"github.com/viant/lockor/resolver"
	rmemory "github.com/viant/lockor/service/dao/result/memory"
	"github.com/viant/lockor/service/event"
	"github.com/viant/lockor/service/intake"
	"github.com/viant/lockor/service/ledger"
)

// Service is the high-level engine façade embedding applications interact
// with. It wires the intake, resolver and ledger collaborators together and
// owns the run-scoped state (the ineligibility registry).
type Service struct {
	runtime      *Runtime
	config       *Config
	fs           afs.Service
	policy       *policy.Policy
	eventService *event.Service
	onProgress   func(progress.Progress)
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if err := s.ensureBaseSetup(); err != nil {
		return err
	}
	s.runtime.intake = intake.New(s.fs, s.config.Input.TimestampLayout)
	s.runtime.ledger = ledger.New(s.fs, s.config.Output.BaseURL)
	s.runtime.config = s.config
	s.runtime.policy = s.policy
	s.runtime.eventService = s.eventService
	s.runtime.onProgress = s.onProgress
	return nil
}

func (s *Service) ensureBaseSetup() error {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.policy == nil {
		var err error
		if s.policy, err = policy.FromConfig(s.config.Policy); err != nil {
			return err
		}
	}
	if s.runtime.registry == nil {
		s.runtime.registry = resolver.NewRegistry()
	}
	if s.runtime.resultDAO == nil {
		s.runtime.resultDAO = rmemory.New()
	}
	return nil
}

// Runtime returns the engine runtime.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// New creates a new engine service with the supplied options.
func New(options ...Option) (*Service, error) {
	ret := &Service{runtime: &Runtime{}}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	if err := ret.config.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
