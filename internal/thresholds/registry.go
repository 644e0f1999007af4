package thresholds

import (
	"github.com/ajharbinger/answer-eval-api/internal/errors"
	"github.com/ajharbinger/answer-eval-api/pkg/config"
)

// Registry maps domain IDs to threshold profiles. It is built once at
// startup and read-only afterwards, so concurrent lookups need no locking.
type Registry struct {
	defaultProfile *Profile
	overrides      map[string]*Profile
}

// NewRegistry creates a registry from a default profile and zero or more
// domain overrides. The default profile is required.
func NewRegistry(defaultProfile *Profile, overrides map[string]*Profile) (*Registry, error) {
	if defaultProfile == nil {
		return nil, errors.ConfigurationError("default threshold profile is required", nil)
	}
	if overrides == nil {
		overrides = map[string]*Profile{}
	}
	return &Registry{
		defaultProfile: defaultProfile,
		overrides:      overrides,
	}, nil
}

// NewRegistryFromConfig builds a registry from the environment-level default
// bounds and the optional domain profiles file. Any invalid profile fails
// construction; this is a startup error, never a per-request one.
func NewRegistryFromConfig(cfg *config.Config, domains map[string]config.DomainProfile) (*Registry, error) {
	defaultProfile, err := NewProfile("default",
		cfg.ThresholdExcellent, cfg.ThresholdGood, cfg.ThresholdPartial, nil)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]*Profile, len(domains))
	for domainID, dp := range domains {
		profile, err := NewProfile(domainID, dp.Excellent, dp.Good, dp.Partial, dp.Messages)
		if err != nil {
			return nil, err
		}
		overrides[domainID] = profile
	}

	return NewRegistry(defaultProfile, overrides)
}

// Resolve returns the profile for a domain ID. An empty or unknown domain
// always resolves to the default profile; Resolve never fails.
func (r *Registry) Resolve(domainID string) *Profile {
	if domainID != "" {
		if profile, ok := r.overrides[domainID]; ok {
			return profile
		}
	}
	return r.defaultProfile
}

// Default returns the default profile
func (r *Registry) Default() *Profile {
	return r.defaultProfile
}
