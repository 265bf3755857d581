// Package policy provides the declarative allocation rules consulted by the
// resolver: the sentinel answers the form must carry, the floor range and the
// floors reserved for partnered applicants. It is attached to a run via
// context so that embedding applications can override the defaults without
// touching the engine – a nil *Policy means "use the built-in form
// semantics" and is therefore the zero-cost default.

package policy

import (
	"context"
	"fmt"
	"regexp"
)

// Built-in form semantics. The sentinels are the exact answers produced by
// the official application form export.
const (
	defaultConsent     = "利用規約に同意する"
	defaultPhoto       = "accept"
	defaultWithPartner = "共同利用者あり"
	defaultSolo        = "共同利用者なし (2階・3階のロッカーは使用できません)"
)

// defaultPersonID matches a valid student id: a six digit code starting with
// 15, with 4-6, or with 1 followed by a digit 1-6.
var defaultPersonID = regexp.MustCompile(`^(15\d{4}|[4-6]\d{5}|1[1-6]\d{4})$`)

// Policy represents the allocation rules for the current run.
//
//   - Consent and Photo are the exact sentinel answers a submission must
//     carry to be considered.
//   - WithPartner and WithoutPartner are the two recognised partnership
//     choices on the applicant form.
//   - MinFloor/MaxFloor bound acceptable floor preferences (inclusive).
//   - PartnerOnlyFloors lists floors that may only be requested together
//     with a partner.
type Policy struct {
	Consent           string
	Photo             string
	WithPartner       string
	WithoutPartner    string
	MinFloor          int
	MaxFloor          int
	PartnerOnlyFloors []int
	personID          *regexp.Regexp
}

// Default returns the policy matching the official form.
func Default() *Policy {
	return &Policy{
		Consent:           defaultConsent,
		Photo:             defaultPhoto,
		WithPartner:       defaultWithPartner,
		WithoutPartner:    defaultSolo,
		MinFloor:          2,
		MaxFloor:          6,
		PartnerOnlyFloors: []int{2, 3},
		personID:          defaultPersonID,
	}
}

// ---------------------------------------------------------------------------
// Config <-> Policy converters (Config is the serialisable subset used when a
// policy travels through YAML configuration).
// ---------------------------------------------------------------------------

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	Consent           string `json:"consent,omitempty" yaml:"consent,omitempty"`
	Photo             string `json:"photo,omitempty" yaml:"photo,omitempty"`
	WithPartner       string `json:"withPartner,omitempty" yaml:"withPartner,omitempty"`
	WithoutPartner    string `json:"withoutPartner,omitempty" yaml:"withoutPartner,omitempty"`
	MinFloor          int    `json:"minFloor,omitempty" yaml:"minFloor,omitempty"`
	MaxFloor          int    `json:"maxFloor,omitempty" yaml:"maxFloor,omitempty"`
	PartnerOnlyFloors []int  `json:"partnerOnlyFloors,omitempty" yaml:"partnerOnlyFloors,omitempty"`
	PersonIDPattern   string `json:"personIDPattern,omitempty" yaml:"personIDPattern,omitempty"`
}

// FromConfig converts a stored Config into a runtime Policy. Unset fields
// inherit the defaults.
func FromConfig(c *Config) (*Policy, error) {
	ret := Default()
	if c == nil {
		return ret, nil
	}
	if c.Consent != "" {
		ret.Consent = c.Consent
	}
	if c.Photo != "" {
		ret.Photo = c.Photo
	}
	if c.WithPartner != "" {
		ret.WithPartner = c.WithPartner
	}
	if c.WithoutPartner != "" {
		ret.WithoutPartner = c.WithoutPartner
	}
	if c.MinFloor != 0 {
		ret.MinFloor = c.MinFloor
	}
	if c.MaxFloor != 0 {
		ret.MaxFloor = c.MaxFloor
	}
	if len(c.PartnerOnlyFloors) > 0 {
		ret.PartnerOnlyFloors = append([]int(nil), c.PartnerOnlyFloors...)
	}
	if c.PersonIDPattern != "" {
		if err := ret.SetPersonID(c.PersonIDPattern); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	ret := &Config{
		Consent:           p.Consent,
		Photo:             p.Photo,
		WithPartner:       p.WithPartner,
		WithoutPartner:    p.WithoutPartner,
		MinFloor:          p.MinFloor,
		MaxFloor:          p.MaxFloor,
		PartnerOnlyFloors: append([]int(nil), p.PartnerOnlyFloors...),
	}
	if p.personID != nil {
		ret.PersonIDPattern = p.personID.String()
	}
	return ret
}

// SetPersonID replaces the student-id format with a custom anchored
// expression.
func (p *Policy) SetPersonID(expr string) error {
	personID, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("invalid person id pattern %q: %w", expr, err)
	}
	p.personID = personID
	return nil
}

// ValidPersonID reports whether value matches the student-id format.
func (p *Policy) ValidPersonID(value string) bool {
	if p == nil || p.personID == nil {
		return defaultPersonID.MatchString(value)
	}
	return p.personID.MatchString(value)
}

// ValidPartnership reports whether value is one of the two recognised
// partnership choices.
func (p *Policy) ValidPartnership(value string) bool {
	return value == p.WithPartner || value == p.WithoutPartner
}

// RequiresPartner reports whether the partnership choice names a partner.
func (p *Policy) RequiresPartner(value string) bool {
	return value == p.WithPartner
}

// ValidFloor reports whether floor is inside the acceptable range.
func (p *Policy) ValidFloor(floor int) bool {
	return floor >= p.MinFloor && floor <= p.MaxFloor
}

// PartnerOnly reports whether the floor may only be requested together with
// a partner.
func (p *Policy) PartnerOnly(floor int) bool {
	for _, f := range p.PartnerOnlyFloors {
		if f == floor {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts the policy from ctx, falling back to Default when the
// context carries none.
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return Default()
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok && v != nil {
		return v
	}
	return Default()
}
