// Package plan resolves a payment plan into the percentage of the purchase
// price carried by each funding source.
package plan

import (
	"fmt"
	"strings"

	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/mathutil"
)

// Type is the closed set of supported payment plans.
type Type int

const (
	// CLP is the construction-linked plan.
	CLP Type = iota
	// TwentyEighty funds 20% from a personal loan and 80% from the home loan.
	TwentyEighty
	// FortySixty funds 40% from a personal loan and 60% from the home loan.
	FortySixty
	// Custom takes every share from the user's assumptions.
	Custom
)

var names = map[Type]string{
	CLP:          "clp",
	TwentyEighty: "20-80",
	FortySixty:   "40-60",
	Custom:       "custom",
}

// String returns the configuration name of the plan.
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("plan(%d)", int(t))
}

// Valid reports whether t is one of the declared plans.
func (t Type) Valid() bool {
	_, ok := names[t]
	return ok
}

// Parse maps a configuration name onto a plan Type.
func Parse(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t, n := range names {
		if n == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown payment plan %q, expected one of clp, 20-80, 40-60, custom", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid payment plan %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Shares holds the percentage of total cost funded by each source.
type Shares struct {
	HomeLoan      float64 `yaml:"homeLoan"`
	PersonalLoan1 float64 `yaml:"personalLoan1"`
	PersonalLoan2 float64 `yaml:"personalLoan2"`
	DownPayment   float64 `yaml:"downPayment"`
}

// Total returns the sum of all shares.
func (s Shares) Total() float64 {
	return s.HomeLoan + s.PersonalLoan1 + s.PersonalLoan2 + s.DownPayment
}

// UserShares are the share assumptions a user may enter. They only matter
// for plans that read them (CLP and Custom).
type UserShares struct {
	PersonalLoan1 float64
	PersonalLoan2 float64
	DownPayment   float64
}

// Overflow returns how far the user shares exceed 100%, or 0.
func (u UserShares) Overflow() float64 {
	over := u.PersonalLoan1 + u.PersonalLoan2 + u.DownPayment - constants.FullShare
	if over < 0 {
		return 0
	}
	return over
}

// Resolve maps a plan onto funding shares. Out-of-range user shares are
// clamped to [0, 100] without complaint; under Custom the home loan takes
// whatever remains.
func Resolve(t Type, user UserShares) Shares {
	switch t {
	case CLP:
		return Shares{
			HomeLoan:      constants.CLPHomeLoanShare,
			PersonalLoan1: clpShare(user.PersonalLoan1),
			PersonalLoan2: clpShare(user.PersonalLoan2),
		}
	case TwentyEighty:
		return Shares{HomeLoan: 80, PersonalLoan1: 20}
	case FortySixty:
		return Shares{HomeLoan: 60, PersonalLoan1: 40}
	case Custom:
		pl1 := mathutil.ClampShare(user.PersonalLoan1)
		pl2 := mathutil.ClampShare(user.PersonalLoan2)
		dp := mathutil.ClampShare(user.DownPayment)
		return Shares{
			HomeLoan:      mathutil.ClampShare(constants.FullShare - pl1 - pl2 - dp),
			PersonalLoan1: pl1,
			PersonalLoan2: pl2,
			DownPayment:   dp,
		}
	default:
		panic(fmt.Sprintf("plan: unhandled payment plan %d", int(t)))
	}
}

// clpShare treats an unset (zero) share as the CLP default.
func clpShare(share float64) float64 {
	if share == 0 {
		share = constants.DefaultCLPPersonalLoanShare
	}
	return mathutil.ClampShare(share)
}

// Defaults returns the share assumptions loaded when a plan is selected.
// Custom keeps the caller's shares.
func Defaults(t Type, current UserShares) UserShares {
	switch t {
	case CLP:
		return UserShares{
			PersonalLoan1: constants.DefaultCLPPersonalLoanShare,
			PersonalLoan2: constants.DefaultCLPPersonalLoanShare,
		}
	case TwentyEighty:
		return UserShares{PersonalLoan1: 20}
	case FortySixty:
		return UserShares{PersonalLoan1: 40}
	case Custom:
		return current
	default:
		panic(fmt.Sprintf("plan: unhandled payment plan %d", int(t)))
	}
}
