// Package pwl is the Facade (spec.md 4.7): it accepts an activation kind,
// a domain, and an error budget, and returns the minimum-length ordered
// segment sequence that fits the activation within that budget, or a
// typed error. It owns no graph awareness; it is a thin entry point over
// SegmentSearch/DomainSplitter/PowerHandler, the same shape as
// dsp/filter/design.go's exported functions delegating into
// dsp/filter/design/pass.
package pwl

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pwl/pwl/pwlerr"
	"github.com/cwbudde/algo-pwl/pwl/trait"
)

// Kind tags the activation family an Activation value names.
type Kind int

const (
	Sigmoid Kind = iota
	Tanh
	Exp
	Log
	SoftSign
	Power
	Identity
)

func (k Kind) String() string {
	switch k {
	case Sigmoid:
		return "Sigmoid"
	case Tanh:
		return "Tanh"
	case Exp:
		return "Exp"
	case Log:
		return "Log"
	case SoftSign:
		return "SoftSign"
	case Power:
		return "Power"
	case Identity:
		return "Identity"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Activation is the tagged variant over the activation families this core
// can approximate (spec.md 3). Only Power carries a payload; every other
// kind binds a stateless FnTraits value.
type Activation struct {
	kind Kind
	p    float64
	// scale and shift are the fused affine operands for Power's
	// (scale*x + shift)^p form (spec.md 4.6). A bare x^p has scale 1 and
	// shift 0; NewPower stores whatever the caller passes.
	scale, shift float64
}

// NewSigmoid returns the Sigmoid activation tag.
func NewSigmoid() Activation { return Activation{kind: Sigmoid} }

// NewTanh returns the Tanh activation tag.
func NewTanh() Activation { return Activation{kind: Tanh} }

// NewExp returns the Exp activation tag.
func NewExp() Activation { return Activation{kind: Exp} }

// NewLog returns the Log activation tag.
func NewLog() Activation { return Activation{kind: Log} }

// NewSoftSign returns the SoftSign activation tag.
func NewSoftSign() Activation { return Activation{kind: SoftSign} }

// NewIdentity returns the Identity activation tag, f(x) = x.
func NewIdentity() Activation { return Activation{kind: Identity} }

// NewPower builds the Power{p} activation for y = (scale*x + shift)^p.
// p must already have been extracted from its constant operand by the
// caller -- see ExponentFromConstant. scale and shift are stored as given,
// with no defaults applied; pass scale=1, shift=0 for a bare x^p.
func NewPower(p, scale, shift float64) Activation {
	return Activation{kind: Power, p: p, scale: scale, shift: shift}
}

// Kind reports the activation's tag.
func (a Activation) Kind() Kind { return a.kind }

// PowerExponent returns the exponent bound to a Power activation. ok is
// false for any other kind.
func (a Activation) PowerExponent() (p float64, ok bool) {
	if a.kind != Power {
		return 0, false
	}
	return a.p, true
}

// traits binds this activation's FnTraits. Power resolves to
// trait.Power{P, Scale, Shift}; Identity resolves to trait.Identity,
// though the Facade never actually runs the general solver for Identity --
// it only ever appears through PowerHandler's p==1 shortcut.
func (a Activation) traits() trait.FnTraits {
	switch a.kind {
	case Sigmoid:
		return trait.Sigmoid{}
	case Tanh:
		return trait.Tanh{}
	case Exp:
		return trait.Exp{}
	case Log:
		return trait.Log{}
	case SoftSign:
		return trait.SoftSign{}
	case Power:
		return trait.Power{P: a.p, Scale: a.scale, Shift: a.shift}
	case Identity:
		return trait.Identity{}
	default:
		panic(fmt.Sprintf("pwl: unhandled activation kind %v", a.kind))
	}
}

// ExponentFromConstant extracts the scalar exponent p from a required
// constant operand, per spec.md 4.6: any signed/unsigned integer width up
// to 64 bits, or any floating width, is accepted; anything else -- a
// slice, a string, a bool, a complex number -- is rejected with
// ErrUnsupportedType, mirroring PowerHandler's validating-helper style
// from dsp/filter/design/pass/common.go.
func ExponentFromConstant(v any) (float64, error) {
	switch x := v.(type) {
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("pwl: %w: exponent operand has type %T", pwlerr.ErrUnsupportedType, v)
	}
}

// powerIsIdentity reports whether p equals 1 within an ULP-scale
// tolerance, per spec.md 4.6's identity shortcut.
func powerIsIdentity(p float64) bool {
	return math.Abs(p-1) < 1e-9
}
