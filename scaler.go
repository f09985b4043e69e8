package linechart

import (
	"fmt"
	"math"
)

const epsilon = 1e-9

type Domain struct {
	F float64
	T float64
}

func NewDomain(f, t float64) Domain {
	return Domain{
		F: f,
		T: t,
	}
}

func (d Domain) Diff(v float64) float64 {
	return v - d.F
}

func (d Domain) Extend() float64 {
	return d.T - d.F
}

func (d Domain) Degenerate() bool {
	return d.F == d.T
}

// ratio gives the position of v in the domain, 0 at F and 1 at T. Domains
// wider than the float64 range are measured on halves.
func (d Domain) ratio(v float64) float64 {
	if ext := d.Extend(); !math.IsInf(ext, 0) {
		return d.Diff(v) / ext
	}
	return (v/2 - d.F/2) / (d.T/2 - d.F/2)
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// LinearScale maps a domain onto a range by linear interpolation.
type LinearScale struct {
	Domain
	Range
}

func NewLinearScale(dom Domain, rg Range) LinearScale {
	return LinearScale{
		Domain: dom,
		Range:  rg,
	}
}

func (s LinearScale) Scale(v float64) float64 {
	if s.Degenerate() {
		return s.Range.F
	}
	return s.Range.F + s.ratio(v)*s.Len()
}

func (s LinearScale) Invert(p float64) float64 {
	if s.Degenerate() || s.Len() == 0 {
		return s.Domain.F
	}
	if ext := s.Extend(); !math.IsInf(ext, 0) {
		return s.Domain.F + (p-s.Range.F)*ext/s.Len()
	}
	t := (p - s.Range.F) / s.Len()
	return s.Domain.F*(1-t) + s.Domain.T*t
}

// Space gives the number of pixels for one unit of the domain.
func (s LinearScale) Space() float64 {
	if s.Degenerate() {
		return 0
	}
	return s.Len() / s.Extend()
}

func (s LinearScale) Validate() error {
	if s.Degenerate() {
		return fmt.Errorf("%w: [%g, %g]", ErrDegenerateDomain, s.Domain.F, s.Domain.T)
	}
	return nil
}

func CheckTicks(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: tick count %d", ErrInvalidArgument, count)
	}
	return nil
}

// Ticks computes round tick values bracketing the domain. A count lower than
// one is clamped to one.
func (s LinearScale) Ticks(count int) Ticks {
	if count < 1 {
		count = 1
	}
	lo, hi := s.Domain.F, s.Domain.T
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return Ticks{
			Start: math.Floor(lo),
			Stop:  math.Ceil(hi),
			Step:  1,
		}
	}
	raw := (hi - lo) / float64(count)
	if math.IsInf(raw, 0) {
		raw = hi/float64(count) - lo/float64(count)
	}
	if finite(raw) {
		step := niceStep(raw)
		ticks := Ticks{
			Start: math.Floor(lo/step+epsilon) * step,
			Stop:  math.Ceil(hi/step-epsilon) * step,
			Step:  step,
		}
		if finite(ticks.Start) && finite(ticks.Stop) {
			return ticks
		}
	}
	// the rounded bounds would overflow: split the domain in two halves.
	return Ticks{
		Start: lo,
		Stop:  hi,
		Step:  hi/2 - lo/2,
	}
}

var niceFactors = []float64{1, 2, 5, 10}

func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	var (
		exp  = math.Floor(math.Log10(raw))
		base = math.Pow(10, exp)
		frac = raw / base
		nice = niceFactors[len(niceFactors)-1]
	)
	for _, f := range niceFactors {
		if f >= frac*(1-epsilon) {
			nice = f
			break
		}
	}
	if exp < 0 {
		return nice / math.Pow(10, -exp)
	}
	return nice * base
}

type Ticks struct {
	Start float64
	Stop  float64
	Step  float64
}

// maxTicks bounds the number of values a Ticks can produce.
const maxTicks = 1 << 16

func (t Ticks) Len() int {
	if !(t.Step > 0) || t.Stop < t.Start {
		return 0
	}
	n := math.Round(t.Stop/t.Step - t.Start/t.Step)
	if !finite(n) || n >= maxTicks {
		return 0
	}
	return int(n) + 1
}

// Values walks from Start to Stop by Step, both bounds included. The last value
// is always Stop.
func (t Ticks) Values() []float64 {
	n := t.Len()
	if n == 0 {
		return nil
	}
	all := make([]float64, n)
	for i := 0; i < n; i++ {
		all[i] = t.Start + float64(i)*t.Step
	}
	all[n-1] = t.Stop
	return all
}
