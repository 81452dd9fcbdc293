package unit

import "fmt"

// Quantity is a value paired with its physical dimensions. The value is
// always stored in SI base units; non-SI constructors live in
// unit/aviation. Arithmetic on Quantities checks dimensional compatibility
// and computes the result's dimensions automatically.
type Quantity struct {
	dimensions Dimensions
	value      float64
	formatted  string
}

// Format satisfies fmt.Formatter, printing the quantity's SI value followed
// by its dimension string (e.g. "5 m s^-1"). Verbs 'v', 'e', 'E', 'f', 'F',
// 'g', and 'G' are supported with their usual width/precision flags; any
// other verb reports itself as unsupported.
func (q *Quantity) Format(fs fmt.State, c rune) {
	if q == nil {
		fmt.Fprint(fs, "<nil>")
		return
	}
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "&%#v", *q)
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		s := "%"
		if w, ok := fs.Width(); ok {
			s += fmt.Sprintf("%d", w)
		}
		if p, ok := fs.Precision(); ok {
			s += fmt.Sprintf(".%d", p)
		}
		fmt.Fprintf(fs, s+string(c), q.value)
	default:
		fmt.Fprintf(fs, "%%!%c(*Quantity=%g)", c, q.value)
		return
	}
	if q.formatted == "" && len(q.dimensions) > 0 {
		q.formatted = q.dimensions.String()
	}
	if q.formatted != "" {
		fmt.Fprintf(fs, " %s", q.formatted)
	}
}

// New creates a Quantity of value (in SI units) and dimensions d.
func New(value float64, d Dimensions) *Quantity {
	return &Quantity{value: value, dimensions: d.clone()}
}

// Clone returns a copy of q.
func (q *Quantity) Clone() *Quantity {
	return &Quantity{value: q.value, dimensions: q.dimensions.clone()}
}

// Value returns the raw SI value of q. At API boundaries, prefer Lower,
// or a unit/aviation In* helper where a specific non-SI unit is needed;
// Value is for internal use and printing.
func (q *Quantity) Value() float64 {
	if q == nil {
		return 0
	}
	return q.value
}

// Dimensions returns q's dimensions.
func (q *Quantity) Dimensions() Dimensions {
	if q == nil {
		return Dimensionless
	}
	return q.dimensions
}

// DimensionsMatch reports whether a and b carry the same dimensions.
func DimensionsMatch(a, b *Quantity) bool {
	return a.Dimensions().Matches(b.Dimensions())
}

// Check returns an error if q's dimensions don't match d.
func (q *Quantity) Check(d Dimensions) error {
	if !q.Dimensions().Matches(d) {
		return &DimensionError{Got: q.Dimensions(), Want: d}
	}
	return nil
}

// DimensionError reports a dimensional mismatch between an observed and an
// expected set of Dimensions.
type DimensionError struct {
	Got, Want Dimensions
}

func (e *DimensionError) Error() string {
	return "unit: dimensions " + e.Got.String() + " do not match expected " + e.Want.String()
}

// Add returns the sum of q and r. It panics if their dimensions don't match.
func (q *Quantity) Add(r *Quantity) *Quantity {
	if !DimensionsMatch(q, r) {
		panic(&DimensionError{Got: r.Dimensions(), Want: q.Dimensions()})
	}
	return New(q.value+r.value, q.dimensions)
}

// Sub returns q minus r. It panics if their dimensions don't match.
func (q *Quantity) Sub(r *Quantity) *Quantity {
	if !DimensionsMatch(q, r) {
		panic(&DimensionError{Got: r.Dimensions(), Want: q.Dimensions()})
	}
	return New(q.value-r.value, q.dimensions)
}

// Negate returns -q.
func (q *Quantity) Negate() *Quantity {
	return New(-q.value, q.dimensions)
}

// Mul returns the product of q and r, computing the resulting dimensions.
func (q *Quantity) Mul(r *Quantity) *Quantity {
	d := q.dimensions.clone()
	for k, v := range r.dimensions {
		if dv := d[k]; dv == -v {
			delete(d, k)
		} else {
			d[k] = dv + v
		}
	}
	return &Quantity{value: q.value * r.value, dimensions: d}
}

// Scale returns q scaled by the dimensionless factor f.
func (q *Quantity) Scale(f float64) *Quantity {
	return New(q.value*f, q.dimensions)
}

// Div returns q divided by r, computing the resulting dimensions.
func (q *Quantity) Div(r *Quantity) *Quantity {
	d := q.dimensions.clone()
	for k, v := range r.dimensions {
		if dv := d[k]; dv == v {
			delete(d, k)
		} else {
			d[k] = dv - v
		}
	}
	return &Quantity{value: q.value / r.value, dimensions: d}
}

// Max returns whichever of q and r has the greater value. It panics if
// their dimensions don't match.
func Max(q, r *Quantity) *Quantity {
	if !DimensionsMatch(q, r) {
		panic(&DimensionError{Got: r.Dimensions(), Want: q.Dimensions()})
	}
	if r.value > q.value {
		return r.Clone()
	}
	return q.Clone()
}

// Min returns whichever of q and r has the lesser value. It panics if
// their dimensions don't match.
func Min(q, r *Quantity) *Quantity {
	if !DimensionsMatch(q, r) {
		panic(&DimensionError{Got: r.Dimensions(), Want: q.Dimensions()})
	}
	if r.value < q.value {
		return r.Clone()
	}
	return q.Clone()
}

// Lift returns x itself, unconverted, if it is non-nil and has dimensions
// d, or a fresh Quantity with dimensions d if x is nil, given a raw numeric magnitude already expressed in SI units
// for that dimension. This is the "lift to units" boundary helper of the
// design notes: callers that already have a dimensional quantity get a
// compatibility check; callers with only a raw number get one attached.
func Lift(x *Quantity, d Dimensions, raw float64) (*Quantity, error) {
	if x == nil {
		return New(raw, d), nil
	}
	if err := x.Check(d); err != nil {
		return nil, err
	}
	return x, nil
}

// Lower strips the dimension from q, returning its raw SI magnitude. Use
// the SI-unit helpers in unit/aviation to convert to a specific non-SI
// unit instead, where a caller needs one.
func Lower(q *Quantity) float64 {
	return q.Value()
}
