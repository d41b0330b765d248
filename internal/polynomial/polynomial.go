// Package polynomial implements the random-polynomial construction,
// multi-point evaluation, and Lagrange interpolation over GF(2^64) that
// the share codec builds on.
package polynomial

import (
	"encoding/binary"
	"errors"

	"github.com/mrz1836/shardfile/internal/entropy"
	"github.com/mrz1836/shardfile/internal/field"
	"github.com/mrz1836/shardfile/internal/secure"
)

// ErrDuplicatePoint is returned when two evaluation points supplied to a
// Lagrange computation are equal, which would make a basis denominator
// zero.
var ErrDuplicatePoint = errors.New("polynomial: duplicate evaluation point")

// Polynomial is c_0 + c_1*x + ... + c_(d-1)*x^(d-1), field coefficients in
// ascending order of degree. c_0 is the secret constant term. Coefficients
// live in a secure.Bytes buffer rather than a plain []uint64 since c_0 is
// the plaintext word being shared: Destroy wipes it as soon as the share
// values have been evaluated.
type Polynomial struct {
	raw    *secure.Bytes
	degree int
}

// Random returns a polynomial of length d whose constant term is c and
// whose remaining d-1 coefficients are drawn independently from src.
// d=1 is permitted and produces the constant polynomial c, consuming no
// randomness; this corresponds to a (1,n) scheme and provides no secrecy.
func Random(d int, c uint64, src entropy.Source) (*Polynomial, error) {
	raw := secure.New(d * 8)
	binary.LittleEndian.PutUint64(raw.Bytes()[0:8], c)

	for i := 1; i < d; i++ {
		v, err := src.ReadUint64()
		if err != nil {
			raw.Destroy()
			return nil, err
		}
		binary.LittleEndian.PutUint64(raw.Bytes()[i*8:i*8+8], v)
	}

	return &Polynomial{raw: raw, degree: d}, nil
}

// New builds a polynomial directly from its coefficients, lowest degree
// first. Used by tests that want to control every coefficient.
func New(coefficients []uint64) *Polynomial {
	raw := secure.New(len(coefficients) * 8)
	for i, c := range coefficients {
		binary.LittleEndian.PutUint64(raw.Bytes()[i*8:i*8+8], c)
	}
	return &Polynomial{raw: raw, degree: len(coefficients)}
}

// Destroy wipes the polynomial's coefficient buffer, including its secret
// constant term. Safe to call multiple times; safe to skip if the
// polynomial is simply left for GC, since secure.Bytes finalizes itself.
func (p *Polynomial) Destroy() {
	p.raw.Destroy()
}

// coefficient returns c_i.
func (p *Polynomial) coefficient(i int) uint64 {
	data := p.raw.Bytes()
	return binary.LittleEndian.Uint64(data[i*8 : i*8+8])
}

// ConstantTerm returns c_0.
func (p *Polynomial) ConstantTerm() uint64 {
	return p.coefficient(0)
}

// EvaluateAt evaluates the polynomial at each of the given points using
// Horner's method, in the same field the coefficients were drawn from.
// Evaluating at x=0 returns c_0 (encoders never use x=0 as a share point).
func (p *Polynomial) EvaluateAt(points []uint64) []uint64 {
	results := make([]uint64, len(points))
	for i, x := range points {
		results[i] = p.evaluateOne(x)
	}
	return results
}

func (p *Polynomial) evaluateOne(x uint64) uint64 {
	// Horner's method, high degree to low: v = c_d-1; v = v*x + c_i.
	var v uint64
	for i := p.degree - 1; i >= 0; i-- {
		v = field.Add(field.Mul(v, x), p.coefficient(i))
	}
	return v
}

// Point is a single (x, y) evaluation pair.
type Point struct {
	X uint64
	Y uint64
}

// EvaluateAtPoints evaluates the polynomial at each x and returns the
// (x, y) pairs, convenient for callers that want the direct-interpolation
// form rather than the basis-precomputed one.
func (p *Polynomial) EvaluateAtPoints(xs []uint64) []Point {
	pairs := make([]Point, len(xs))
	for i, x := range xs {
		pairs[i] = Point{X: x, Y: p.evaluateOne(x)}
	}
	return pairs
}

// ComputeLagrangeBasisForConstantTerm returns, for k distinct non-zero
// evaluation points x_1..x_k, the k field elements L_i such that
// P(0) = sum_i y_i * L_i for any polynomial of length <= k given
// evaluations y_i at these points in the same order.
//
//	L_i = (prod_{j!=i} x_j) * (prod_{j!=i} (x_i XOR x_j))^-1
//
// Returns ErrDuplicatePoint if any two points are equal, which would make
// a denominator zero (field.Inv(0) is undefined).
func ComputeLagrangeBasisForConstantTerm(points []uint64) ([]uint64, error) {
	if err := requireDistinct(points); err != nil {
		return nil, err
	}

	basis := make([]uint64, len(points))
	for i, xi := range points {
		numerator := uint64(1)
		denominator := uint64(1)
		for j, xj := range points {
			if i == j {
				continue
			}
			numerator = field.Mul(numerator, xj)
			denominator = field.Mul(denominator, field.Add(xi, xj))
		}
		basis[i] = field.Mul(numerator, field.Inv(denominator))
	}
	return basis, nil
}

// InterpolateFromLagrangeBasis reconstructs the constant term from k
// evaluations and a basis computed by ComputeLagrangeBasisForConstantTerm
// over the same points in the same order.
func InterpolateFromLagrangeBasis(evaluations, basis []uint64) uint64 {
	var result uint64
	for i, y := range evaluations {
		result = field.Add(result, field.Mul(y, basis[i]))
	}
	return result
}

// InterpolateConstantTerm is the direct, one-call form of interpolation:
// given k distinct (x_i, y_i) pairs, it returns the constant term of the
// unique polynomial of degree < k passing through them. It is algebraically
// equivalent to computing the basis and then interpolating from it, and is
// kept for tests and callers that don't need to reuse a basis across many
// interpolations (the share codec always uses the basis-precomputed path,
// since one basis serves every word in a decode).
func InterpolateConstantTerm(points []Point) (uint64, error) {
	xs := make([]uint64, len(points))
	for i, pt := range points {
		xs[i] = pt.X
	}

	basis, err := ComputeLagrangeBasisForConstantTerm(xs)
	if err != nil {
		return 0, err
	}

	ys := make([]uint64, len(points))
	for i, pt := range points {
		ys[i] = pt.Y
	}

	return InterpolateFromLagrangeBasis(ys, basis), nil
}

func requireDistinct(points []uint64) error {
	seen := make(map[uint64]struct{}, len(points))
	for _, x := range points {
		if _, ok := seen[x]; ok {
			return ErrDuplicatePoint
		}
		seen[x] = struct{}{}
	}
	return nil
}
