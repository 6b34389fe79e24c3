package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Area is a square region of the complex plane. The square spans
// [OriginX, OriginX+SideLength] x [OriginY, OriginY+SideLength].
type Area struct {
	OriginX    float64 `json:"origin_x"`
	OriginY    float64 `json:"origin_y"`
	SideLength float64 `json:"side_length"`
}

// DefaultArea frames the classic Mandelbrot view.
var DefaultArea = Area{OriginX: -1.5, OriginY: -1.5, SideLength: 3.0}

// NewArea validates an area that comes from outside the program.
func NewArea(originX, originY, sideLength float64) (Area, error) {
	for _, v := range []float64{originX, originY, sideLength} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Area{}, fmt.Errorf("area values must be finite")
		}
	}
	if sideLength <= 0 {
		return Area{}, fmt.Errorf("side length must be positive, got %g", sideLength)
	}
	return Area{OriginX: originX, OriginY: originY, SideLength: sideLength}, nil
}

// String formats the area as "x,y,side" with enough digits to parse back exactly.
func (a Area) String() string {
	return formatFloats(a.OriginX, a.OriginY, a.SideLength)
}

// ParseArea is the inverse of Area.String.
func ParseArea(s string) (Area, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return Area{}, fmt.Errorf("parse area %q: %w", s, err)
	}
	return NewArea(v[0], v[1], v[2])
}

// Selection is a square picked on the canvas, in pixels.
type Selection struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	SideLength float64 `json:"side_length"`
}

// Fractal selects the recurrence constant. It is either Mandelbrot{} or Julia{}.
type Fractal interface {
	constant(z0 complex128) complex128
	String() string
}

// Mandelbrot iterates every pixel against its own coordinate.
type Mandelbrot struct{}

func (Mandelbrot) constant(z0 complex128) complex128 { return z0 }
func (Mandelbrot) String() string                    { return "mandelbrot" }

// Julia iterates every pixel against the fixed constant C.
type Julia struct {
	C complex128
}

func (j Julia) constant(complex128) complex128 { return j.C }

func (j Julia) String() string {
	return "julia(" + formatFloats(real(j.C), imag(j.C)) + ")"
}

// DefaultJulia is used when the configuration names no constant.
var DefaultJulia = Julia{C: complex(-0.8, 0.156)}

// ParseJulia reads a constant written as "re,im".
func ParseJulia(s string) (Julia, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return Julia{}, fmt.Errorf("parse julia constant %q: %w", s, err)
	}
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Julia{}, fmt.Errorf("parse julia constant %q: values must be finite", s)
		}
	}
	return Julia{C: complex(v[0], v[1])}, nil
}

func fractalOrDefault(f Fractal) Fractal {
	if f == nil {
		return Mandelbrot{}
	}
	return f
}

func formatFloats(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated values, got %d", n, len(parts))
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
