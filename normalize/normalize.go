package normalize

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultMaxDistance is the bound the largest raw coordinate magnitude is scaled to
const DefaultMaxDistance = 0.75

var (
	ErrDegenerateMesh     = errors.New("degenerate mesh: cannot normalize")
	ErrInvalidMaxDistance = errors.New("max distance must be positive and finite")
	ErrNumericRange       = errors.New("normalized coordinates exceed floating point range")
)

// Centroid returns the component-wise mean of verts
func Centroid(verts []r3.Vec) (c r3.Vec, err error) {
	if len(verts) == 0 {
		return c, fmt.Errorf("%w: no vertices", ErrDegenerateMesh)
	}
	// Each vertex is weighted before summing so large coordinates cannot overflow the sum
	w := 1. / float64(len(verts))
	for _, v := range verts {
		c = r3.Add(c, r3.Scale(w, v))
	}
	return
}

// Center returns a new slice with c subtracted from every vertex
func Center(verts []r3.Vec, c r3.Vec) (centered []r3.Vec) {
	centered = make([]r3.Vec, len(verts))
	for i, v := range verts {
		centered[i] = r3.Sub(v, c)
	}
	return
}

// MaxDim is the largest absolute value of any coordinate of verts, zero for no vertices
func MaxDim(verts []r3.Vec) float64 {
	if len(verts) == 0 {
		return 0
	}
	mags := make([]float64, len(verts))
	for i, v := range verts {
		mags[i] = math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	}
	return floats.Max(mags)
}

/*
Normalize translates verts so their centroid lies on the origin, then scales
them uniformly by maxDistance/MaxDim(verts).

The scale comes from the magnitudes of the vertices as read, not from the
centered ones, so the largest centered coordinate is not in general equal to
maxDistance. This is intentional, do not switch it to the centered magnitudes.

The result is a new slice of the same length and order. A mesh with no
vertices, all vertices at one point, or a max dimension too small to divide by
is rejected with ErrDegenerateMesh. Coordinates so large that centering
overflows are rejected with ErrNumericRange.
*/
func Normalize(verts []r3.Vec, maxDistance float64) (normVerts []r3.Vec, err error) {
	var (
		centroid r3.Vec
	)
	if !(maxDistance > 0) || math.IsInf(maxDistance, 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMaxDistance, maxDistance)
	}
	if centroid, err = Centroid(verts); err != nil {
		return nil, err
	}
	if coincident(verts) {
		return nil, fmt.Errorf("%w: all %d vertices are at %v", ErrDegenerateMesh, len(verts), verts[0])
	}
	maxDim := MaxDim(verts)
	if maxDim == 0 || math.IsInf(maxDim, 0) || math.IsNaN(maxDim) {
		return nil, fmt.Errorf("%w: max dimension is %v", ErrDegenerateMesh, maxDim)
	}
	scale := maxDistance / maxDim
	if !finite(scale) {
		// Subnormal maxDim
		return nil, fmt.Errorf("%w: max dimension %v gives scale %v", ErrDegenerateMesh, maxDim, scale)
	}
	normVerts = Center(verts, centroid)
	for i, v := range normVerts {
		normVerts[i] = r3.Scale(scale, v)
		if !finiteVec(normVerts[i]) {
			return nil, fmt.Errorf("%w: vertex %d %v with centroid %v and scale %v",
				ErrNumericRange, i, verts[i], centroid, scale)
		}
	}
	return
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v r3.Vec) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func coincident(verts []r3.Vec) bool {
	for _, v := range verts[1:] {
		if v != verts[0] {
			return false
		}
	}
	return true
}
