package cad

// XY is a 2D point or vector.
type XY struct {
	X, Y float64
}

// XYZ is a 3D point or vector.
type XYZ struct {
	X, Y, Z float64
}

var (
	// XAxis is the unit vector along X.
	XAxis = XYZ{X: 1}
	// YAxis is the unit vector along Y.
	YAxis = XYZ{Y: 1}
	// ZAxis is the unit vector along Z and the default extrusion direction.
	ZAxis = XYZ{Z: 1}
)

// IsZero reports whether all components are zero.
func (p XYZ) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

// XY drops the Z component.
func (p XYZ) XY() XY {
	return XY{X: p.X, Y: p.Y}
}
