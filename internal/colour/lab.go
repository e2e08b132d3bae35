package colour

import "math"

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// Lab is a colour in CIE L*a*b* space relative to D65.
type Lab struct {
	L, A, B float64
}

// ToLab converts c to CIE Lab via linear sRGB and XYZ. Alpha is ignored.
func ToLab(c RGBA) Lab {
	r := Linearize(c.r)
	g := Linearize(c.g)
	b := Linearize(c.b)

	x := (0.4124564*r + 0.3575761*g + 0.1804375*b) / whiteX
	y := (0.2126729*r + 0.7151522*g + 0.0721750*b) / whiteY
	z := (0.0193339*r + 0.1191920*g + 0.9503041*b) / whiteZ

	fx := labF(x)
	fy := labF(y)
	fz := labF(z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Pow(t, 1.0/3.0)
	}
	return 7.787*t + 16.0/116.0
}

// DeltaE returns the CIE76 colour difference between c1 and c2.
// Larger values are easier to tell apart.
func DeltaE(c1, c2 RGBA) float64 {
	return ToLab(c1).Distance(ToLab(c2))
}

// Distance returns the Euclidean distance between two Lab colours.
func (l Lab) Distance(other Lab) float64 {
	dL := l.L - other.L
	da := l.A - other.A
	db := l.B - other.B
	return math.Sqrt(dL*dL + da*da + db*db)
}
