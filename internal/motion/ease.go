package motion

import "math"

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

var (
	Linear    Easing = func(t float64) float64 { return t }
	EaseIn           = CubicBezier(0.42, 0, 1, 1)
	EaseOut          = CubicBezier(0, 0, 0.58, 1)
	EaseInOut        = CubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier returns a CSS-style timing function with control points
// (x1,y1) and (x2,y2). Endpoints are pinned so 0 and 1 map exactly.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton first, bisection if the slope flattens out.
		u := t
		for range 8 {
			dx := bezier(u, x1, x2) - t
			if math.Abs(dx) < 1e-6 {
				return bezier(u, y1, y2)
			}
			d := bezierSlope(u, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			u -= dx / d
		}

		lo, hi := 0.0, 1.0
		u = t
		for range 40 {
			x := bezier(u, x1, x2)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(u, y1, y2)
	}
}

func bezier(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(u, p1, p2 float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}
