package diagram

import (
	"fmt"

	"github.com/katalvlaran/icurves/geometry"
	"go.uber.org/zap"
)

// Adjacent reports whether r1 and r2 share a boundary arc: their zones must
// differ by exactly one curve, and r1 must overlap r2 shifted by probe along
// one of ±x, ±y. The probe set is symmetric, so Adjacent is too.
func Adjacent(r1, r2 *Region, probe float64) (bool, error) {
	if _, ok := r1.Zone.StraddledContour(r2.Zone); !ok {
		return false, nil
	}
	p1, p2 := r1.Polygon(), r2.Polygon()
	shifts := [4][2]float64{{-probe, 0}, {probe, 0}, {0, -probe}, {0, probe}}
	for _, s := range shifts {
		ok, err := geometry.Overlaps(p1, p2.Translate(s[0], s[1]))
		if err != nil {
			return false, fmt.Errorf("Adjacent(%s, %s): %w", r1.Zone, r2.Zone, err)
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

func errFields(r1, r2 *Region, err error, fallback string) []zap.Field {
	return []zap.Field{
		zap.String("zone1", r1.Zone.String()),
		zap.String("zone2", r2.Zone.String()),
		zap.String("fallback", fallback),
		zap.Error(err),
	}
}
