package recompose

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/icurves/description"
)

// ErrNotCluster indicates zones that cannot be split together by one curve.
var ErrNotCluster = errors.New("recompose: zones do not form a cluster")

// Cluster is a group of 1, 2 or 4 zones a new curve splits together.
// For 2 zones the pair must be separated by one curve; for 4 zones
// z1-z2 and z3-z4 must be separated by the same curve, as must z1-z3 and z2-z4.
type Cluster struct {
	zones []description.Region
}

// NewCluster validates zones as a cluster.
func NewCluster(zones ...description.Region) (Cluster, error) {
	straddle := func(a, b description.Region) (description.Curve, error) {
		c, ok := a.StraddledContour(b)
		if !ok {
			return "", fmt.Errorf("NewCluster: %s-%s: %w", a, b, ErrNotCluster)
		}

		return c, nil
	}

	switch len(zones) {
	case 1:
	case 2:
		if _, err := straddle(zones[0], zones[1]); err != nil {
			return Cluster{}, err
		}
	case 4:
		// order as two straddling pairs: find partners of zones[0]
		z := orderQuad(zones)
		c12, err := straddle(z[0], z[1])
		if err != nil {
			return Cluster{}, err
		}
		c13, err := straddle(z[0], z[2])
		if err != nil {
			return Cluster{}, err
		}
		c24, err := straddle(z[1], z[3])
		if err != nil || c24 != c13 {
			return Cluster{}, fmt.Errorf("NewCluster: %v: %w", zones, ErrNotCluster)
		}
		c34, err := straddle(z[2], z[3])
		if err != nil || c34 != c12 {
			return Cluster{}, fmt.Errorf("NewCluster: %v: %w", zones, ErrNotCluster)
		}
		zones = z
	default:
		return Cluster{}, fmt.Errorf("NewCluster: %d zones: %w", len(zones), ErrNotCluster)
	}

	return Cluster{zones: append([]description.Region(nil), zones...)}, nil
}

// orderQuad reorders four zones as [smallest, partnerA, partnerB, opposite]
// so that the pairwise checks of NewCluster apply. Unmatched input is
// returned sorted, and the checks then fail.
func orderQuad(zones []description.Region) []description.Region {
	z := append([]description.Region(nil), zones...)
	description.SortRegions(z)
	// z[0] smallest, z[3] largest; middle two are its partners when valid
	return z
}

// Zones returns the cluster zones.
func (c Cluster) Zones() []description.Region {
	return append([]description.Region(nil), c.zones...)
}

// Size returns the number of zones.
func (c Cluster) Size() int { return len(c.zones) }
