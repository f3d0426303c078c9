package dataset

import (
	"fmt"

	"github.com/openyieldtables/go-yieldtables/pkg/model"
)

// InterpolatedClass derives a synthetic yield class for a fractional target
// by interpolating every metric column linearly between the rows of
// floor(target) and floor(target)+1. Both bracketing classes must exist in
// the table; rows are matched positionally and the shorter class bounds the
// result.
func (s *Store) InterpolatedClass(id int, target float64) (model.YieldClass, error) {
	lower := float64(int(target))
	upper := lower + 1

	lowerRows, err := s.classRowsFor(id, lower)
	if err != nil {
		return model.YieldClass{}, err
	}
	upperRows, err := s.classRowsFor(id, upper)
	if err != nil {
		return model.YieldClass{}, err
	}

	count := len(lowerRows)
	if len(upperRows) < count {
		count = len(upperRows)
	}

	rows := make([]model.YieldClassRow, 0, count)
	for i := 0; i < count; i++ {
		lo, hi := lowerRows[i], upperRows[i]
		if lo.Age != hi.Age {
			return model.YieldClass{}, fmt.Errorf("dataset: yield table %d: age mismatch between classes %g and %g (%d vs %d)", id, lower, upper, lo.Age, hi.Age)
		}
		rows = append(rows, model.YieldClassRow{
			Age:                       lo.Age,
			DominantHeight:            interpolate(target, lower, upper, lo.DominantHeight, hi.DominantHeight),
			AverageHeight:             interpolate(target, lower, upper, lo.AverageHeight, hi.AverageHeight),
			DBH:                       interpolate(target, lower, upper, lo.DBH, hi.DBH),
			Taper:                     interpolate(target, lower, upper, lo.Taper, hi.Taper),
			TreesPerHa:                interpolate(target, lower, upper, lo.TreesPerHa, hi.TreesPerHa),
			BasalArea:                 interpolate(target, lower, upper, lo.BasalArea, hi.BasalArea),
			VolumePerHa:               interpolate(target, lower, upper, lo.VolumePerHa, hi.VolumePerHa),
			AverageAnnualAgeIncrement: interpolate(target, lower, upper, lo.AverageAnnualAgeIncrement, hi.AverageAnnualAgeIncrement),
			TotalGrowthPerformance:    interpolate(target, lower, upper, lo.TotalGrowthPerformance, hi.TotalGrowthPerformance),
			CurrentAnnualIncrement:    interpolate(target, lower, upper, lo.CurrentAnnualIncrement, hi.CurrentAnnualIncrement),
			MeanAnnualIncrement:       interpolate(target, lower, upper, lo.MeanAnnualIncrement, hi.MeanAnnualIncrement),
		})
	}

	return model.YieldClass{YieldClass: target, Rows: rows}, nil
}

// interpolate evaluates the piecewise-linear interpolant through (x0, y0) and
// (x1, y1) at x, clamping outside the interval. Absent values count as 0.
func interpolate(x, x0, x1 float64, y0, y1 *float64) *float64 {
	lo := deref(y0)
	hi := deref(y1)

	var value float64
	switch {
	case x <= x0:
		value = lo
	case x >= x1:
		value = hi
	default:
		value = lo + (hi-lo)*(x-x0)/(x1-x0)
	}
	return &value
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
