package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ANOVAResult holds the outcome of a one-way analysis of variance.
type ANOVAResult struct {
	F         float64
	P         float64
	DFBetween int
	DFWithin  int
}

// OneWayANOVA tests equality of group means across k independent groups.
// Every group must be non-empty and at least two groups are required.
func OneWayANOVA(groups [][]float64) (ANOVAResult, error) {
	k := len(groups)
	if k < 2 {
		return ANOVAResult{}, errors.New("anova: need at least two groups")
	}
	n := 0
	total := 0.0
	for i, g := range groups {
		if len(g) == 0 {
			return ANOVAResult{}, fmt.Errorf("anova: group %d is empty", i)
		}
		n += len(g)
		total += Sum(g)
	}
	dfb := k - 1
	dfw := n - k
	if dfw <= 0 {
		return ANOVAResult{}, errors.New("anova: not enough observations")
	}
	grand := total / float64(n)

	var ssb, ssw float64
	for _, g := range groups {
		m := Mean(g)
		d := m - grand
		ssb += float64(len(g)) * d * d
		for _, v := range g {
			e := v - m
			ssw += e * e
		}
	}
	res := ANOVAResult{DFBetween: dfb, DFWithin: dfw}
	if ssw == 0 {
		// All within-group variation is zero; the means either agree
		// exactly (no effect) or differ with infinite confidence.
		if ssb == 0 {
			res.F, res.P = 0, 1
		} else {
			res.F, res.P = math.Inf(1), 0
		}
		return res, nil
	}
	res.F = (ssb / float64(dfb)) / (ssw / float64(dfw))
	dist := distuv.F{D1: float64(dfb), D2: float64(dfw)}
	res.P = dist.Survival(res.F)
	return res, nil
}
