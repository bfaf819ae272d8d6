package stats

import (
	"fmt"
	"math"
)

// Stat is a running min/sum/count/max over one group's observations.
// MergeWith is associative and commutative, so independently built Stats can
// be combined in any order. NewStat returns the merge identity.
type Stat struct {
	Min   float64
	Sum   float64
	Count int64
	Max   float64
}

func NewStat() Stat {
	return Stat{
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
}

// Add folds a single observation into the statistic.
func (s *Stat) Add(x float64) {
	if x < s.Min {
		s.Min = x
	}
	s.Sum += x
	s.Count++
	if x > s.Max {
		s.Max = x
	}
}

// MergeWith folds another statistic into this one field-wise.
func (s *Stat) MergeWith(other *Stat) {
	s.Min = math.Min(s.Min, other.Min)
	s.Sum += other.Sum
	s.Count += other.Count
	s.Max = math.Max(s.Max, other.Max)
}

// Average is Sum/Count. NaN when no observation has been added; callers must
// not ask for the average of an identity Stat.
func (s Stat) Average() float64 {
	return s.Sum / float64(s.Count)
}

func (s Stat) String() string {
	return fmt.Sprintf("%.1f/%.1f/%.1f", s.Min, s.Average(), s.Max)
}
