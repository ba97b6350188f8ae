package common

import mathUtil "github.com/pkg/math"

const (
	FirstPlacePoints = 100
	MinPoints        = 1
)

// CalculatePoints returns the award of the completion at the given 1-based position. The first
// place earns FirstPlacePoints, every following place one point less, never below MinPoints.
func CalculatePoints(position int) int {
	return mathUtil.MaxInt(FirstPlacePoints-position+1, MinPoints)
}
