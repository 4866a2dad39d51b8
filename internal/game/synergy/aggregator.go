package synergy

// MaxInstancesPerPattern caps how many disjoint copies of one pattern stack.
const MaxInstancesPerPattern = 3

// instanceMultipliers — убывающий вклад каждой следующей копии паттерна.
var instanceMultipliers = [MaxInstancesPerPattern]float64{1.0, 0.5, 0.25}

const (
	// acceleration in percent per extra instance, and its ceiling
	accelStepPercent = 35
	accelCapPercent  = 170
)

// GetTotalMultiplier returns the pooled multiplier for instanceCount stacked copies.
// 0 → 0.0, 1 → 1.0, 2 → 1.5, 3 and more → 1.75.
func GetTotalMultiplier(instanceCount int) float64 {
	total := 0.0
	for i := 0; i < instanceCount && i < len(instanceMultipliers); i++ {
		total += instanceMultipliers[i]
	}
	return total
}

// GetInstanceMultiplier returns the weight of the instance at 0-based index.
// Out-of-range indexes weigh 0.
func GetInstanceMultiplier(index int) float64 {
	if index < 0 || index >= len(instanceMultipliers) {
		return 0
	}
	return instanceMultipliers[index]
}

// GetPointsAccelerationMultiplier returns how fast synergy points accrue.
// Once the pattern skill is learned there is no acceleration. Before that,
// every instance beyond the first adds 35%, capped at 1.70.
func GetPointsAccelerationMultiplier(instanceCount int, skillLearned bool) float64 {
	if skillLearned || instanceCount <= 1 {
		return 1.0
	}
	extra := instanceCount - 1
	if extra > (accelCapPercent-100)/accelStepPercent {
		return float64(accelCapPercent) / 100
	}
	// integer percent keeps 1.35 and 1.70 exact
	return float64(100+accelStepPercent*extra) / 100
}
