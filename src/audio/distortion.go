package audio

import "math"

// distort is a symmetric soft-clip waveshaper, memoryless and stateless.
// amount in [0,1] crossfades between the dry signal and a tanh-saturated,
// drive-compensated wet signal.
func distort(x, amount float64) float64 {
	drive := 1 + amount*9
	wet := math.Tanh(drive*x) / math.Tanh(drive)
	return x*(1-amount) + wet*amount
}
