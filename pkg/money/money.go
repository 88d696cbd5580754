package money

import "math"

// Round2 округляет сумму до центов, половина - от нуля.
func Round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		// без отрицательного нуля
		return 0
	}
	return r
}

// Sum складывает суммы и округляет итог до центов.
func Sum(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return Round2(total)
}
