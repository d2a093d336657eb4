package util

// Lerp interpola linearmente entre a e b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Abs retorna o valor absoluto de um int32.
func Abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Between verifica se um valor está entre um limite inferior e superior.
func Between(lower, t, upper float32) bool {
	return t >= lower && t <= upper
}

// Clamp limita um valor ao intervalo [lower, upper].
func Clamp(v, lower, upper float32) float32 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
