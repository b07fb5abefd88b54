package encode

// AsDigits writes value into output as zero-padded ASCII decimal digits, filling output exactly. Digits that do not
// fit are dropped from the most significant end, so callers check ranges first. Negative values are written as their
// magnitude.
func AsDigits(value int, output []uint8) {
	if value < 0 {
		value = -value
	}

	for i := len(output) - 1; i >= 0; i-- {
		output[i] = '0' + uint8(value%10)
		value /= 10
	}
}
