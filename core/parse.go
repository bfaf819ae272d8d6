package core

// ParseValue decodes the fixed-format decimal that follows a key delimiter:
// an optional minus sign, one or two integer digits, a dot and exactly one
// fractional digit. It returns the value and the rest of the input past the
// record terminator. Input is trusted; malformed records are not detected.
func ParseValue(b []byte) (float64, []byte) {
	neg := b[0] == '-'
	i := 0
	if neg {
		i = 1
	}
	v := float64(b[i] - '0')
	i++

	var rest []byte
	if b[i] == '.' {
		v += float64(b[i+1]-'0') / 10.0
		rest = b[i+3:]
	} else {
		v = v*10.0 + float64(b[i]-'0')
		v += float64(b[i+2]-'0') / 10.0
		rest = b[i+4:]
	}

	if neg {
		v = -v
	}
	return v, rest
}
