// Package baseconv converts signed integers to unprefixed digit strings
// using repeated division, without strconv formatting helpers.
package baseconv

// Digit alphabets for the supported targets.
const (
	BinaryDigits = "01"
	HexDigits    = "0123456789ABCDEF"
)

// ConvertPositive converts a non-negative integer to a string in the given
// base by repeated division. The digits string supplies the alphabet; its
// length must be at least base.
func ConvertPositive(n int64, base int64, digits string) string {
	if n == 0 {
		return "0"
	}

	buf := make([]byte, 0, 64)
	for n > 0 {
		buf = append(buf, digits[n%base])
		n /= base
	}

	// Digits were collected least-significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ToBinary converts an integer to a binary string with no "0b" prefix.
// Negative values get a leading minus sign; zero is never signed.
// n must be greater than math.MinInt64, whose magnitude is not representable.
func ToBinary(n int64) string {
	if n < 0 {
		return "-" + ConvertPositive(-n, 2, BinaryDigits)
	}
	return ConvertPositive(n, 2, BinaryDigits)
}

// ToHex converts an integer to an uppercase hexadecimal string with no "0x"
// prefix. Negative values get a leading minus sign; zero is never signed.
func ToHex(n int64) string {
	if n < 0 {
		return "-" + ConvertPositive(-n, 16, HexDigits)
	}
	return ConvertPositive(n, 16, HexDigits)
}
