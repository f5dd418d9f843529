package decexpr

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/bigfloat"
)

// DecimalPlaces returns the scale of v, the number of digits after the decimal
// separator in its text. Numbers are written in positional notation before
// counting, so DecimalPlaces(1e-7) is 7. Integers have scale 0.
//
// For text that is not a number, the result is the count of runes left after
// skipping a sign, any leading digits, and one more rune. For numeric text
// this is exactly the number of fractional digits.
func DecimalPlaces(v interface{}) int {
	return scale(numtext(v))
}

// Add returns a+b. The operands are scaled to integers by the larger of their
// scales, so the sum of short decimal literals is exact: Add(0.1, 0.2) is 0.3.
// Operands that are not numbers produce NaN.
func Add(a, b interface{}) float64 {
	return add(numtext(a), numtext(b))
}

// Sub returns a-b, scaled like Add and then rounded to the larger scale of
// the operands.
func Sub(a, b interface{}) float64 {
	return sub(numtext(a), numtext(b))
}

// Mul returns a*b. The decimal separators are removed from both operands, the
// resulting integers are multiplied, and the product is divided by ten to the
// sum of the operands' scales.
func Mul(a, b interface{}) float64 {
	return mul(numtext(a), numtext(b))
}

// Div returns a/b. Like Mul, the separators are removed from both operands,
// and the quotient of the integers is rescaled by the difference of the
// scales. The final division is a float64 division, so unlike Add, Sub, and
// Mul, the result is not guaranteed to be the nearest value to the exact
// quotient of the decimals.
func Div(a, b interface{}) float64 {
	return div(numtext(a), numtext(b))
}

// ToFixed rounds v to n decimal places, rounding halves away from zero.
func ToFixed(v float64, n int) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	m := pow10(n)
	return sign * math.Trunc(m*math.Abs(v)+0.5) / m
}

func add(x, y string) float64 {
	m := pow10(max(scale(x), scale(y)))
	return roundHalfUp(atof(x)*m+atof(y)*m) / m
}

func sub(x, y string) float64 {
	n := max(scale(x), scale(y))
	m := pow10(n)
	return ToFixed(roundHalfUp(atof(x)*m-atof(y)*m)/m, n)
}

func mul(x, y string) float64 {
	m := scale(x) + scale(y)
	return atof(nodot(x)) * atof(nodot(y)) / pow10(m)
}

func div(x, y string) float64 {
	return atof(nodot(x)) / atof(nodot(y)) * pow10(scale(y)-scale(x))
}

// scale counts the runes of s following an optional sign, any digits, and one
// separator rune.
func scale(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i < len(s) {
		_, sz := utf8.DecodeRuneInString(s[i:])
		i += sz
	}
	return utf8.RuneCountInString(s[i:])
}

// nodot removes the first decimal separator from s.
func nodot(s string) string {
	return strings.Replace(s, ".", "", 1)
}

// roundHalfUp rounds x to an integer, rounding halves toward positive infinity.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// numtext gets the text of an operand. Values with no numeric text give "NaN".
func numtext(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return ftoa(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return "NaN"
	}
}

// ftoa formats f in positional notation with the fewest digits that parse
// back to f.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// atof parses numeric text. Surrounding space is ignored and empty text is
// zero. Anything else that doesn't parse is NaN.
func atof(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// powprec is the precision in bits used to compute powers of ten before
// rounding them to float64.
const powprec = 128

// maxpow bounds the exponents held in pow10tab.
const maxpow = 32

var pow10tab = func() (tab [2*maxpow + 1]float64) {
	for i := range tab {
		tab[i] = bigpow10(i - maxpow)
	}
	return tab
}()

// pow10 returns the float64 nearest to 10^n.
func pow10(n int) float64 {
	if -maxpow <= n && n <= maxpow {
		return pow10tab[n+maxpow]
	}
	return bigpow10(n)
}

func bigpow10(n int) float64 {
	var x, y, z big.Float
	x.SetPrec(powprec).SetInt64(10)
	y.SetPrec(powprec).SetInt64(int64(n))
	z.SetPrec(powprec)
	// Pow returns a new value rather than z for some exponents.
	f, _ := bigfloat.Pow(&z, &x, &y).Float64()
	return f
}
