// Package sv provides non-owning views over byte spans with the small set of helpers needed when tokenizing
// text: trimming, slicing, splitting, ASCII case handling and numeric checks.
//
// A View never copies on its own; TrimLeft, Slice, Split and friends return views into the same memory.
// Lower, Upper and Capitalize are the exceptions and return views over fresh copies.
package sv

import (
	"bytes"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gostonefire/collections/errs"
)

// View - A non-owning view of a byte span
type View struct {
	data []byte
}

// New - Returns a view over data
func New(data []byte) View {
	return View{data: data}
}

// FromString - Returns a view over the content of s
func FromString(s string) View {
	return View{data: []byte(s)}
}

// Bytes - Returns the viewed bytes, sharing memory with the view
func (V View) Bytes() []byte {
	return V.data
}

// String - Returns the viewed bytes as a string
func (V View) String() string {
	return string(V.data)
}

// Len - Returns the number of viewed bytes
func (V View) Len() int {
	return len(V.data)
}

// TrimLeft - Drops leading white space
func (V View) TrimLeft() View {
	i := 0
	for i < len(V.data) && isSpace(V.data[i]) {
		i++
	}
	return View{data: V.data[i:]}
}

// TrimRight - Drops trailing white space
func (V View) TrimRight() View {
	i := len(V.data)
	for i > 0 && isSpace(V.data[i-1]) {
		i--
	}
	return View{data: V.data[:i]}
}

// Trim - Drops leading and trailing white space
func (V View) Trim() View {
	return V.TrimLeft().TrimRight()
}

// Slice - Returns the sub view [lo, hi). An empty view is returned if lo is outside the view or hi is not
// above lo, hi is clamped to the view's length.
func (V View) Slice(lo, hi int) View {
	if lo < 0 || lo >= len(V.data) || hi <= lo {
		return View{}
	}
	if hi > len(V.data) {
		hi = len(V.data)
	}
	return View{data: V.data[lo:hi]}
}

// Lower - Returns a copy with ASCII letters in lower case
func (V View) Lower() View {
	out := make([]byte, len(V.data))
	for i, c := range V.data {
		out[i] = toLower(c)
	}
	return View{data: out}
}

// Upper - Returns a copy with ASCII letters in upper case
func (V View) Upper() View {
	out := make([]byte, len(V.data))
	for i, c := range V.data {
		out[i] = toUpper(c)
	}
	return View{data: out}
}

// Capitalize - Returns a lower case copy with the first byte in upper case if it is a letter
func (V View) Capitalize() View {
	out := V.Lower()
	if len(out.data) > 0 {
		out.data[0] = toUpper(out.data[0])
	}
	return out
}

// HasPrefix - Returns true if the view begins with prefix
func (V View) HasPrefix(prefix View) bool {
	return bytes.HasPrefix(V.data, prefix.data)
}

// HasSuffix - Returns true if the view ends with suffix
func (V View) HasSuffix(suffix View) bool {
	return bytes.HasSuffix(V.data, suffix.data)
}

// Equal - Returns true if both views have the same length and content
func (V View) Equal(other View) bool {
	return bytes.Equal(V.data, other.data)
}

// Find - Returns the index of the first occurrence of sub, or -1 if sub is not in the view
func (V View) Find(sub View) int {
	return bytes.Index(V.data, sub.data)
}

// Contains - Returns true if sub is in the view
func (V View) Contains(sub View) bool {
	return V.Find(sub) >= 0
}

// Split - Splits the view at the first occurrence of c.
//
// It returns:
//   - head is the part before c, the whole view if c is not found
//   - rest is the part after c, empty if c is not found
func (V View) Split(c byte) (head, rest View) {
	i := bytes.IndexByte(V.data, c)
	if i < 0 {
		head = V
		rest = View{data: V.data[len(V.data):]}
		return
	}

	head = View{data: V.data[:i]}
	rest = View{data: V.data[i+1:]}

	return
}

// IsInt - Returns true if the view is an optional '-' followed by one or more digits
func (V View) IsInt() bool {
	digits := V.data
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return false
	}

	for _, c := range digits {
		if !isDigit(c) {
			return false
		}
	}

	return true
}

// IsFloat - Returns true if the view is an optional '-' followed by digits holding at most one '.' that is
// neither first nor last
func (V View) IsFloat() bool {
	digits := V.data
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return false
	}

	dot := false
	for i, c := range digits {
		if c == '.' {
			if dot || i == 0 || i == len(digits)-1 {
				return false
			}
			dot = true
			continue
		}
		if !isDigit(c) {
			return false
		}
	}

	return true
}

// IsAlpha - Returns true if every byte is an ASCII letter
func (V View) IsAlpha() bool {
	for _, c := range V.data {
		if !isAlpha(c) {
			return false
		}
	}
	return true
}

// IsAlnum - Returns true if every byte is an ASCII letter or digit
func (V View) IsAlnum() bool {
	for _, c := range V.data {
		if !isAlpha(c) && !isDigit(c) {
			return false
		}
	}
	return true
}

// IsUpper - Returns true if no letter in the view is lower case
func (V View) IsUpper() bool {
	for _, c := range V.data {
		if c >= 'a' && c <= 'z' {
			return false
		}
	}
	return true
}

// IsLower - Returns true if no letter in the view is upper case
func (V View) IsLower() bool {
	for _, c := range V.data {
		if c >= 'A' && c <= 'Z' {
			return false
		}
	}
	return true
}

// Int - Converts the view to an int.
// It returns an error of type errs.InvalidNumber if the view is not an integer or does not fit in an int.
func (V View) Int() (n int, err error) {
	if !V.IsInt() {
		err = errs.NewInvalidNumber(V.String())
		return
	}

	n, err = strconv.Atoi(V.String())
	if err != nil {
		err = errors.Wrap(errs.NewInvalidNumber(V.String()), err.Error())
	}

	return
}

// Float - Converts the view to a float32.
// It returns an error of type errs.InvalidNumber if the view is not a decimal number.
func (V View) Float() (f float32, err error) {
	if !V.IsFloat() {
		err = errs.NewInvalidNumber(V.String())
		return
	}

	f64, err := strconv.ParseFloat(V.String(), 32)
	if err != nil {
		err = errors.Wrap(errs.NewInvalidNumber(V.String()), err.Error())
		return
	}
	f = float32(f64)

	return
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
