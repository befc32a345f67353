package season

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Sentinel is the placeholder the source data uses for "not recorded".
const Sentinel = "--"

// OptionalInt is an integer statistic that may be absent.
type OptionalInt struct {
	value int
	valid bool
}

// SomeInt returns a present OptionalInt.
func SomeInt(v int) OptionalInt {
	return OptionalInt{value: v, valid: true}
}

// NoInt returns an absent OptionalInt.
func NoInt() OptionalInt {
	return OptionalInt{}
}

// Get returns the value and whether it is present.
func (o OptionalInt) Get() (int, bool) {
	return o.value, o.valid
}

// Present reports whether a value was recorded.
func (o OptionalInt) Present() bool {
	return o.valid
}

// OrZero returns the value, or 0 when absent.
func (o OptionalInt) OrZero() int {
	if !o.valid {
		return 0
	}
	return o.value
}

// String renders the value, or the sentinel when absent.
func (o OptionalInt) String() string {
	if !o.valid {
		return Sentinel
	}
	return strconv.Itoa(o.value)
}

// OptionalDecimal is a decimal statistic that may be absent.
type OptionalDecimal struct {
	value decimal.Decimal
	valid bool
}

// SomeDecimal returns a present OptionalDecimal.
func SomeDecimal(v decimal.Decimal) OptionalDecimal {
	return OptionalDecimal{value: v, valid: true}
}

// NoDecimal returns an absent OptionalDecimal.
func NoDecimal() OptionalDecimal {
	return OptionalDecimal{}
}

// Get returns the value and whether it is present.
func (o OptionalDecimal) Get() (decimal.Decimal, bool) {
	return o.value, o.valid
}

// Present reports whether a value was recorded.
func (o OptionalDecimal) Present() bool {
	return o.valid
}

// OrZero returns the value, or decimal zero when absent.
func (o OptionalDecimal) OrZero() decimal.Decimal {
	if !o.valid {
		return decimal.Zero
	}
	return o.value
}

// Equal compares presence and numeric value.
func (o OptionalDecimal) Equal(other OptionalDecimal) bool {
	if o.valid != other.valid {
		return false
	}
	return !o.valid || o.value.Equal(other.value)
}

// String renders the value, or the sentinel when absent.
func (o OptionalDecimal) String() string {
	if !o.valid {
		return Sentinel
	}
	return o.value.String()
}

// OptionalString is a text field that may be absent.
type OptionalString struct {
	value string
	valid bool
}

// SomeString returns a present OptionalString.
func SomeString(v string) OptionalString {
	return OptionalString{value: v, valid: true}
}

// NoString returns an absent OptionalString.
func NoString() OptionalString {
	return OptionalString{}
}

// Get returns the value and whether it is present.
func (o OptionalString) Get() (string, bool) {
	return o.value, o.valid
}

// Present reports whether a value was recorded.
func (o OptionalString) Present() bool {
	return o.valid
}

// Or returns the value, or fallback when absent.
func (o OptionalString) Or(fallback string) string {
	if !o.valid {
		return fallback
	}
	return o.value
}
