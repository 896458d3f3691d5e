// Package calc provides integer arithmetic operations.
//
// Operands and results are Go ints. Overflow wraps around using two's
// complement, as defined by the Go language for signed integers; no
// overflow is reported.
package calc

// Calculator provides basic arithmetic operations.
// The zero value is ready to use.
type Calculator struct{}

// New returns a Calculator.
func New() Calculator {
	return Calculator{}
}

// Add returns the sum of two integers.
func (Calculator) Add(a, b int) int {
	return a + b
}

// Subtract returns the difference of two integers.
func (Calculator) Subtract(a, b int) int {
	return a - b
}
