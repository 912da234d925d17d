// Package field implements arithmetic in the prime field Z/pZ for a prime p
// that fits in a machine word.
//
// [Element] is an immutable value: every operation returns a new element
// and the receiver is never modified, so elements can be shared freely
// between goroutines.
//
// Constructors report invalid input with an error. Arithmetic between
// elements of different fields, and division by zero, are programming
// errors and panic with an [*Error] that wraps [ErrFieldMismatch] or
// [ErrDivisionByZero].
//
// Primality of the modulus is not checked. Inverse and negative powers rely
// on Fermat's little theorem and are only meaningful for a prime modulus.
package field
