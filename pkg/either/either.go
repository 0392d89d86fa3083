// Package either provides a two-tag sum type used to correlate the
// request and response channels of combined components with the side
// that owns them.
package either

// Either holds exactly one of a left L or a right R value. The zero
// value is Left of L's zero value; construct with Left or Right.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left wraps a value in the left variant.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right wraps a value in the right variant.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// IsLeft reports whether the value is the left variant.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the value is the right variant.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and whether it is present.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether it is present.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Fold eliminates the sum by applying exactly one of the two functions.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft transforms the left value, leaving a right variant untouched.
func MapLeft[L, R, T any](e Either[L, R], f func(L) T) Either[T, R] {
	if e.isRight {
		return Right[T, R](e.right)
	}
	return Left[T, R](f(e.left))
}

// MapRight transforms the right value, leaving a left variant untouched.
func MapRight[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return Right[L, T](f(e.right))
}
