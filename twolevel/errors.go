package twolevel

import "errors"

// ErrTooFewCities is returned by NewTree when n_cities is too small to
// form at least two segments (invariant 6 of the data model requires
// P = floor(sqrt(n_cities)) + 1 >= 2). Unlike the precondition violations
// enforced via assert, this is the one construction-time condition a
// driver is expected to guard with a normal error check, the same way
// the teacher's builder constructors return ErrTooFewVertices instead of
// panicking on a bad size.
var ErrTooFewCities = errors.New("twolevel: n_cities too small to form a non-degenerate tree")
