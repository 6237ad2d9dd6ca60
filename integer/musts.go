package integer

import "fmt"

// MustQuo is like Quo but panics if y is zero.
func (x Int) MustQuo(y Int) Int {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}

	return q
}

// MustRem is like Rem but panics if y is zero.
func (x Int) MustRem(y Int) Int {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}

	return r
}
