/*
Package modint provides ModInt, an arbitrary-precision integer that is kept reduced
into [0, modulus) for its whole lifetime.

	a := modint.MustNew(big.NewInt(2), big.NewInt(3))
	b, _ := a.Add(modint.Int64(5))  // ModInt(value=1, modulus=3)
	_, _ = a.AddAssign(b)           // a is now ModInt(value=0, modulus=3)

Every binary operation takes an Operand, which is either an Int (reduced by the
receiver's modulus before use) or another *ModInt carrying the same modulus. Values
of unknown Go type can be adapted with OperandOf.

Operations come in two forms. Add, Sub, Mul and Exp return a new ModInt and leave
the receiver alone. AddAssign, SubAssign, MulAssign, ExpAssign and Neg overwrite the
receiver's residue and return the receiver itself.

The modulus must be positive; zero is rejected at construction. Exponents are
normalized like any other operand, so Exp(Int64(-1)) raises to modulus-1.

A ModInt is not safe for concurrent mutation. Callers sharing one across goroutines
must synchronize the in-place operations themselves.
*/
package modint
