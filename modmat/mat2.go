package modmat

import "github.com/kryptolab/polygraph/core"

// New builds a Mat2 from row-major entries, reducing each into [0,25].
// Negative entries are legal inputs and wrap the usual modular way.
func New(a, b, c, d int) Mat2 {
	return Mat2{
		A: core.Mod26(a), B: core.Mod26(b),
		C: core.Mod26(c), D: core.Mod26(d),
	}
}

// Det returns the determinant reduced into [0,25].
func (m Mat2) Det() int {
	return core.Mod26(m.A*m.D - m.B*m.C)
}

// Invertible reports whether the matrix has an inverse mod 26, i.e. whether
// gcd(Det, 26) == 1. It must be consulted before every use of a candidate
// matrix, not only at construction: matrices arrive from external sweeps.
func (m Mat2) Invertible() bool {
	return gcd(m.Det(), 26) == 1
}

// Inverse returns the modular inverse matrix, or ErrNotInvertible when the
// determinant shares a factor with 26.
//
// Contracts:
//   - Inverse(m)·m ≡ identity mod 26 whenever err == nil.
//
// Complexity: O(1).
func (m Mat2) Inverse() (Mat2, error) {
	detInv, ok := modInverse(m.Det(), 26)
	if !ok {
		return Mat2{}, ErrNotInvertible
	}

	// Adjugate scaled by det⁻¹, entries reduced mod 26.
	return New(
		detInv*m.D, detInv*-m.B,
		detInv*-m.C, detInv*m.A,
	), nil
}

// EncryptBlock computes m·(p1,p2) mod 26. Encryption never needs the
// inverse, so it is total.
func (m Mat2) EncryptBlock(p1, p2 int) (int, int) {
	return core.Mod26(m.A*p1 + m.B*p2), core.Mod26(m.C*p1 + m.D*p2)
}

// DecryptBlock computes Inverse(m)·(c1,c2) mod 26, undoing EncryptBlock.
//
// Errors: ErrNotInvertible when the key has no modular inverse; callers in
// a parameter sweep skip the combination rather than abort.
func (m Mat2) DecryptBlock(c1, c2 int) (int, int, error) {
	inv, err := m.Inverse()
	if err != nil {
		return 0, 0, err
	}
	p1, p2 := inv.EncryptBlock(c1, c2)

	return p1, p2, nil
}

// modInverse returns a⁻¹ mod n via the extended Euclidean algorithm, with
// ok=false when gcd(a,n) != 1. Exact integer arithmetic only.
func modInverse(a, n int) (int, bool) {
	var (
		r0, r1 = a, n // remainder sequence
		s0, s1 = 1, 0 // Bézout coefficient sequence for a
	)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}
	if r0 != 1 && r0 != -1 {
		return 0, false
	}

	// Normalize the coefficient into [0,n).
	s0 %= n
	if s0 < 0 {
		s0 += n
	}

	return s0, true
}

// gcd returns the non-negative greatest common divisor of a and b.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
