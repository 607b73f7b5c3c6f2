// Package modmat implements exact 2×2 integer matrix arithmetic modulo 26
// for polygraphic (Hill) cipher blocks.
//
// A Hill cipher encrypts two letters at a time as a matrix-vector product
// mod 26; decryption multiplies by the modular inverse matrix. A 2×2 key is
// invertible mod 26 iff gcd(det, 26) == 1 — determinants sharing a factor
// with 26 (2 or 13) are categorically rejected, which rules out roughly half
// of naively generated matrices.
//
// Algorithm outline (Inverse):
//  1. det = (a·d − b·c) mod 26.
//  2. detInv = det⁻¹ mod 26 via the extended Euclidean algorithm;
//     fails with ErrNotInvertible when gcd(det, 26) != 1.
//  3. inverse = detInv · adj(M) mod 26, adj(M) = [[d,−b],[−c,a]].
//
// All arithmetic is exact integer arithmetic: the floating-point determinant
// shortcut common in exploratory scripts truncates −44 to −43 on some
// platforms and silently flips invertibility, so it is deliberately absent.
//
// Complexity: every operation is O(1); Inverse performs a constant-size
// extended-Euclid run over the modulus 26.
package modmat
