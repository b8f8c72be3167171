package xint

import "math/bits"

// U256 is an unsigned 256-bit integer stored as four uint64 words, W[0] the
// least significant. It carries the full double-width product of two F128
// significands (Mul128x128) in the F128 multiply kernel; no format needs
// a first-class 256-bit packed value.
type U256 struct {
	W [4]uint64
}

// U256FromU128 widens a U128 into the low 128 bits of a U256.
func U256FromU128(a U128) U256 {
	return U256{W: [4]uint64{a.Lo, a.Hi, 0, 0}}
}

// IsZero reports whether a is zero.
func (a U256) IsZero() bool {
	return a.W[0] == 0 && a.W[1] == 0 && a.W[2] == 0 && a.W[3] == 0
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func (a U256) Cmp(b U256) int {
	for i := 3; i >= 0; i-- {
		if a.W[i] != b.W[i] {
			if a.W[i] < b.W[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns a+b modulo 2^256.
func (a U256) Add(b U256) U256 {
	var out U256
	var carry uint64
	for i := 0; i < 4; i++ {
		out.W[i], carry = bits.Add64(a.W[i], b.W[i], carry)
	}
	return out
}

// Sub returns a-b modulo 2^256.
func (a U256) Sub(b U256) U256 {
	var out U256
	var borrow uint64
	for i := 0; i < 4; i++ {
		out.W[i], borrow = bits.Sub64(a.W[i], b.W[i], borrow)
	}
	return out
}

// Shl returns a<<n for 0<=n<256.
func (a U256) Shl(n uint) U256 {
	if n == 0 {
		return a
	}
	if n >= 256 {
		return U256{}
	}

	wordShift := n / 64
	bitShift := n % 64
	var out U256
	for i := 3; i >= 0; i-- {
		src := i - int(wordShift)
		if src < 0 {
			continue
		}
		out.W[i] = a.W[src] << bitShift
		if bitShift != 0 && src > 0 {
			out.W[i] |= a.W[src-1] >> (64 - bitShift)
		}
	}
	return out
}

// Shr returns a>>n (logical) for 0<=n<256.
func (a U256) Shr(n uint) U256 {
	if n == 0 {
		return a
	}
	if n >= 256 {
		return U256{}
	}

	wordShift := n / 64
	bitShift := n % 64
	var out U256
	for i := 0; i < 4; i++ {
		src := i + int(wordShift)
		if src > 3 {
			continue
		}
		out.W[i] = a.W[src] >> bitShift
		if bitShift != 0 && src < 3 {
			out.W[i] |= a.W[src+1] << (64 - bitShift)
		}
	}
	return out
}

// ShrJam right-shifts a by n bits, OR-ing every bit shifted off into the LSB.
func (a U256) ShrJam(n uint) U256 {
	if n == 0 {
		return a
	}
	if n >= 256 {
		if a.IsZero() {
			return U256{}
		}
		return U256{W: [4]uint64{1, 0, 0, 0}}
	}

	shifted := a.Shr(n)
	lost := a.Sub(shifted.Shl(n))
	if !lost.IsZero() {
		shifted.W[0] |= 1
	}
	return shifted
}

// Mul128x128 computes the exact 256-bit product of two U128 values.
func Mul128x128(a, b U128) U256 {
	ll := Mul64x64To128(a.Lo, b.Lo)
	lh := Mul64x64To128(a.Lo, b.Hi)
	hl := Mul64x64To128(a.Hi, b.Lo)
	hh := Mul64x64To128(a.Hi, b.Hi)

	// ll occupies bits [0,128), lh and hl occupy [64,192), hh occupies [128,256).
	out := U256{W: [4]uint64{ll.Lo, ll.Hi, hh.Lo, hh.Hi}}
	mid := U256{W: [4]uint64{0, lh.Lo, lh.Hi, 0}}
	out = out.Add(mid)
	mid = U256{W: [4]uint64{0, hl.Lo, hl.Hi, 0}}
	out = out.Add(mid)

	return out
}

// Lo128 returns the low 128 bits of a.
func (a U256) Lo128() U128 {
	return U128{Hi: a.W[1], Lo: a.W[0]}
}

// Hi128 returns the high 128 bits of a.
func (a U256) Hi128() U128 {
	return U128{Hi: a.W[3], Lo: a.W[2]}
}
