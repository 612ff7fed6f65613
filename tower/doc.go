package tower

/*

# Sparse tower integers

This package represents non-negative integers whose magnitudes grow like
power towers. Such values can have more than 2^30 binary digits, so they
cannot be held bit for bit in any conventional arbitrary precision integer.
Instead a value is recorded by the positions of the 1 bits in its binary
expansion, and each position is itself one of these integers. The recursion
bottoms out quickly: the depth of the representation is the iterated log of
the value.

Two canonical forms exist:

  - Small: the value fits an unsigned 64 bit word and is stored verbatim.
  - Large: the value is Sum(2^p_i) for a strictly increasing, non-empty
    sequence of positions p_i, each a tower integer in its own right.

Canonical form is load bearing. Every constructor funnels through a single
normalization: an empty position sequence is the Small zero, and a sequence
whose maximum position is a word below 64 is reassembled into the Small
word. Ordering relies on this - a Large value always exceeds any word, so
mixed comparisons never inspect positions.

The arithmetic surface is deliberately narrow. Addition and multiplication
are total. Log2 is defined only on exact powers of two, and Power only when
the base is an exact power of two; both fail with ErrNotPowerOfTwo
otherwise. Subtraction, division and general exponentiation are not
provided and not needed: the expression enumerator this package serves only
ever raises powers of two to tower integer exponents.

Values are immutable. Position sequences are shared by reference across
derived values and never mutated in place; the sorted-sequence helpers in
sorted.go build a fresh slice whenever a sequence changes. Because of this, values may be freely shared,
compared and hashed without copying.

The conversion surface (Big, FromBig, DecimalString, ParseDecimal) exists
for tests and debugging. It is only usable while every position fits a
signed 32 bit integer - beyond that the decimal form is not materializable
and conversion fails with ErrTooLargeForBigInt.

*/
