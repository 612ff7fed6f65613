package sequence

/*

# Census of parenthesized power towers of twos

A size-n expression is a fully parenthesized expression built from n copies
of the literal 2 and the binary exponentiation operator. This package
counts, for each n, the number of distinct numerical values such
expressions can take (OEIS A002845):

	1, 1, 1, 2, 4, 8, 17, 36, 78, 171, 379, 851, ...

Every size-n expression splits uniquely at its top operator into a base
subexpression of size i and an exponent subexpression of size n-i. The
enumerator therefore builds the set of distinct values of size n by
combining every base value of size i with every exponent value of size n-i
through tower.Power, deduplicating with the tower integer's hash and
equality. The size-1 set is seeded with the single value 2, and every base
reachable this way is an exact power of two, so Power's precondition holds
inductively.

Sets are computed lazily on first request and cached for the lifetime of
the Enumerator. The cache is instance scoped and unbounded; memory is the
dominant resource, since set cardinalities grow super-exponentially. An
Enumerator is not safe for concurrent use - create one per computation.

*/
