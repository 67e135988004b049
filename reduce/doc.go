// Package reduce implements the polynomial-time reductions that tie the
// engines together.
//
// ThreeSATToVertexCover is the classic gadget construction: one edge per
// variable (its two endpoints standing for the literal and its negation,
// exactly one of which escapes the cover), one triangle per clause (at
// least two of its corners must be covered), and a cross edge from each
// clause corner to the variable endpoint of the opposite polarity. With
// k = nVars + 2·nClauses, the formula is satisfiable iff the graph has a
// cover of size ≤ k — an equivalence the tests exercise in both directions.
//
// SubsetSumToSAT is the didactic parity encoding carried over from the
// system this module demonstrates: selection bits feed per-bit XOR chains
// tied to the target's bits, with no carry arithmetic. KNOWN LIMITATION,
// preserved on purpose: bitwise parity agreement does not imply integer
// equality, so the encoding can accept inclusion patterns whose true sum
// differs from the target. It demonstrates the *shape* of a reduction to
// SAT, not a sound one; callers detect mismatches post hoc with the verify
// package, and the test suite pins a concrete mismatch instance.
//
// Both reductions are deterministic: vertex ids and auxiliary variable ids
// follow fixed numbering schemes documented at the functions.
package reduce
