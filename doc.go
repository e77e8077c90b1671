// Package pilp is the umbrella for a parametric integer linear programming
// solver: given a system of linear (in)equalities over parameters p and
// variables x, it computes the lexicographic minimum (or maximum) of x as a
// piecewise-affine function of p, together with the region of parameter
// space where no integer solution exists.
//
// 🚀 What is pilp?
//
//	A single-threaded, exact-arithmetic core that brings together:
//		• bigrat  — arbitrary-precision integer & rational primitives
//		• polyset — vectors, matrices, and basic-set/basic-map containers
//		• tableau — the rational parametric simplex tableau (C1)
//		• lexmin  — the lexicographic pivoting driver (C2)
//		• region  — the parameter-space context manager (C3)
//		• cutdiv  — Gomory-style integer cuts and division introduction (C4)
//		• sink    — the piecewise-solution collector (C5)
//		• solver  — the two public entry points, PartialLexopt and ForeachLexopt
//
// ✨ Why this shape?
//
//   - No floating point anywhere on the solve path — every coefficient is an
//     arbitrary-precision rational held as a common denominator plus integer
//     numerators.
//   - Single-threaded by design — the algorithm is a depth-first recursion
//     over an explicit undo journal; there is no concurrent access to a
//     shared tableau.
//   - Pure function of its inputs — the solver keeps no persisted state.
//
// Under the hood, everything is organized under independently importable
// subpackages:
//
//	bigrat/   — arbitrary-precision integer & rational primitives
//	polyset/  — vectors, matrices, basic-set/basic-map containers
//	tableau/  — the parametric tableau data structure
//	lexmin/   — the lex-min pivoting driver
//	region/   — the context manager (row-sign classification, splitting)
//	cutdiv/   — the cut & division engine
//	sink/     — the solution collector (relation and callback variants)
//	solver/   — PartialLexopt, ForeachLexopt
//	cmd/pilp/ — a small YAML-driven CLI front-end
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full
// requirements and the grounding ledger behind this implementation.
package pilp
