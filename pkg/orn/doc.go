// Package orn provides a family of fixed-arity positional sum types: Or1
// through Or8, each holding exactly one value out of its declared type
// parameters. Cases carry no names; callers identify them purely by position,
// which makes the types a generic counterpart to Result/Option generalized
// from two cases to N.
//
// Key constructs:
// - Or<K>Of<i>: wrap a value into case i of the K-arity sum
// - Is<i>/Get<i>, Is/At: positional and index-generic accessors
// - Or<K>Map<i>, Or<K>Converge: positional and whole-value transforms
// - Tuple<K>, Or<K>FromTuple/Or<K>IntoTuple, SortByIndex: product duals
// - Widen<J>To<K>/Narrow<K>To<J>: the cross-arity conversion lattice
//
// An Or value with comparable type arguments is itself comparable, so it can
// be used directly as a map key. Its String, JSON, and YAML forms are all
// untagged: the active value renders exactly as it would on its own, which
// also means decoding guesses the case by trying each type in position order.
//
// Every per-arity declaration in this package is rendered by cmd/orngen from
// a single arity-parameterized definition; edit the generator, not the
// generated files.
//
//go:generate go run github.com/ib-77/orn/cmd/orngen -root .
package orn
