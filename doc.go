// Package symchar computes character tables of the finite symmetric groups
// with the Murnaghan–Nakayama rule.
//
// 🚀 What is symchar?
//
//	A small, pure-Go library that brings together:
//		• Partitions: generation, parsing, conjugation, class sizes
//		• Border strips: rim-hook enumeration on Young diagrams
//		• Characters: memoized χ_λ(ρ), full tables, orthogonality checks
//
// Under the hood, everything is organized under three subpackages:
//
//	partition/   — Partition type and the cached Generator
//	borderstrip/ — Strips(λ, m), Height and Sign of a removed strip
//	character/   — Evaluator, Table and CheckOrthogonality
//
// plus the chartable command in cmd/chartable.
//
// Quick ASCII example, the Young diagram of [3,1] with its only border strip
// of length 2 marked □:
//
//	■ □ □
//	■
//
//	removing □□ leaves [1,1], a one-row strip with sign +1.
//
//	go get github.com/katalvlaran/symchar
package symchar
