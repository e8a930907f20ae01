// Package ecomod defines the consumer-resource model family and the
// data model shared by the solver, stability analyzer, and sweep
// driver.
//
// Each model variant implements [Field], declaring its state and
// parameter names and exposing a pure autonomous vector field:
//
//   - [RosMac]: 1 consumer x 1 resource, linear (type-I) response
//   - [RosMac2]: 1 consumer x 1 resource, saturating (type-II) response
//   - [TwoResource]: 1 consumer x 2 resources, fixed preference
//   - [TwoResource2]: 1 consumer x 2 resources, density-dependent preference
//   - [TwoConsumer]: 2 consumers x 2 resources, density-dependent preference
//
// Variants are resolved by name through [Lookup]. Parameter sets are
// validated against the variant's declared names with [Validate] at
// sweep-construction time; the fields themselves assume a complete set.
package ecomod
