// Package domain contains the core domain entities and value objects for seqsift.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (network, file system, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [Task]: One end-to-end research run (database, query, filter, export plan)
//   - [ComparativeTask]: One gene surveyed across several organisms, pooled
//     into a combined export
//   - [RunResult]: What a run did (counts, artifact paths, timing); persisted
//     as the run manifest
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
