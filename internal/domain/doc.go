// Package domain contains the core domain entities and value objects for yotei.
//
// This package represents the innermost layer of the application. It has
// no dependencies on infrastructure concerns (file system, CLI, logging)
// and contains only pure business logic.
//
// # Entities
//
//   - [Entry]: A single scheduled item (id, subject, half-open interval)
//   - [EntryRecord]: The JSON serialization form of an Entry
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
