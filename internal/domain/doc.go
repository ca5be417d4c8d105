// Package domain contains the core entities and value objects for primeify.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (codecs, file system, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [Pixel]: A packed 32-bit RGBA pixel (alpha in the high byte)
//   - [Image]: A decoded pixel buffer with its dimensions
//   - [Range]: A half-open index interval of the pixel buffer owned by one worker
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
