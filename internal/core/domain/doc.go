// Package domain defines the core business entities for Quizmatch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - QuizAnswers: Everything a shopper tells the quiz
//   - Product: A catalog product snapshot with match tags
//   - TagMapping: Translation from quiz categories to catalog tags
//   - ScoredProduct: A product annotated with a match score
//   - Lead: The contact hand-off assembled after a completed quiz
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
