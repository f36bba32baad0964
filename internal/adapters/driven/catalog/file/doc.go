// Package file provides a catalog provider backed by a storefront
// product export on disk.
//
// The expected shape is the storefront's product JSON: either a
// top-level {"products": [...]} document or a bare product array.
// Field names follow the storefront convention (snake_case, prices in
// minor currency units, numeric identifiers). Optional fields may be
// absent; unusable documents surface as domain.ErrBadCatalog so the
// scoring engine can degrade to an empty catalog instead of failing
// the quiz.
package file
