// Package linalg provides fixed-size vectors and matrices of quantities and
// measurements. Matrices keep their elements in a storage.Backend, so the
// same arithmetic runs over embedded or pooled grids.
package linalg
