// Package project extracts columns from row-major data.
//
// Collect projects a set of column positions out of a slice of rows into
// column-major form, the shape expected by the encoding package and by
// display formatting. DisplayWidth estimates the rendered width of a column
// for table-style output.
//
// Both functions are pure transforms over caller-owned slices and are safe
// to call from multiple goroutines.
package project
