// Package dataset reads comma-separated numeric tables for SOM training.
//
// Format:
//
//   - The first line is a header; its field count fixes the column count,
//     which must be at least 2.
//   - Every following line holds one finite number per column. Extra
//     trailing fields are ignored; missing fields are an error.
//   - Blank lines are skipped.
//   - There must be at least as many data rows as columns.
//
// The result feeds grid.New directly; the shape rules here are the same
// ones grid enforces, reported with line numbers.
package dataset
