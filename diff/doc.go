// Package diff renders character diffs between texts and between
// encoded token sequences.
//
// Insertions and deletions are colored when color output is enabled;
// otherwise they carry wdiff-style {+insert+} and [-delete-] markers
// so piped output stays readable.
package diff
