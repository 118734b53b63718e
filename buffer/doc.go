// Package buffer implements the text model for inkwell: a flat rune
// sequence in which some positions are placeholder identifiers standing in
// for embedded rich content.
//
// Offsets are 0-based rune indices. The selection is a half-open range
// [Start, End); the (-1, -1) sentinel means no active selection with the
// caret logically at the end of the text. All mutation flows through a
// single replace-range choke point, and every mutation re-runs the trigger
// scan so keyword listeners stay current.
package buffer
