// Package inline holds the non-text units that can live inside an inkwell
// buffer: placeholder identifiers, the embed records they stand for, and the
// trigger table that starts keyword matching.
//
// Placeholders are single code points from the Unicode private use area, so a
// buffer's text stays an ordinary rune sequence while carrying rich content.
package inline
