// Package editor provides a Bubble Tea input field component backed by the
// buffer package: embedded rich tokens render as styled chips, trigger
// characters open a suggestion popup, and accepted suggestions replace the
// typed trigger+keyword prefix with a placeholder embed.
//
// The component is a reference host for the core; the buffer, inline, and
// match packages never depend on it.
package editor
