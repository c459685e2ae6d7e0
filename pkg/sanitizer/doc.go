// Package sanitizer normalises raw form input before it is validated:
// trimming and whitespace cleanup for text, canonical shapes for emails,
// phones and NITs, and Colombian-style numbers ("1.250.000,50") rewritten
// into plain decimals.
//
// The helpers are pure string functions and can be chained with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.RemoveExtraWhitespace,
//	)
//	name := clean("  Droguería \t Central\n") // "Droguería Central"
package sanitizer
