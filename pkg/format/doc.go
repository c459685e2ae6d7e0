// Package format turns raw MediSupply values into display strings following
// Colombian conventions: "$1.234.567" for pesos, dd/mm/yyyy dates,
// "+57 300 123 4567" phones and "900.123.456-7" NITs.
//
// Every formatter is total. Missing or malformed input yields a fixed
// fallback ("$0" for Currency, "0" for Number, "" for the rest) instead of
// an error, so the result can be bound straight into a view. Status and
// priority codes are resolved through an embedded label catalog; the
// package-level helpers use Spanish, NewLabeler serves other languages.
//
// Parsed strings and timestamps render in time.Local. time.Time values
// render in their own location.
package format
