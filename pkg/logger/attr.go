package logger

import (
	"log/slog"
)

// Error records err under "error". Nil errors produce an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Lang records the resolved catalog language.
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Fields records the names of form fields that failed validation.
func Fields(fields []string) slog.Attr {
	if len(fields) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", fields)
}
