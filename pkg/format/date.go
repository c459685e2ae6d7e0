package format

import (
	"github.com/medisupply/fieldkit/internal/coerce"
)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// Date renders v as dd/mm/yyyy. It accepts time.Time, *time.Time, date
// strings and Unix-millisecond timestamps; invalid input renders as "".
func Date(v any) string {
	t, ok := coerce.Time(v, true)
	if !ok {
		return ""
	}
	return t.Format(dateLayout)
}

// DateTime renders v as dd/mm/yyyy hh:mm on a 24-hour clock.
func DateTime(v any) string {
	t, ok := coerce.Time(v, true)
	if !ok {
		return ""
	}
	return t.Format(dateTimeLayout)
}
