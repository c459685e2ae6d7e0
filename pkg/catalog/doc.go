// Package catalog holds the field-sales records (clients, products, orders
// and visits) together with the forms that turn raw screen input into them.
//
// A form normalizes its input with package sanitizer, validates it with
// package validator and returns either a record with a fresh id or the
// validator.ValidationErrors describing every failing field:
//
//	client, err := catalog.ClientForm{Name: "Droguería Central", NIT: "900.123.456-7", ...}.Build()
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// render verrs next to the inputs
//	}
//
// Row methods render records for list screens using package format.
// FilterProducts and SortProducts answer inventory queries without
// touching the caller's slice.
package catalog
