// Package validator holds the input checks used by the MediSupply forms.
//
// The checks come in two layers. The boolean functions (Email, Phone, NIT,
// Required, Password, Price, Stock, Date, ExpiryDate) accept any value, never
// panic, and report false for nil, blank or mistyped input. The Rule
// constructors wrap those checks with field names and translation keys so a
// form can collect every failure in one pass:
//
//	err := validator.Apply(
//	    validator.RequiredField("name", form.Name),
//	    validator.ValidNIT("nit", form.NIT),
//	    validator.ValidEmail("email", form.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // show verrs.Keys(field) next to the input
//	    }
//	}
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. The package has no state and is safe for concurrent use.
package validator
