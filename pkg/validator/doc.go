// Package validator provides composable, rule-based validation.
//
// Rules are plain values combining a check closure with the error reported
// when the check fails. Apply runs every rule and collects all failures;
// ApplyFirst stops at the first failure, which suits fail-fast form
// validation where the user fixes one field at a time.
//
//	err := validator.ApplyFirst(
//	    validator.RequiredString("name", input.Name),
//	    validator.RequiredString("email", input.Email),
//	    validator.EmailShape("email", input.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Fields() names the failing fields
//	}
package validator
