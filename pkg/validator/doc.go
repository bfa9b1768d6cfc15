// Package validator provides lightweight field-scoped validation primitives.
//
// A Rule pairs a boolean check with the ValidationError reported when the
// check fails. Apply runs rules in order and accumulates every failure into
// a ValidationErrors collection, which implements the error interface so it
// can cross API boundaries as a plain error value.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("login", login),
//	    validator.InList("role", role, []string{"user", "staff", "admin"}),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//	    // render field errors
//	}
//
// Validation failures are data, not control flow: callers inspect the
// returned collection and decide how to surface it.
package validator
