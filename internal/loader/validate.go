package loader

import (
	validator "github.com/pb33f/libopenapi-validator"
)

// Validate runs the document through the OpenAPI schema validator and
// returns any validation failures. Filtering itself never validates; this
// backs the opt-in pre-flight check.
func (r *Result) Validate() []error {
	v, errs := validator.NewValidator(r.Document)
	if len(errs) > 0 {
		return errs
	}

	valid, validationErrs := v.ValidateDocument()
	if valid {
		return nil
	}

	out := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		out = append(out, e)
	}
	return out
}
