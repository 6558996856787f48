// Package validator provides composable, declarative validation rules for
// loosely typed option values such as maps decoded from JSON, YAML or datastar
// signals.
//
// A Rule couples a boolean Check function with rich error metadata. Rules are
// evaluated with Apply, which aggregates every failure into a ValidationErrors
// slice that satisfies the error interface, so callers can report all field
// problems in a single error return.
//
// # Architecture
//
// Each source file groups a family of rules:
//
//   - kind_rules.go    – dynamic type checks for `any` values (string, bool,
//     finite number, string list, arbitrary Go type)
//   - string_rules.go  – checks on values already typed as string
//   - choice_rules.go  – membership in an allowed set
//
// Combinators (Chain, SkipNil, When) build a single rule out of several so
// that one field reports only its first problem.
//
// Every ValidationError carries a category sentinel in its Err field
// (ErrFieldRequired, ErrInvalidType, ErrOutOfRange, ErrInvalidValue or a
// caller-defined error). ValidationErrors unwraps to those sentinels, so
// errors.Is can be used to classify a failure:
//
//	err := validator.Apply(
//	    validator.Chain(
//	        validator.Present("message", raw["message"]),
//	        validator.IsString("message", raw["message"]),
//	    ),
//	    validator.SkipNil(raw["width"], validator.IsNumber("width", raw["width"])),
//	)
//	if errors.Is(err, validator.ErrInvalidType) {
//	    // a field had the wrong dynamic type
//	}
//
// The package holds no global state and is safe for concurrent use.
package validator
