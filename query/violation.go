package query

import "fmt"

// ContractViolation is the panic value raised when the host engine hands the
// column layer something it promised never to (a text value for a numeric
// comparison, an unknown operator).
//
// It is not an ordinary error: continuing would produce a wrong query
// answer, so the evaluation aborts.
type ContractViolation struct {
	Reason string
	Value  Value
}

func (e *ContractViolation) Error() string {
	if e.Value.Kind == KindInvalid {
		return "colscan: contract violation: " + e.Reason
	}
	return fmt.Sprintf("colscan: contract violation: %s (value %s of kind %s)", e.Reason, e.Value, e.Value.Kind)
}

// MustBeNumeric panics with a ContractViolation unless v is an integer or a
// float.
func MustBeNumeric(v Value) {
	if !v.IsNumeric() {
		panic(&ContractViolation{Reason: "unexpected value to compare against", Value: v})
	}
}
