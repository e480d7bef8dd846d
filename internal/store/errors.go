package store

import "fmt"

// PersistError reports a failure to write the custom mapping table to its
// backing file. Callers must surface it: the taught association did not
// durably apply.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist keyword mappings to %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// InvalidRuleError reports a rule that cannot be saved: empty keywords or a
// target field outside the form's field universe.
type InvalidRuleError struct {
	Field  string
	Reason string
}

func (e *InvalidRuleError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid keyword mapping for field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid keyword mapping: %s", e.Reason)
}
