package inventory

import "fmt"

// SourceNotFoundError reports a source code with no inventory_source row.
type SourceNotFoundError struct {
	SourceCode string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source with code %q does not exist", e.SourceCode)
}
