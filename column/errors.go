package column

import (
	"errors"
	"fmt"
)

// ErrNotSorted is returned when a column declared naturally ordered is
// backed by a sequence that is not non-decreasing.
var ErrNotSorted = errors.New("naturally ordered column is not sorted")

// sortedBacking is implemented by columns that can verify their ordering
// claim against the data.
type sortedBacking interface {
	BackingSorted() bool
}

// Validate checks the ordering claim of c against its backing data.
// Bound narrowing on a column that fails this check returns wrong rows.
func Validate(c Column) error {
	if !c.IsNaturallyOrdered() {
		return nil
	}
	if sb, ok := c.(sortedBacking); ok && !sb.BackingSorted() {
		return fmt.Errorf("column %q: %w", c.Name(), ErrNotSorted)
	}
	return nil
}
