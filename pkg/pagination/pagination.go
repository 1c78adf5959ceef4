package pagination

import (
	"errors"
	"fmt"
)

const (
	// DefaultPageSize is the retmax used when the caller does not
	// choose one.
	DefaultPageSize = 500

	// MaxPageSize is the largest retmax the remote service accepts.
	MaxPageSize = 10000
)

// ErrInvalidPageSize is returned when a page size is outside (0, MaxPageSize].
var ErrInvalidPageSize = errors.New("page size must be greater than 0 and at most MaxPageSize")

// Window is one bounded slice of a larger result set, addressed by its
// start offset and size.
type Window struct {
	// Start is the zero-based retstart offset of the window.
	Start int
	// Size is the retmax request for the window.
	Size int
}

// ValidatePageSize checks that size is usable as retmax.
func ValidatePageSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}
	if size > MaxPageSize {
		return fmt.Errorf("%w: got %d, max is %d", ErrInvalidPageSize, size, MaxPageSize)
	}
	return nil
}

// Plan describes the sequence of windows covering count elements in
// pages of pageSize. Offsets run 0, pageSize, 2*pageSize, ... while the
// offset is below count, so a count of zero still produces no windows
// and every non-zero count produces at least one.
type Plan struct {
	count    int
	pageSize int
}

// NewPlan builds a plan. pageSize must pass ValidatePageSize; count
// below zero is treated as zero.
func NewPlan(count, pageSize int) (Plan, error) {
	if err := ValidatePageSize(pageSize); err != nil {
		return Plan{}, err
	}
	if count < 0 {
		count = 0
	}
	return Plan{count: count, pageSize: pageSize}, nil
}

// Pages returns the number of windows in the plan.
func (p Plan) Pages() int {
	if p.count == 0 || p.pageSize == 0 {
		return 0
	}
	return (p.count + p.pageSize - 1) / p.pageSize
}

// Window returns the i-th window. It panics when i is out of range,
// mirroring slice indexing.
func (p Plan) Window(i int) Window {
	if i < 0 || i >= p.Pages() {
		panic(fmt.Sprintf("pagination: window %d out of range [0,%d)", i, p.Pages()))
	}
	return Window{Start: i * p.pageSize, Size: p.pageSize}
}

// Windows returns every window in ascending offset order.
func (p Plan) Windows() []Window {
	n := p.Pages()
	out := make([]Window, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, p.Window(i))
	}
	return out
}
