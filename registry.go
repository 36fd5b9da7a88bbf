package natives

import (
	"fmt"

	"github.com/arloliu/natives/errs"
)

// Registry holds one script Source per Category with a set-once lifecycle.
//
// Slots start empty, are each populated exactly once during startup (by
// SetFromBlob for Core and Experimental, by their owning components for Shell
// and Testing), and are read-only for the remainder of the process.
//
// The Registry performs no locking. The embedder must finish every Set before
// any concurrent Get begins; after that barrier concurrent reads are safe
// because no mutation path remains.
type Registry struct {
	slots [categoryCount]Source
}

// NewRegistry returns a Registry with every slot empty.
func NewRegistry() *Registry {
	return &Registry{}
}

// Set installs the Source for category.
//
// Returns errs.ErrNilSource for a nil source, errs.ErrAlreadyInitialized if
// the slot is occupied (double initialization is a sequencing bug, slots are
// set once per process), and errs.ErrInvalidCategory for an out-of-range
// category.
func (r *Registry) Set(category Category, src Source) error {
	if int(category) >= categoryCount {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCategory, category)
	}
	if src == nil {
		return fmt.Errorf("%w: category %s", errs.ErrNilSource, category)
	}
	if r.slots[category] != nil {
		return fmt.Errorf("%w: category %s", errs.ErrAlreadyInitialized, category)
	}

	r.slots[category] = src

	return nil
}

// Get returns the Source for category.
//
// Returns errs.ErrNotInitialized if the slot has not been populated yet
// (use before initialization is a sequencing bug in the embedder), and
// errs.ErrInvalidCategory for an out-of-range category.
func (r *Registry) Get(category Category) (Source, error) {
	if int(category) >= categoryCount {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCategory, category)
	}

	src := r.slots[category]
	if src == nil {
		return nil, fmt.Errorf("%w: category %s", errs.ErrNotInitialized, category)
	}

	return src, nil
}

// Collection returns the category-bound query facade over this registry.
func (r *Registry) Collection(category Category) Collection {
	return Collection{registry: r, category: category}
}
