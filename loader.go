package natives

import (
	"fmt"

	"github.com/arloliu/natives/blob"
	"github.com/arloliu/natives/errs"
)

// blobCategories lists the categories the wire format carries, in the order
// their stores appear in the blob. The order is part of the format contract
// and matches the encoder's emission order.
var blobCategories = [...]Category{Core, Experimental}

// SetFromBlob decodes data and installs its stores: the first under Core, the
// second under Experimental.
//
// The blob must be consumed exactly. Leftover bytes mean encoder/decoder
// version skew and return errs.ErrTrailingBytes; a short blob returns
// errs.ErrTruncatedBlob. Both stores are decoded and full consumption
// verified before either slot is written, so a malformed blob leaves the
// registry untouched.
//
// data must stay valid and unmodified afterwards: the installed stores are
// zero-copy views into it.
func (r *Registry) SetFromBlob(data []byte, opts ...blob.DecodeOption) error {
	if len(data) == 0 {
		return errs.ErrEmptyBlob
	}

	for _, category := range blobCategories {
		if r.slots[category] != nil {
			return fmt.Errorf("%w: category %s", errs.ErrAlreadyInitialized, category)
		}
	}

	cursor, err := blob.NewCursor(data, opts...)
	if err != nil {
		return err
	}

	stores := make([]*blob.Store, len(blobCategories))
	for i, category := range blobCategories {
		store, err := blob.DecodeStore(cursor)
		if err != nil {
			return fmt.Errorf("decode %s store: %w", category, err)
		}
		stores[i] = store
	}

	if cursor.HasMore() {
		return fmt.Errorf("%w: %d bytes left at offset %d",
			errs.ErrTrailingBytes, len(data)-cursor.Position(), cursor.Position())
	}

	for i, category := range blobCategories {
		if err := r.Set(category, stores[i]); err != nil {
			return err
		}
	}

	return nil
}
