package natives

// Collection is the category-parameterized facade over a Registry.
//
// It lets call sites query "the Core scripts" or "the Experimental scripts"
// uniformly, without knowing whether the category's backing store was decoded
// from the blob or installed by another component. Every query resolves the
// category's Source through the registry at call time, so a Collection
// created before initialization becomes usable once its slot is populated.
//
// A Collection is a small value; copy it freely.
type Collection struct {
	registry *Registry
	category Category
}

// Category returns the category this collection queries.
func (c Collection) Category() Category {
	return c.category
}

// BuiltinsCount returns the total number of scripts in the category,
// debugger plus library.
func (c Collection) BuiltinsCount() (int, error) {
	src, err := c.registry.Get(c.category)
	if err != nil {
		return 0, err
	}

	return src.Count(), nil
}

// DebuggerCount returns the number of debugger scripts in the category.
func (c Collection) DebuggerCount() (int, error) {
	src, err := c.registry.Get(c.category)
	if err != nil {
		return 0, err
	}

	return src.DebuggerCount(), nil
}

// ScriptName returns the name of the script at index.
//
// The index must be in [0, BuiltinsCount()); anything else is a programming
// error and panics. The returned slice is a view into the blob and must not
// be modified.
func (c Collection) ScriptName(index int) ([]byte, error) {
	src, err := c.registry.Get(c.category)
	if err != nil {
		return nil, err
	}

	return src.ScriptName(index), nil
}

// ScriptSource returns the source of the script at index.
//
// The index must be in [0, BuiltinsCount()); anything else is a programming
// error and panics. The returned slice is a view into the blob and must not
// be modified.
func (c Collection) ScriptSource(index int) ([]byte, error) {
	src, err := c.registry.Get(c.category)
	if err != nil {
		return nil, err
	}

	return src.ScriptSource(index), nil
}

// IndexOf returns the smallest index whose script name equals name
// byte-for-byte, or errs.ErrUnknownScript.
func (c Collection) IndexOf(name []byte) (int, error) {
	src, err := c.registry.Get(c.category)
	if err != nil {
		return 0, err
	}

	return src.IndexOf(name)
}

// RawScriptsSize reports the size of the concatenated raw source buffer.
// For blob-backed categories this is always errs.ErrUnsupportedOperation.
func (c Collection) RawScriptsSize() (int, error) {
	src, err := c.registry.Get(c.category)
	if err != nil {
		return 0, err
	}

	return src.RawScriptsSize()
}

// RawScriptsSource returns the concatenated raw source buffer.
// For blob-backed categories this is always errs.ErrUnsupportedOperation.
func (c Collection) RawScriptsSource() ([]byte, error) {
	src, err := c.registry.Get(c.category)
	if err != nil {
		return nil, err
	}

	return src.RawScriptsSource()
}

// SetRawSource replaces the raw source buffer on the category's store.
//
// Blob-backed categories are populated only by SetFromBlob; for them this is
// always errs.ErrUnsupportedOperation, signaling that the caller picked the
// initialization path of the compile-time-embedded variant.
func (c Collection) SetRawSource(raw []byte) error {
	src, err := c.registry.Get(c.category)
	if err != nil {
		return err
	}

	return src.SetRawSource(raw)
}
