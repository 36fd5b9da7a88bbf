package blob

import (
	"fmt"

	"github.com/arloliu/natives/endian"
	"github.com/arloliu/natives/errs"
	"github.com/arloliu/natives/internal/options"
)

// Builder emits the natives wire format, the mirror of the decode path.
//
// It serves tests, fixtures, and embedders that generate blobs ahead of time.
// Scripts are added store by store: StartStore opens a store,
// AddDebuggerScript and AddLibraryScript append pairs to it, and Finish
// serializes every started store in order. A loadable blob carries exactly
// two stores; the builder itself accepts any count so tests can produce
// malformed blobs.
//
// Note: The Builder is NOT thread-safe and not reusable after Finish.
type Builder struct {
	engine endian.EndianEngine
	stores []*storeLayout
}

type storeLayout struct {
	debugger []pair
	library  []pair
}

type pair struct {
	name   string
	source string
}

// NewBuilder creates a Builder. Length fields are emitted little-endian
// unless WithBuilderBigEndian is given.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	builder := &Builder{engine: endian.GetLittleEndianEngine()}
	if err := options.Apply(builder, opts...); err != nil {
		return nil, err
	}

	return builder, nil
}

// StartStore opens a new store; subsequent Add calls target it.
func (b *Builder) StartStore() {
	b.stores = append(b.stores, &storeLayout{})
}

// AddDebuggerScript appends a debugger script to the current store.
//
// Debugger scripts form the store's prefix: adding one after a library script
// returns errs.ErrDebuggerAfterLibrary. Returns errs.ErrNoStoreStarted before
// the first StartStore.
func (b *Builder) AddDebuggerScript(name, source string) error {
	store, err := b.current()
	if err != nil {
		return err
	}
	if len(store.library) > 0 {
		return fmt.Errorf("%w: %q", errs.ErrDebuggerAfterLibrary, name)
	}

	store.debugger = append(store.debugger, pair{name: name, source: source})

	return nil
}

// AddLibraryScript appends a library script to the current store.
// Returns errs.ErrNoStoreStarted before the first StartStore.
func (b *Builder) AddLibraryScript(name, source string) error {
	store, err := b.current()
	if err != nil {
		return err
	}

	store.library = append(store.library, pair{name: name, source: source})

	return nil
}

// Finish serializes every started store, in order, into one blob.
// Returns errs.ErrNoStoreStarted if no store was started.
func (b *Builder) Finish() ([]byte, error) {
	if len(b.stores) == 0 {
		return nil, errs.ErrNoStoreStarted
	}

	buf := make([]byte, 0, b.encodedSize())
	for _, store := range b.stores {
		buf = b.engine.AppendUint32(buf, uint32(len(store.debugger))) //nolint:gosec
		buf = b.appendPairs(buf, store.debugger)
		buf = b.engine.AppendUint32(buf, uint32(len(store.library))) //nolint:gosec
		buf = b.appendPairs(buf, store.library)
	}

	return buf, nil
}

func (b *Builder) current() (*storeLayout, error) {
	if len(b.stores) == 0 {
		return nil, errs.ErrNoStoreStarted
	}

	return b.stores[len(b.stores)-1], nil
}

func (b *Builder) appendPairs(buf []byte, pairs []pair) []byte {
	for _, p := range pairs {
		buf = b.engine.AppendUint32(buf, uint32(len(p.name))) //nolint:gosec
		buf = append(buf, p.name...)
		buf = b.engine.AppendUint32(buf, uint32(len(p.source))) //nolint:gosec
		buf = append(buf, p.source...)
	}

	return buf
}

// encodedSize computes the exact output size so Finish allocates once.
func (b *Builder) encodedSize() int {
	total := 0
	for _, store := range b.stores {
		total += 2 * intWidth
		for _, p := range store.debugger {
			total += 2*intWidth + len(p.name) + len(p.source)
		}
		for _, p := range store.library {
			total += 2*intWidth + len(p.name) + len(p.source)
		}
	}

	return total
}
