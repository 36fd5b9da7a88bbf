package natives

import (
	"testing"

	"github.com/arloliu/natives/errs"
	"github.com/stretchr/testify/require"
)

// embeddedStub mimics the compile-time-embedded store variant: the raw-source
// operations work, proving the Collection facade forwards capability
// differences instead of hard-coding the blob-backed behavior.
type embeddedStub struct {
	raw []byte
}

func (s *embeddedStub) Count() int                  { return 0 }
func (s *embeddedStub) DebuggerCount() int          { return 0 }
func (s *embeddedStub) ScriptName(int) []byte       { panic("no scripts") }
func (s *embeddedStub) ScriptSource(int) []byte     { panic("no scripts") }
func (s *embeddedStub) IndexOf([]byte) (int, error) { return 0, errs.ErrUnknownScript }
func (s *embeddedStub) RawScriptsSize() (int, error) {
	return len(s.raw), nil
}
func (s *embeddedStub) RawScriptsSource() ([]byte, error) { return s.raw, nil }
func (s *embeddedStub) SetRawSource(raw []byte) error {
	s.raw = raw
	return nil
}

func TestCollection_BeforeInitialization(t *testing.T) {
	registry := NewRegistry()
	core := registry.Collection(Core)

	_, err := core.BuiltinsCount()
	require.ErrorIs(t, err, errs.ErrNotInitialized)

	_, err = core.DebuggerCount()
	require.ErrorIs(t, err, errs.ErrNotInitialized)

	_, err = core.ScriptName(0)
	require.ErrorIs(t, err, errs.ErrNotInitialized)

	_, err = core.ScriptSource(0)
	require.ErrorIs(t, err, errs.ErrNotInitialized)

	_, err = core.IndexOf([]byte("runtime"))
	require.ErrorIs(t, err, errs.ErrNotInitialized)

	_, err = core.RawScriptsSize()
	require.ErrorIs(t, err, errs.ErrNotInitialized)

	_, err = core.RawScriptsSource()
	require.ErrorIs(t, err, errs.ErrNotInitialized)

	require.ErrorIs(t, core.SetRawSource([]byte("raw")), errs.ErrNotInitialized)
}

func TestCollection_ForwardsToBlobStore(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.SetFromBlob(buildTestBlob(t)))

	core := registry.Collection(Core)

	count, err := core.BuiltinsCount()
	require.NoError(t, err)
	require.Equal(t, 3, count)

	debuggerCount, err := core.DebuggerCount()
	require.NoError(t, err)
	require.Equal(t, 1, debuggerCount)

	name, err := core.ScriptName(0)
	require.NoError(t, err)
	require.Equal(t, []byte("debug-a"), name)

	index, err := core.IndexOf([]byte("lib-b"))
	require.NoError(t, err)
	require.Equal(t, 2, index)

	source, err := core.ScriptSource(2)
	require.NoError(t, err)
	require.Equal(t, []byte("srcB"), source)

	// A collection created before initialization resolves lazily, so it sees
	// the same data.
	experimental := registry.Collection(Experimental)
	count, err = experimental.BuiltinsCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCollection_BlobBackedRefusesRawSourceOps(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.SetFromBlob(buildTestBlob(t)))

	core := registry.Collection(Core)

	_, err := core.RawScriptsSize()
	require.ErrorIs(t, err, errs.ErrUnsupportedOperation)

	_, err = core.RawScriptsSource()
	require.ErrorIs(t, err, errs.ErrUnsupportedOperation)

	require.ErrorIs(t, core.SetRawSource([]byte("raw")), errs.ErrUnsupportedOperation)
}

func TestCollection_EmbeddedVariantSupportsRawSourceOps(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Set(Shell, &embeddedStub{}))

	shell := registry.Collection(Shell)
	require.NoError(t, shell.SetRawSource([]byte("shell scripts")))

	size, err := shell.RawScriptsSize()
	require.NoError(t, err)
	require.Equal(t, len("shell scripts"), size)

	raw, err := shell.RawScriptsSource()
	require.NoError(t, err)
	require.Equal(t, []byte("shell scripts"), raw)
}
