package blob

import (
	"testing"

	"github.com/arloliu/natives/errs"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Golden(t *testing.T) {
	builder, err := NewBuilder()
	require.NoError(t, err)

	builder.StartStore()
	require.NoError(t, builder.AddDebuggerScript("debug-a", "content-a"))
	require.NoError(t, builder.AddLibraryScript("lib-a", "srcA"))
	require.NoError(t, builder.AddLibraryScript("lib-b", "srcB"))

	data, err := builder.Finish()
	require.NoError(t, err)
	require.Equal(t, goldenStoreBytes(), data)
}

func TestBuilder_EmptyStore(t *testing.T) {
	builder, err := NewBuilder()
	require.NoError(t, err)
	builder.StartStore()

	data, err := builder.Finish()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, data)
}

func TestBuilder_NoStoreStarted(t *testing.T) {
	builder, err := NewBuilder()
	require.NoError(t, err)

	require.ErrorIs(t, builder.AddDebuggerScript("d", "s"), errs.ErrNoStoreStarted)
	require.ErrorIs(t, builder.AddLibraryScript("l", "s"), errs.ErrNoStoreStarted)

	_, err = builder.Finish()
	require.ErrorIs(t, err, errs.ErrNoStoreStarted)
}

func TestBuilder_DebuggerAfterLibrary(t *testing.T) {
	builder, err := NewBuilder()
	require.NoError(t, err)
	builder.StartStore()

	require.NoError(t, builder.AddLibraryScript("lib-a", "srcA"))
	require.ErrorIs(t, builder.AddDebuggerScript("debug-a", "content-a"), errs.ErrDebuggerAfterLibrary)
}

func TestBuilder_TwoStores(t *testing.T) {
	builder, err := NewBuilder()
	require.NoError(t, err)

	builder.StartStore()
	require.NoError(t, builder.AddLibraryScript("core-lib", "core-src"))

	builder.StartStore()
	require.NoError(t, builder.AddDebuggerScript("exp-debug", "exp-debug-src"))
	require.NoError(t, builder.AddLibraryScript("exp-lib", "exp-src"))

	data, err := builder.Finish()
	require.NoError(t, err)

	cursor, err := NewCursor(data)
	require.NoError(t, err)

	first, err := DecodeStore(cursor)
	require.NoError(t, err)
	require.Equal(t, 1, first.Count())
	require.Equal(t, 0, first.DebuggerCount())
	require.Equal(t, []byte("core-lib"), first.ScriptName(0))

	second, err := DecodeStore(cursor)
	require.NoError(t, err)
	require.Equal(t, 2, second.Count())
	require.Equal(t, 1, second.DebuggerCount())
	require.Equal(t, []byte("exp-debug"), second.ScriptName(0))
	require.Equal(t, []byte("exp-src"), second.ScriptSource(1))

	require.False(t, cursor.HasMore())
}

func TestBuilder_BigEndian(t *testing.T) {
	builder, err := NewBuilder(WithBuilderBigEndian())
	require.NoError(t, err)

	builder.StartStore()
	require.NoError(t, builder.AddLibraryScript("lib-a", "srcA"))

	data, err := builder.Finish()
	require.NoError(t, err)
	// debuggerCount = 0, libraryCount = 1, big-endian.
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, data[0:4])
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, data[4:8])

	cursor, err := NewCursor(data, WithBigEndian())
	require.NoError(t, err)

	store, err := DecodeStore(cursor)
	require.NoError(t, err)
	require.Equal(t, 1, store.Count())
	require.Equal(t, []byte("lib-a"), store.ScriptName(0))
	require.False(t, cursor.HasMore())
}
