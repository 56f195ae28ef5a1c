package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWrite(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("hello"), bb.Bytes())
	require.Equal(t, 5, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBufferGrow(t *testing.T) {
	bb := NewByteBuffer(8)
	initial := bb.Cap()

	bb.Grow(initial + 1)
	require.GreaterOrEqual(t, bb.Cap(), initial+1)

	// Growing within capacity is a no-op.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBufferWriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, err := bb.Write([]byte("payload"))
	require.NoError(t, err)

	var sink bytes.Buffer
	n, err := bb.WriteTo(&sink)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", sink.String())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	_, err := bb.Write([]byte("data"))
	require.NoError(t, err)

	p.Put(bb)
	reused := p.Get()
	require.Equal(t, 0, reused.Len())
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := NewByteBuffer(64)
	// Must not panic; the oversized buffer is simply dropped.
	p.Put(bb)
	p.Put(nil)
}

func TestDefaultBlobPool(t *testing.T) {
	bb := GetBlobBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutBlobBuffer(bb)
}
