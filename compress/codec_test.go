package compress

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"identity": NewNoOpCompressor(),
		"gzip":     NewGzipCompressor(),
		"zstd":     NewZstdCompressor(),
		"s2":       NewS2Compressor(),
		"lz4":      NewLZ4Compressor(),
	}
}

func changesPayload(lines int) []byte {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&b, `{"seq":%d,"id":"doc-%d","changes":[{"rev":"1-abc%d"}]}`+"\n", i, i%17, i)
		if i%10 == 0 {
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		coding format.ContentCoding
	}{
		{format.CodingIdentity},
		{format.CodingGzip},
		{format.CodingZstd},
		{format.CodingS2},
		{format.CodingLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.coding.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.coding)
			require.NoError(t, err)
			require.Equal(t, tt.coding, codec.Coding())

			builtin, err := GetCodec(tt.coding)
			require.NoError(t, err)
			require.Equal(t, tt.coding, builtin.Coding())

			byToken, err := ForToken(tt.coding.Token())
			require.NoError(t, err)
			require.Equal(t, tt.coding, byToken.Coding())
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := CreateCodec(format.ContentCoding(0xFF))
		require.ErrorIs(t, err, errs.ErrUnsupportedCoding)
		_, err = GetCodec(format.ContentCoding(0))
		require.ErrorIs(t, err, errs.ErrUnsupportedCoding)
		_, err = ForToken("br")
		require.ErrorIs(t, err, errs.ErrUnsupportedCoding)
	})
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"small document": []byte(`{"hello":"world"}`),
		"changes feed":   changesPayload(500),
		"single byte":    {'x'},
	}

	for name, codec := range getAllCodecs() {
		for pname, payload := range payloads {
			t.Run(name+"/"+pname, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			out, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, out)

			compressed, err := codec.Compress([]byte{})
			require.NoError(t, err)

			out, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestAllCodecs_Stream(t *testing.T) {
	payload := changesPayload(2000)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			rc, err := codec.NewReader(bytes.NewReader(compressed))
			require.NoError(t, err)
			defer rc.Close()

			out, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.Equal(t, payload, out)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte("this is definitely not a compressed stream")

	for name, codec := range getAllCodecs() {
		if codec.Coding() == format.CodingIdentity {
			continue
		}
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	payload := changesPayload(100)

	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 20; j++ {
						compressed, err := codec.Compress(payload)
						assert.NoError(t, err)
						out, err := codec.Decompress(compressed)
						assert.NoError(t, err)
						assert.Equal(t, payload, out)
					}
				}()
			}
			wg.Wait()
		})
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte("abc")
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestCompressionStats(t *testing.T) {
	payload := changesPayload(200)
	compressed, err := NewZstdCompressor().Compress(payload)
	require.NoError(t, err)

	stats := NewCompressionStats(format.CodingZstd, payload, compressed)
	require.Equal(t, int64(len(payload)), stats.OriginalSize)
	require.Less(t, stats.CompressionRatio(), 1.0)
	require.Greater(t, stats.SpaceSavings(), 0.0)

	require.Equal(t, 0.0, CompressionStats{}.CompressionRatio())
}

func BenchmarkCodecs_Compress(b *testing.B) {
	payload := changesPayload(1000)
	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
	}
}
