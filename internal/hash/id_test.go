package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum([]byte(tt.data)))
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "ef46db3751d8e999", Hex(0xef46db3751d8e999))
	assert.Equal(t, "0000000000000001", Hex(1))
	assert.Len(t, Hex(0), 16)
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkSum(b *testing.B) {
	doc := []byte(randString(256))
	b.ResetTimer()
	for b.Loop() {
		Sum(doc)
	}
}
