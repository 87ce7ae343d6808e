package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct{ next byte }

func (s *stubSource) Fill(b []byte) error {
	for i := range b {
		b[i] = s.next
		s.next++
	}
	return nil
}

func TestDefaultFillsRequestedLength(t *testing.T) {
	b := make([]byte, 16)
	require.NoError(t, Default.Fill(b))
	assert.Len(t, b, 16)
}

func TestStubSourceDeterministic(t *testing.T) {
	s := &stubSource{}
	b := make([]byte, 4)
	require.NoError(t, s.Fill(b))
	assert.Equal(t, []byte{0, 1, 2, 3}, b)
}
