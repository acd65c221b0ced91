package idgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var when = time.Date(2017, 10, 21, 6, 47, 18, 153304000, time.UTC)

func TestSum(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		length  int
		expect  string
	}{
		{name: "empty", content: "", length: 3, expect: "8c2dcb"},
		{name: "content", content: "foo", length: 3, expect: "46ee55"},
		{name: "extended", content: "foo", length: 4, expect: "ee950528"},
		{name: "long", content: "", length: 17, expect: "c73b80d0146d6d03679c3077f9f05129db"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Sum(Input([]byte(tc.content), when), tc.length)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
			assert.Len(t, actual, 2*tc.length)
		})
	}
}

func TestSum_InvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, MaxLength + 1} {
		_, err := Sum([]byte("x"), length)
		assert.ErrorIs(t, err, ErrInvalidLength)
	}
	digest, err := Sum([]byte("x"), MaxLength)
	require.NoError(t, err)
	assert.Len(t, digest, 2*MaxLength)
}

func TestInput(t *testing.T) {
	assert.Equal(t, []byte("2017-10-21T06:47:18.153304foo"), Input([]byte("foo"), when))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "/8c2dcb", Format("", "8c2dcb"))
	assert.Equal(t, "/foo/8c2dcb", Format("foo", "8c2dcb"))
}
