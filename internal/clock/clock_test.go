package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOFormat(t *testing.T) {
	testCases := []struct {
		name   string
		when   time.Time
		expect string
	}{
		{
			name:   "microseconds",
			when:   time.Date(2017, 10, 21, 6, 47, 18, 153304000, time.UTC),
			expect: "2017-10-21T06:47:18.153304",
		},
		{
			name:   "whole seconds",
			when:   time.Date(2017, 10, 21, 6, 47, 18, 0, time.UTC),
			expect: "2017-10-21T06:47:18",
		},
		{
			name:   "sub-microsecond truncated",
			when:   time.Date(2017, 10, 21, 6, 47, 18, 999, time.UTC),
			expect: "2017-10-21T06:47:18",
		},
		{
			name:   "leading zero fraction",
			when:   time.Date(2020, 1, 2, 3, 4, 5, 7000, time.UTC),
			expect: "2020-01-02T03:04:05.000007",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ISOFormat(tc.when))
		})
	}
}

func TestParseISO(t *testing.T) {
	parsed, err := ParseISO("2017-10-21T06:47:18.153304")
	require.NoError(t, err)
	assert.Equal(t, "2017-10-21T06:47:18.153304", ISOFormat(parsed))

	parsed, err = ParseISO("2017-10-21T06:47:18Z")
	require.NoError(t, err)
	assert.Equal(t, "2017-10-21T06:47:18", ISOFormat(parsed))

	_, err = ParseISO("yesterday")
	assert.Error(t, err)
}

func TestNow(t *testing.T) {
	fixed := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	NowFunc = func() time.Time { return fixed }
	defer func() { NowFunc = time.Now }()
	assert.Equal(t, fixed, Now())
}
