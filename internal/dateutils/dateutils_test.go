package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMT6(t *testing.T) {
	d, err := ParseMT6("230115")
	require.NoError(t, err)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestParseMT6RejectsWrongLength(t *testing.T) {
	_, err := ParseMT6("2301")
	assert.Error(t, err)
}

func TestFormatMT6(t *testing.T) {
	d := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "230115", FormatMT6(d))
}

func TestParseMT4UsesReferenceYear(t *testing.T) {
	d, err := ParseMT4("0215", 2023)
	require.NoError(t, err)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 15, d.Day())
}

func TestParseISOTruncatesTimeComponent(t *testing.T) {
	d, err := ParseISO("2023-01-15T10:30:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, 15, d.Day())
}

func TestParseISOPlainDate(t *testing.T) {
	d, err := ParseISO("2023-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.January, d.Month())
}

func TestFormatISO(t *testing.T) {
	d := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-01-15", FormatISO(d))
}

func TestParseAndFormatEuropean(t *testing.T) {
	d, err := ParseEuropean("15.01.2023")
	require.NoError(t, err)
	assert.Equal(t, "15.01.2023", FormatEuropean(d))
}

func TestParseEuropeanInvalid(t *testing.T) {
	_, err := ParseEuropean("2023-01-15")
	assert.Error(t, err)
}
