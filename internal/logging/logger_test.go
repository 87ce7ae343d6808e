package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerReturnsSameInstanceAcrossCalls(t *testing.T) {
	first := GetLogger()
	second := GetLogger()
	assert.Same(t, first, second)
}

func TestSetLoggerOverridesSharedDefault(t *testing.T) {
	mock := &MockLogger{}
	SetLogger(mock)
	t.Cleanup(func() { SetLogger(NewLogrusAdapter("info", "text")) })

	GetLogger().Debug("unrecognised balance tag, defaulting to opening balance",
		Field{Key: "tag", Value: "ZZZ"})

	require.Len(t, mock.Entries, 1)
	entry := mock.Entries[0]
	assert.Equal(t, "DEBUG", entry.Level)
	assert.True(t, mock.HasEntry("DEBUG", "unrecognised balance tag, defaulting to opening balance"))
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, "tag", entry.Fields[0].Key)
	assert.Equal(t, "ZZZ", entry.Fields[0].Value)
}

func TestSetLoggerIgnoresNil(t *testing.T) {
	mock := &MockLogger{}
	SetLogger(mock)
	t.Cleanup(func() { SetLogger(NewLogrusAdapter("info", "text")) })

	SetLogger(nil)
	GetLogger().Warn("character not representable in Windows-1252, replaced with '?'")

	assert.True(t, mock.HasEntry("WARN", "character not representable in Windows-1252, replaced with '?'"))
}

func TestMockLoggerClearAndFilterByLevel(t *testing.T) {
	mock := &MockLogger{}
	mock.Debug("d")
	mock.Warn("w")
	mock.Error("e")

	assert.Len(t, mock.GetEntriesByLevel("WARN"), 1)
	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}
