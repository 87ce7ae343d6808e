package finerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(MissingField, "GrpHdr/MsgId", "")
	assert.Equal(t, "MissingField(GrpHdr/MsgId)", err.Error())

	lenErr := NewLength("RmtInf/Ustrd", 140, 150)
	assert.Equal(t, "LengthViolation(RmtInf/Ustrd): max 140, got 150", lenErr.Error())
}

func TestErrorsIsByKind(t *testing.T) {
	err := New(InvalidValue, "Amt", "not decimal")
	sentinel := New(InvalidValue, "", "")
	assert.True(t, errors.Is(err, sentinel))

	other := New(MissingField, "", "")
	assert.False(t, errors.Is(err, other))
}

func TestList(t *testing.T) {
	var l List
	assert.False(t, l.HasErrors())
	assert.Nil(t, l.ErrorOrNil())

	l.Add(New(MissingField, "A", ""))
	l.Add(nil)
	l.Add(New(InvalidValue, "B", "bad"))

	require.True(t, l.HasErrors())
	require.Len(t, l.Errors, 2)
	assert.Contains(t, l.ErrorOrNil().Error(), "MissingField(A)")
	assert.Contains(t, l.ErrorOrNil().Error(), "InvalidValue(B): bad")
}
