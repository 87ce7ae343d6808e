package swiftmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMT940 = "{1:F01BANKDEFFAXXX0000000000}{2:O9400000000000BANKDEFFAXXX00000000000000000000N}{3:{108:STMT001}{119:STP}}{4:\r\n:20:STMT001\r\n:25:DE89370400440532013000\r\n:28C:1/1\r\n:60F:C230101EUR1000,00\r\n:61:2301010101C100,00NTRFNONREF//BANKREF1\r\n:86:EREF+E2E123 SVWZ+Invoice 42\r\n:62F:C230102EUR1100,00\r\n-}{5:{CHK:123456789ABC}}"

func TestParseFivBlockEnvelope(t *testing.T) {
	msg, err := Parse(sampleMT940)
	require.NoError(t, err)

	assert.Equal(t, "F", msg.Block1.ApplicationID)
	assert.Equal(t, "01", msg.Block1.ServiceID)
	assert.Equal(t, "BANKDEFFAXXX", msg.Block1.LogicalTerminal)

	assert.Equal(t, byte('O'), msg.Block2.Direction)
	assert.Equal(t, "940", msg.Block2.MessageType)

	v, ok := msg.Block3Tag("108")
	require.True(t, ok)
	assert.Equal(t, "STMT001", v)
	assert.True(t, msg.IsStraightThroughProcessing())

	assert.Contains(t, msg.Block4, ":20:STMT001")
	assert.Contains(t, msg.Block4, ":86:EREF+E2E123 SVWZ+Invoice 42")

	chk, ok := msg.Block5Tag("CHK")
	require.True(t, ok)
	assert.Equal(t, "123456789ABC", chk)
}

func TestParseLastOccurrenceWinsOnDuplicateTag(t *testing.T) {
	pairs := parseNestedTags("{108:FIRST}{119:STP}{108:SECOND}")
	v, ok := Tag(pairs, "108")
	require.True(t, ok)
	assert.Equal(t, "SECOND", v)
}

func TestParseMissingBlock4EndMarkerIsError(t *testing.T) {
	_, err := Parse("{1:F01BANKDEFFAXXX0000000000}{4:\r\n:20:REF\r\n}")
	require.Error(t, err)
}

func TestBlock4PreservesEmbeddedBraces(t *testing.T) {
	text := "{1:F01BANKDEFFAXXX0000000000}{4:\r\n:86:note {with braces} inside\r\n-}"
	msg, err := Parse(text)
	require.NoError(t, err)
	assert.Contains(t, msg.Block4, "note {with braces} inside")
}

func TestBlock2OutputDirectionFields(t *testing.T) {
	b2 := parseBlock2("O1031200030101BANKDEFFAXXX22221234560301031201N")
	assert.Equal(t, byte('O'), b2.Direction)
	assert.Equal(t, "103", b2.MessageType)
	assert.Equal(t, "1200", b2.InputTime)
	assert.Equal(t, "030101", b2.InputDate)
}
