package xmlbuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderProducesBalancedDocument(t *testing.T) {
	b := New().Root("Document", "urn:iso:std:iso:20022:tech:xsd:camt.053.001.08")
	b.Open("BkToCstmrStmt").
		Open("GrpHdr").
		Elem("MsgId", "MSG001").
		Elem("CreDtTm", "2023-01-15T10:00:00Z").
		Close().
		Close()

	out, err := b.String()
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "<Document"))
	assert.True(t, strings.Contains(out, `xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08"`))
	assert.True(t, strings.Contains(out, "<MsgId>MSG001</MsgId>"))
}

func TestOpenWithoutRootPanics(t *testing.T) {
	assert.Panics(t, func() {
		New().Open("Foo")
	})
}
