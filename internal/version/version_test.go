package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNamespaceDefault(t *testing.T) {
	ns, err := ResolveNamespace(FamilyCamt, "053", "")
	require.NoError(t, err)
	assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:camt.053.001.08", ns)
}

func TestResolveNamespaceExplicitVersion(t *testing.T) {
	ns, err := ResolveNamespace(FamilyPain, "001", "03")
	require.NoError(t, err)
	assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03", ns)
}

func TestResolveNamespaceUnsupportedVersion(t *testing.T) {
	_, err := ResolveNamespace(FamilyPain, "001", "99")
	assert.Error(t, err)
}

func TestAvailableVersions(t *testing.T) {
	versions, err := AvailableVersions(FamilyPain, "008")
	require.NoError(t, err)
	assert.Contains(t, versions, "02")
	assert.Contains(t, versions, "11")
}
