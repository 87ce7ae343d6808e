package codes

// painReleaseMatrix encodes the supported XSD version suffixes for each
// pain message family and its default (highest) version. camt.053's
// matrix is analogous and smaller since this module only ever generates
// one version of it.
var painReleaseMatrix = map[PainType]struct {
	Default   string
	Supported []string
}{
	Pain001: {Default: "12", Supported: []string{"03", "08", "09", "10", "11", "12"}},
	Pain002: {Default: "14", Supported: []string{"03", "10", "13", "14"}},
	Pain008: {Default: "11", Supported: []string{"02", "08", "11"}},
}

var camtReleaseMatrix = map[CamtType]struct {
	Default   string
	Supported []string
}{
	Camt052: {Default: "08", Supported: []string{"02", "08"}},
	Camt053: {Default: "08", Supported: []string{"02", "08"}},
	Camt054: {Default: "08", Supported: []string{"02", "08"}},
}

// PainDefaultVersion returns the default XSD version suffix for a pain type.
func PainDefaultVersion(t PainType) (string, bool) {
	m, ok := painReleaseMatrix[t]
	return m.Default, ok
}

// PainSupportedVersions returns the full supported-version set for a pain type.
func PainSupportedVersions(t PainType) ([]string, bool) {
	m, ok := painReleaseMatrix[t]
	return m.Supported, ok
}

// PainVersionSupported reports whether version is in the supported set for t.
func PainVersionSupported(t PainType, version string) bool {
	versions, ok := painReleaseMatrix[t]
	if !ok {
		return false
	}
	for _, v := range versions.Supported {
		if v == version {
			return true
		}
	}
	return false
}

// CamtDefaultVersion returns the default XSD version suffix for a camt type.
func CamtDefaultVersion(t CamtType) (string, bool) {
	m, ok := camtReleaseMatrix[t]
	return m.Default, ok
}

// CamtSupportedVersions returns the full supported-version set for a camt type.
func CamtSupportedVersions(t CamtType) ([]string, bool) {
	m, ok := camtReleaseMatrix[t]
	return m.Supported, ok
}

// CamtVersionSupported reports whether version is in the supported set for t.
func CamtVersionSupported(t CamtType, version string) bool {
	versions, ok := camtReleaseMatrix[t]
	if !ok {
		return false
	}
	for _, v := range versions.Supported {
		if v == version {
			return true
		}
	}
	return false
}
