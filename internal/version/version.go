// Package version resolves a (family, type, version?) triple to the exact
// XML namespace string a generator must emit, and reports which versions
// are available for a given family/type, building on the release matrices
// internal/codes maintains (C1).
package version

import (
	"fmt"

	"finfmt/internal/codes"
	"finfmt/internal/finerr"
)

// Family distinguishes the two ISO 20022 namespace roots this module
// supports.
type Family string

const (
	FamilyCamt Family = "camt"
	FamilyPain Family = "pain"
)

// ResolveNamespace builds the namespace string for a (family, type,
// version) triple. An empty version resolves to the family/type's default
// (highest supported) release. An explicit version outside the supported
// matrix is an UnsupportedCombination error.
func ResolveNamespace(family Family, typeCode string, requestedVersion string) (string, error) {
	switch family {
	case FamilyCamt:
		ct, ok := codes.CamtTypeFromCode(typeCode)
		if !ok {
			return "", finerr.New(finerr.UnknownType, "", fmt.Sprintf("unknown camt type %q", typeCode))
		}
		v, err := resolveCamtVersion(ct, requestedVersion)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("urn:iso:std:iso:20022:tech:xsd:camt.%s.001.%s", typeCode, v), nil
	case FamilyPain:
		pt, ok := codes.PainTypeFromCode(typeCode)
		if !ok {
			return "", finerr.New(finerr.UnknownType, "", fmt.Sprintf("unknown pain type %q", typeCode))
		}
		v, err := resolvePainVersion(pt, requestedVersion)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("urn:iso:std:iso:20022:tech:xsd:pain.%s.001.%s", typeCode, v), nil
	default:
		return "", finerr.New(finerr.UnknownType, "", fmt.Sprintf("unknown family %q", family))
	}
}

func resolveCamtVersion(t codes.CamtType, requested string) (string, error) {
	if requested == "" {
		v, ok := codes.CamtDefaultVersion(t)
		if !ok {
			return "", finerr.New(finerr.UnsupportedCombination, "", "no default version for camt type")
		}
		return v, nil
	}
	if !codes.CamtVersionSupported(t, requested) {
		return "", finerr.New(finerr.UnsupportedCombination, "", fmt.Sprintf("camt version %q not supported", requested))
	}
	return requested, nil
}

func resolvePainVersion(t codes.PainType, requested string) (string, error) {
	if requested == "" {
		v, ok := codes.PainDefaultVersion(t)
		if !ok {
			return "", finerr.New(finerr.UnsupportedCombination, "", "no default version for pain type")
		}
		return v, nil
	}
	if !codes.PainVersionSupported(t, requested) {
		return "", finerr.New(finerr.UnsupportedCombination, "", fmt.Sprintf("pain version %q not supported", requested))
	}
	return requested, nil
}

// AvailableVersions returns the supported version suffixes for a
// (family, type) pair, in ascending order as maintained by internal/codes.
func AvailableVersions(family Family, typeCode string) ([]string, error) {
	switch family {
	case FamilyCamt:
		ct, ok := codes.CamtTypeFromCode(typeCode)
		if !ok {
			return nil, finerr.New(finerr.UnknownType, "", fmt.Sprintf("unknown camt type %q", typeCode))
		}
		versions, ok := codes.CamtSupportedVersions(ct)
		if !ok {
			return nil, finerr.New(finerr.UnsupportedCombination, "", "no versions registered")
		}
		return versions, nil
	case FamilyPain:
		pt, ok := codes.PainTypeFromCode(typeCode)
		if !ok {
			return nil, finerr.New(finerr.UnknownType, "", fmt.Sprintf("unknown pain type %q", typeCode))
		}
		versions, ok := codes.PainSupportedVersions(pt)
		if !ok {
			return nil, finerr.New(finerr.UnsupportedCombination, "", "no versions registered")
		}
		return versions, nil
	default:
		return nil, finerr.New(finerr.UnknownType, "", fmt.Sprintf("unknown family %q", family))
	}
}
