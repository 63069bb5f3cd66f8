package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Platform identifies the account platform encoded in a player identifier
type Platform string

const (
	PlatformSteam Platform = "steam"
)

// PlatformID is a parsed player identifier such as "steam:110000112345678"
type PlatformID struct {
	Platform  Platform
	NumericID uint64
}

// ParsePlatformID parses "<platform>:<hex digits>" into a PlatformID.
// Only the steam platform is recognized.
func ParsePlatformID(raw string) (PlatformID, error) {
	tag, digits, ok := strings.Cut(raw, ":")
	if !ok {
		return PlatformID{}, fmt.Errorf("%w: missing platform prefix in %q", ErrInvalidIdentifierFormat, raw)
	}

	if Platform(tag) != PlatformSteam {
		return PlatformID{}, fmt.Errorf("%w: unrecognized platform %q", ErrInvalidIdentifierFormat, tag)
	}

	numericID, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return PlatformID{}, fmt.Errorf("%w: %q is not a hex account id", ErrInvalidIdentifierFormat, digits)
	}

	return PlatformID{Platform: PlatformSteam, NumericID: numericID}, nil
}

// ParseNumericID accepts either a platform identifier or a plain decimal account id.
// Used by the live session view, which addresses players by number only.
func ParseNumericID(raw string) (uint64, error) {
	if strings.Contains(raw, ":") {
		id, err := ParsePlatformID(raw)
		if err != nil {
			return 0, err
		}
		return id.NumericID, nil
	}

	numericID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a numeric id", ErrInvalidIdentifierFormat, raw)
	}
	return numericID, nil
}

// String renders the identifier in its canonical "<platform>:<hex>" form
func (p PlatformID) String() string {
	return string(p.Platform) + ":" + strconv.FormatUint(p.NumericID, 16)
}

// Decimal renders the numeric id in base 10, the form the identity provider expects
func (p PlatformID) Decimal() string {
	return strconv.FormatUint(p.NumericID, 10)
}
