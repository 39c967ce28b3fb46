package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// PackageFormat is the kind of package a build produces.
type PackageFormat string

const (
	// FormatAPK produces a signed installable package.
	FormatAPK PackageFormat = "apk"
	// FormatAAB produces a signed app bundle.
	FormatAAB PackageFormat = "aab"
)

// ParsePackageFormat validates a format tag. The empty string selects apk.
func ParsePackageFormat(s string) (PackageFormat, error) {
	switch PackageFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatAPK:
		return FormatAPK, nil
	case FormatAAB:
		return FormatAAB, nil
	default:
		return "", zerr.Wrap(ErrUnsupportedFormat, strconv.Quote(s))
	}
}

// Extension returns the file extension of the format without the leading dot.
func (f PackageFormat) Extension() string {
	return string(f)
}

func (f PackageFormat) String() string {
	return string(f)
}
