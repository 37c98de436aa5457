// ABOUTME: SPDX short-identifier decomposition into family, version, modifier.
// ABOUTME: Pure string parsing; never fails, degrades to family-only output.

package spdx

import (
	"regexp"
	"strings"
)

// Modifier is the version modifier carried by an SPDX identifier.
type Modifier string

const (
	ModifierNone    Modifier = ""
	ModifierOnly    Modifier = "only"
	ModifierOrLater Modifier = "or-later"
)

// Parsed is the decomposition of an SPDX short identifier.
// Version and Modifier are empty when the identifier carries neither.
type Parsed struct {
	Family   string
	Version  string
	Modifier Modifier
}

// versionToken matches a hyphen-delimited token made solely of
// dot-separated digit groups, e.g. "2.0" or "1.0.1".
var versionToken = regexp.MustCompile(`^\d+(\.\d+)*$`)

// Parse decomposes an SPDX short identifier such as "GPL-3.0-or-later",
// "AGPL-1.0+" or "MIT". It is total: identifiers that don't follow the
// naming convention come back with Family set to the whole input.
func Parse(identifier string) Parsed {
	p := Parsed{}
	rest := identifier

	switch {
	case strings.HasSuffix(rest, "-only"):
		p.Modifier = ModifierOnly
		rest = strings.TrimSuffix(rest, "-only")
	case strings.HasSuffix(rest, "-or-later"):
		p.Modifier = ModifierOrLater
		rest = strings.TrimSuffix(rest, "-or-later")
	case strings.HasSuffix(rest, "+"):
		p.Modifier = ModifierOrLater
		rest = strings.TrimSuffix(rest, "+")
	}

	tokens := strings.Split(rest, "-")
	// The leading token can never be a version: the convention is
	// {FAMILY}-{VERSION}, so a version always follows a hyphen. Scanning
	// from the end makes the last numeric token win for identifiers with
	// more than one ("Foo-1.0-2.0" parses as family "Foo-1.0").
	for i := len(tokens) - 1; i >= 1; i-- {
		if versionToken.MatchString(tokens[i]) {
			p.Version = tokens[i]
			p.Family = strings.Join(tokens[:i], "-")
			return p
		}
	}

	p.Family = rest
	return p
}
