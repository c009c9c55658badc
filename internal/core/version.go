package core

import (
	"strings"

	debversion "github.com/knqyf263/go-deb-version"

	"pkgforecaster/internal/types"
)

// versionCache memoizes parsed Debian versions; a report usually repeats
// the same source versions across binary packages.
type versionCache struct {
	deb map[string]debversion.Version
}

func newVersionCache() *versionCache {
	return &versionCache{deb: map[string]debversion.Version{}}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

// VersionComparer orders the two sides of a transition with Debian
// semantics. It is used for reporting only and never feeds risk scores.
type VersionComparer struct {
	cache *versionCache
}

func NewVersionComparer() VersionComparer {
	return VersionComparer{cache: newVersionCache()}
}

// Direction reports whether next sorts after current. Unparseable or
// unknown versions yield VersionDirectionUnknown.
func (c VersionComparer) Direction(current string, next string) types.VersionDirection {
	currentVersion := debToken(current)
	nextVersion := debToken(next)
	if currentVersion == "" || nextVersion == "" {
		return types.VersionDirectionUnknown
	}
	v1, err := c.cache.debVersion(currentVersion)
	if err != nil {
		return types.VersionDirectionUnknown
	}
	v2, err := c.cache.debVersion(nextVersion)
	if err != nil {
		return types.VersionDirectionUnknown
	}
	switch v1.Compare(v2) {
	case -1:
		return types.VersionDirectionUpgrade
	case 1:
		return types.VersionDirectionDowngrade
	default:
		return types.VersionDirectionSame
	}
}

// debToken drops trailing release and architecture tags such as
// "Ubuntu:22.04/jammy-updates [amd64]" from a version string.
func debToken(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 || fields[0] == types.UnknownVersion {
		return ""
	}
	return fields[0]
}
