package cart

import "regexp"

var ownerPattern = regexp.MustCompile(`^[A-Za-z0-9._@:-]{1,128}$`)

// ValidOwner reports whether owner can address a cart. Both the HTTP header and
// checkout records are checked against it.
func ValidOwner(owner string) bool {
	return ownerPattern.MatchString(owner)
}
