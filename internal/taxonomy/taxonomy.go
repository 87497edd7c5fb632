// Package taxonomy defines the aisle/shelf classification scheme used to
// file library items. Shelves are keyed by a fixed-form code "DDD.DD":
// the three-digit head names the owning aisle, the two-digit tail names
// the shelf within it. Tails 00-09 are reserved for official shelves;
// 10-99 are user-created.
package taxonomy

import (
	"regexp"
	"strconv"
	"strings"
)

// shelfCodePattern matches the canonical shelf code form: three digits,
// a literal period, two digits.
var shelfCodePattern = regexp.MustCompile(`^\d{3}\.\d{2}$`)

// officialSuffixMax is the highest tail reserved for official shelves.
const officialSuffixMax = 9

// IsValidShelfCode reports whether code has the canonical DDD.DD form.
func IsValidShelfCode(code string) bool {
	return shelfCodePattern.MatchString(code)
}

// IsOfficialShelfCode reports whether code is valid and names an
// official (library-curated) shelf.
func IsOfficialShelfCode(code string) bool {
	_, tail, ok := SplitShelfCode(code)
	return ok && tail <= officialSuffixMax
}

// IsUserShelfCode reports whether code is valid and names a user-created
// shelf. An invalid code is neither official nor user.
func IsUserShelfCode(code string) bool {
	_, tail, ok := SplitShelfCode(code)
	return ok && tail > officialSuffixMax
}

// SplitShelfCode parses a shelf code into its numeric head and tail.
// ok is false when code is not a valid shelf code.
func SplitShelfCode(code string) (head, tail int, ok bool) {
	if !IsValidShelfCode(code) {
		return 0, 0, false
	}

	// Pattern guarantees both halves parse.
	headStr, tailStr, _ := strings.Cut(code, ".")
	head, _ = strconv.Atoi(headStr)
	tail, _ = strconv.Atoi(tailStr)
	return head, tail, true
}

// AisleCodeOf returns the 3-digit aisle prefix of a shelf code.
// The result is only meaningful for valid codes.
func AisleCodeOf(code string) string {
	if len(code) < 3 {
		return code
	}
	return code[:3]
}

// CompareShelfCodes orders two shelf codes by (head, tail) as integers,
// returning -1, 0, or 1. This is the canonical sort order for shelves
// and library sections everywhere in the system.
//
// Invalid codes sort after all valid codes, then lexically; this keeps
// the comparator total so it can back sort.SliceStable on mixed input.
func CompareShelfCodes(a, b string) int {
	aHead, aTail, aOK := SplitShelfCode(a)
	bHead, bTail, bOK := SplitShelfCode(b)

	switch {
	case aOK && !bOK:
		return -1
	case !aOK && bOK:
		return 1
	case !aOK && !bOK:
		return strings.Compare(a, b)
	}

	if aHead != bHead {
		if aHead < bHead {
			return -1
		}
		return 1
	}
	if aTail != bTail {
		if aTail < bTail {
			return -1
		}
		return 1
	}
	return 0
}
