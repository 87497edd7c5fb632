package taxonomy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidShelfCode_AcceptsCanonicalForm(t *testing.T) {
	valid := []string{"000.00", "100.20", "820.20", "999.99"}
	for _, code := range valid {
		assert.True(t, IsValidShelfCode(code), code)
	}
}

func TestIsValidShelfCode_RejectsMalformedInput(t *testing.T) {
	invalid := []string{
		"",
		"bad-code",
		"820",
		"820.2",
		"820.200",
		"82.20",
		"8200.20",
		"820,20",
		"82a.20",
		"820.2b",
		" 820.20",
		"820.20 ",
		".20",
		"820.",
	}
	for _, code := range invalid {
		assert.False(t, IsValidShelfCode(code), code)
	}
}

func TestShelfCodeClassification_PartitionsBySuffix(t *testing.T) {
	// Official iff tail 00-09, user iff tail 10-99; exactly one holds
	// for every valid code.
	for tail := 0; tail <= 99; tail++ {
		code := fmt.Sprintf("820.%02d", tail)
		official := IsOfficialShelfCode(code)
		user := IsUserShelfCode(code)

		assert.Equal(t, tail <= 9, official, code)
		assert.Equal(t, tail >= 10, user, code)
		assert.NotEqual(t, official, user, code)
	}
}

func TestShelfCodeClassification_InvalidCodeIsNeither(t *testing.T) {
	for _, code := range []string{"", "bad-code", "820.2", "82a.20"} {
		assert.False(t, IsOfficialShelfCode(code), code)
		assert.False(t, IsUserShelfCode(code), code)
	}
}

func TestSplitShelfCode(t *testing.T) {
	head, tail, ok := SplitShelfCode("820.07")
	assert.True(t, ok)
	assert.Equal(t, 820, head)
	assert.Equal(t, 7, tail)

	_, _, ok = SplitShelfCode("820-07")
	assert.False(t, ok)
}

func TestCompareShelfCodes_NumericHeadThenTail(t *testing.T) {
	ordered := []string{"100.20", "820.10", "820.20", "830.20"}
	for i := 0; i < len(ordered)-1; i++ {
		a, b := ordered[i], ordered[i+1]
		assert.Equal(t, -1, CompareShelfCodes(a, b), "%s < %s", a, b)
		assert.Equal(t, 1, CompareShelfCodes(b, a), "%s > %s", b, a)
	}
	assert.Equal(t, 0, CompareShelfCodes("820.20", "820.20"))
}

func TestCompareShelfCodes_ComparesNumericallyNotLexically(t *testing.T) {
	// Tail "9" vs "10": lexical order would invert these.
	assert.Equal(t, -1, CompareShelfCodes("820.09", "820.10"))
}

func TestCompareShelfCodes_InvalidCodesSortLast(t *testing.T) {
	assert.Equal(t, -1, CompareShelfCodes("999.99", "bad-code"))
	assert.Equal(t, 1, CompareShelfCodes("bad-code", "000.00"))
}

func TestAisleForCode(t *testing.T) {
	aisle, ok := AisleForCode("820.20")
	assert.True(t, ok)
	assert.Equal(t, "800", aisle.Code)
	assert.Equal(t, "Literature", aisle.Label)

	_, ok = AisleForCode("bad-code")
	assert.False(t, ok)
}

func TestAisles_ReturnsFullCatalogInOrder(t *testing.T) {
	all := Aisles()
	assert.Len(t, all, 10)
	for i, a := range all {
		assert.Equal(t, fmt.Sprintf("%d00", i), a.Code)
	}
}

func TestShelfSeeds_CarryConsistentSuffixes(t *testing.T) {
	for _, seed := range OfficialShelfSeeds() {
		assert.True(t, IsOfficialShelfCode(seed.Code), seed.Code)
	}
	for _, seed := range StarterShelfSeeds() {
		assert.True(t, IsUserShelfCode(seed.Code), seed.Code)
	}
}
