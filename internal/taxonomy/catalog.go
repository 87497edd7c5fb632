package taxonomy

// Aisle is a top-level subject category, keyed by a 3-digit code.
type Aisle struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// aisles is the static top-level catalog. One row per hundred-block.
var aisles = []Aisle{
	{Code: "000", Label: "Library & Meta", Description: "Journals, prompts, reading goals."},
	{Code: "100", Label: "Mind & Philosophy", Description: "Identity, meaning, self-growth."},
	{Code: "200", Label: "Faith & Myth", Description: "Religion, spirituality, folklore."},
	{Code: "300", Label: "Society", Description: "Politics, relationships, culture."},
	{Code: "400", Label: "Language", Description: "Linguistics, writing craft, grammar."},
	{Code: "500", Label: "Science", Description: "Nature, space, math, psychology."},
	{Code: "600", Label: "Life & Skills", Description: "Business, tech, health, cooking."},
	{Code: "700", Label: "Arts", Description: "Music, film, visual art."},
	{Code: "800", Label: "Literature", Description: "Poetry, fiction, essays, plays."},
	{Code: "900", Label: "History & Worlds", Description: "History, biography, geography."},
}

// Aisles returns the full aisle catalog in code order.
// The returned slice is a copy; callers may mutate it freely.
func Aisles() []Aisle {
	out := make([]Aisle, len(aisles))
	copy(out, aisles)
	return out
}

// AisleForCode resolves the aisle owning a shelf code by its 3-digit
// prefix. ok is false for codes outside the catalog or invalid codes.
func AisleForCode(code string) (Aisle, bool) {
	if !IsValidShelfCode(code) {
		return Aisle{}, false
	}
	prefix := AisleCodeOf(code)
	for _, a := range aisles {
		if a.Code == prefix {
			return a, true
		}
	}
	return Aisle{}, false
}

// ShelfSeed describes one shelf in the default catalog shipped with the
// server. The store bootstraps these on first run.
type ShelfSeed struct {
	Code  string
	Label string
}

// OfficialShelfSeeds lists the library-curated shelves (tails 00-09).
func OfficialShelfSeeds() []ShelfSeed {
	return []ShelfSeed{
		{Code: "810.00", Label: "Writing Craft"},
		{Code: "820.00", Label: "Poetry"},
		{Code: "830.00", Label: "Fiction"},
		{Code: "840.00", Label: "Essays / Nonfiction Lit"},
		{Code: "850.00", Label: "Plays / Scripts"},
		{Code: "860.00", Label: "Short Stories"},
		{Code: "870.00", Label: "Classics"},
		{Code: "890.00", Label: "World Literature"},
	}
}

// StarterShelfSeeds lists the sample user shelves (tails 10-99) created
// for the owning user on first run.
func StarterShelfSeeds() []ShelfSeed {
	return []ShelfSeed{
		{Code: "820.10", Label: "Love Poetry"},
		{Code: "820.20", Label: "Grief Poetry"},
		{Code: "820.30", Label: "Motivational Poetry"},
		{Code: "830.10", Label: "Romance Fiction"},
		{Code: "830.20", Label: "Thriller Fiction"},
		{Code: "830.30", Label: "Fantasy Fiction"},
		{Code: "100.20", Label: "Quiet Growth"},
		{Code: "900.30", Label: "Life Stories"},
	}
}
