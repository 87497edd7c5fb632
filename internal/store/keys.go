package store

// Key prefixes. Shelves are keyed by shelf code (the primary lookup
// path); entries and book logs are keyed by ID.
const (
	shelfPrefix   = "shelf:"
	entryPrefix   = "entry:"
	bookLogPrefix = "booklog:"
)

func shelfKey(code string) []byte { return []byte(shelfPrefix + code) }

func entryKey(id string) []byte { return []byte(entryPrefix + id) }

func bookLogKey(id string) []byte { return []byte(bookLogPrefix + id) }
