package model

// Entry is a single discovered build entry.
type Entry struct {
	Key       string    `json:"key" yaml:"key"`
	Path      Path      `json:"path" yaml:"path"`
	Extension Extension `json:"extension" yaml:"extension"`
}

// EntryMap is an insertion-ordered mapping from entry key to Entry. Keys are
// unique; setting an existing key replaces its value but keeps the position
// of the first insertion.
type EntryMap struct {
	keys    []string
	entries map[string]Entry
}

// NewEntryMap returns an empty EntryMap.
func NewEntryMap() *EntryMap {
	return &EntryMap{entries: make(map[string]Entry)}
}

// Set stores entry under its key. When the key was already present the
// previous entry is returned together with true.
func (em *EntryMap) Set(entry Entry) (Entry, bool) {
	if em.entries == nil {
		em.entries = make(map[string]Entry)
	}

	previous, exists := em.entries[entry.Key]
	if !exists {
		em.keys = append(em.keys, entry.Key)
	}

	em.entries[entry.Key] = entry

	return previous, exists
}

// Get returns the entry stored under key.
func (em *EntryMap) Get(key string) (Entry, bool) {
	if em == nil {
		return Entry{}, false
	}

	entry, ok := em.entries[key]

	return entry, ok
}

// Len returns the number of keys.
func (em *EntryMap) Len() int {
	if em == nil {
		return 0
	}

	return len(em.keys)
}

// Keys returns the keys in insertion order.
func (em *EntryMap) Keys() []string {
	if em == nil {
		return nil
	}

	keys := make([]string, len(em.keys))
	copy(keys, em.keys)

	return keys
}

// Entries returns the entries in insertion order.
func (em *EntryMap) Entries() []Entry {
	if em == nil {
		return nil
	}

	entries := make([]Entry, 0, len(em.keys))
	for _, key := range em.keys {
		entries = append(entries, em.entries[key])
	}

	return entries
}

// Table returns the plain key to path mapping a bundler consumes as its
// entry table.
func (em *EntryMap) Table() map[string]string {
	table := make(map[string]string, em.Len())
	if em == nil {
		return table
	}

	for key, entry := range em.entries {
		table[key] = string(entry.Path)
	}

	return table
}
