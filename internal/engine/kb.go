package engine

import "sort"

// KBEntries returns every article sorted by title.
func (m *Manager) KBEntries() []KBEntry {
	out := make([]KBEntry, 0, len(m.kb))
	for _, e := range m.kb {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// SearchKB matches query against article titles and slugs.
func (m *Manager) SearchKB(query string) []KBEntry {
	all := m.KBEntries()
	labels := make([]string, len(all))
	for i, e := range all {
		labels[i] = e.Title + " " + e.Slug
	}
	idx := matchIndices(query, labels)
	out := make([]KBEntry, 0, len(idx))
	for _, i := range idx {
		out = append(out, all[i])
	}
	return out
}

// KBEntry looks up an article by slug.
func (m *Manager) KBEntry(slug string) (KBEntry, bool) {
	e, ok := m.kb[slug]
	if !ok {
		return KBEntry{}, false
	}
	return *e, true
}
