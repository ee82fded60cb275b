package wallpaper

// Changes lists what a reconciliation added and removed.
type Changes struct {
	Added   []string
	Removed []string
}

// Empty reports whether the reconciliation changed nothing.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

// Reconcile brings tracked in line with names, the current directory listing.
// Entries whose file is gone are dropped, surviving entries keep their order
// and count, and newly seen names are appended with a zero count in the order
// they appear in names. Duplicate names collapse to their first occurrence.
func Reconcile(tracked []Entry, names []string) ([]Entry, Changes) {
	present := make(map[string]struct{}, len(names))
	for _, n := range names {
		present[n] = struct{}{}
	}

	var ch Changes
	out := make([]Entry, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, e := range tracked {
		if _, dup := seen[e.Name]; dup {
			continue
		}
		seen[e.Name] = struct{}{}
		if _, ok := present[e.Name]; !ok {
			ch.Removed = append(ch.Removed, e.Name)
			continue
		}
		out = append(out, e)
	}

	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, Entry{Name: n})
		ch.Added = append(ch.Added, n)
	}
	return out, ch
}
