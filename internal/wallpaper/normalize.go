package wallpaper

// Normalize shifts every count down by the smallest count in the collection.
// Differences between counts, and with them the selection weights relative
// to each other, stay the same while the absolute values stay small.
func Normalize(entries []Entry) []Entry {
	if len(entries) == 0 {
		return entries
	}
	low := entries[0].Count
	for _, e := range entries[1:] {
		low = min(low, e.Count)
	}
	if low == 0 {
		return entries
	}
	for i := range entries {
		entries[i].Count -= low
	}
	return entries
}
