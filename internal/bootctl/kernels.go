package bootctl

import "github.com/lithammer/fuzzysearch/fuzzy"

// ResolveKernel maps a configured kernel name onto the detected kernel list.
// Exact matches win; otherwise the closest fuzzy match is taken, so a stale
// or abbreviated loader.conf value still lands on a real kernel. Returns the
// resolved name and its 1-based position, or ("", 0) when nothing matches.
func (c *Control) ResolveKernel(name string) (string, int) {
	list := c.KernelList()
	if name == "" {
		if len(list) == 0 {
			return "", 0
		}
		return list[0], 1
	}
	for i, k := range list {
		if k == name {
			return k, i + 1
		}
	}
	ranks := fuzzy.RankFindFold(name, list)
	if len(ranks) == 0 {
		return "", 0
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target, best.OriginalIndex + 1
}
