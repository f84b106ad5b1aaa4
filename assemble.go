package contact

import "sort"

//assemble reorders the per-fragment results by fragment index, never by
//completion order, and rewrites each contact's fragment-local 1-based
//frame index into a contiguous 0-based global index, using a running
//offset advanced by every fragment's usable frame count. It also collects
//the set of interaction types actually observed, which decides the output
//partitions. No I/O happens here.
func assemble(results []*Result) ([]*Contact, map[string]bool) {
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	itypes := make(map[string]bool)
	var full []*Contact
	frames := 0
	for _, r := range results {
		for _, c := range r.Contacts {
			c.Frame = frames + c.Frame - 1
			full = append(full, c)
			itypes[c.IType] = true
		}
		frames += r.Frames
	}
	return full, itypes
}
