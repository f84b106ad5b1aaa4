package contact

import (
	"fmt"
	"testing"
)

// The assembler must produce the same global indices whatever the order
// in which the fragments completed, as frame numbering depends only on
// fragment order and on each fragment's usable frame count.
func TestAssemble(Te *testing.T) {
	mk := func(index, frames int, locals ...int) *Result {
		r := &Result{Index: index, Frames: frames}
		for _, l := range locals {
			r.Contacts = append(r.Contacts, &Contact{Frame: l, Atom1: "a", Atom2: "b", IType: HBond})
		}
		return r
	}
	//completion order deliberately scrambled
	results := []*Result{
		mk(2, 500, 1),
		mk(0, 999, 1, 5),
		mk(1, 999, 5),
	}
	contacts, itypes := assemble(results)
	if len(contacts) != 4 {
		Te.Fatalf("expected 4 contacts, got %d", len(contacts))
	}
	//fragment 0 contributes 999 usable frames, so its local frame 5 is
	//global frame 4, and fragment 1's local frame 5 is global 1003.
	want := []int{0, 4, 1003, 1998}
	for i, c := range contacts {
		if c.Frame != want[i] {
			Te.Errorf("contact %d: global frame %d, want %d", i, c.Frame, want[i])
		}
	}
	if len(itypes) != 1 || !itypes[HBond] {
		Te.Error("wrong set of observed interaction types:", itypes)
	}
	fmt.Println("assembled global frames:", want)
}

// Fragments with no usable frames still advance nothing, and empty
// results assemble to an empty contact list.
func TestAssembleEmpty(Te *testing.T) {
	contacts, itypes := assemble([]*Result{{Index: 0, Frames: 0}})
	if len(contacts) != 0 || len(itypes) != 0 {
		Te.Error("empty results should assemble to nothing")
	}
	contacts, itypes = assemble(nil)
	if len(contacts) != 0 || len(itypes) != 0 {
		Te.Error("nil results should assemble to nothing")
	}
}
