package contact

import (
	"fmt"
	"testing"
)

func TestSchedule(Te *testing.T) {
	p := DefaultParams()
	frags := Schedule(2500, p)
	if len(frags) != 3 {
		Te.Fatalf("expected 3 fragments for 2500 frames, got %d", len(frags))
	}
	expected := [][3]int{{0, 0, 1000}, {1, 1000, 2000}, {2, 2000, 3000}}
	for i, f := range frags {
		e := expected[i]
		if f.Index != e[0] || f.Begin != e[1] || f.End != e[2] {
			Te.Errorf("fragment %d: got (%d, [%d,%d)), want (%d, [%d,%d))", i, f.Index, f.Begin, f.End, e[0], e[1], e[2])
		}
		if f.Stride != 1 {
			Te.Errorf("fragment %d: stride %d, want 1", i, f.Stride)
		}
	}
	fmt.Println("2500 frames scheduled as", len(frags), "fragments")
}

// The fragments must partition [0,total) contiguously, with no gaps and
// no overlap, whatever the fragment size.
func TestSchedulePartition(Te *testing.T) {
	p := DefaultParams()
	p.FragSize(7)
	for _, total := range []int{0, 1, 6, 7, 8, 14, 50} {
		frags := Schedule(total, p)
		if total <= 0 {
			if len(frags) != 0 {
				Te.Errorf("total %d: expected no fragments, got %d", total, len(frags))
			}
			continue
		}
		next := 0
		for i, f := range frags {
			if f.Index != i {
				Te.Errorf("total %d: fragment %d has index %d", total, i, f.Index)
			}
			if f.Begin != next {
				Te.Errorf("total %d: fragment %d begins at %d, want %d", total, i, f.Begin, next)
			}
			if f.End-f.Begin != 7 {
				Te.Errorf("total %d: fragment %d has size %d", total, i, f.End-f.Begin)
			}
			next = f.End
		}
		if next < total {
			Te.Errorf("total %d: fragments only cover up to %d", total, next)
		}
	}
}
