package contact

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

//memSource is a synthetic in-memory trajectory. Frame i carries its raw
//trajectory index at position (0,0), so test detectors can tell which
//frame they are looking at.
type memSource struct {
	natoms int
	total  int
	failAt int //raw frame whose Load fails, or -1
}

func (M *memSource) Length() (int, error) { return M.total, nil }

func (M *memSource) Labels() (map[int]string, error) {
	ret := make(map[int]string, M.natoms)
	for i := 0; i < M.natoms; i++ {
		ret[i] = fmt.Sprintf("A:ALA:%d:CA:%d", i+1, i)
	}
	return ret, nil
}

func (M *memSource) Load(begin, end, stride int) (*Window, error) {
	var frames []*mat.Dense
	for i := begin; i < end && i < M.total; i += stride {
		if i == M.failAt {
			return nil, CError{"unreadable frame", []string{"memSource.Load"}}
		}
		f := mat.NewDense(M.natoms, 3, nil)
		f.Set(0, 0, float64(i))
		frames = append(frames, f)
	}
	return NewWindow(frames), nil
}

//triggerAt returns a detector that reports one contact whenever it sees
//the frame with the given raw index.
func triggerAt(raw int, itype string) Detector {
	return func(w *Window, frame int, labels map[int]string, p *Params) ([]*Contact, error) {
		if int(w.Frame(frame).At(0, 0)) != raw {
			return nil, nil
		}
		return []*Contact{{Frame: frame, Atom1: labels[0], Atom2: labels[1], IType: itype}}, nil
	}
}

//always returns a detector that reports one contact on every frame.
func always(itype string) Detector {
	return func(w *Window, frame int, labels map[int]string, p *Params) ([]*Contact, error) {
		return []*Contact{{Frame: frame, Atom1: labels[0], Atom2: labels[1], IType: itype}}, nil
	}
}

func TestTrajContacts(Te *testing.T) {
	//raw frame 1005 sits in the second fragment, at local frame 5, so it
	//must come out as global frame 1003. Raw frame 1 is the first usable
	//frame of the trajectory, global frame 0.
	RegisterDetector(HBond, triggerAt(1005, HBond))
	RegisterDetector(SaltBridge, triggerAt(1, SaltBridge))
	defer RegisterDetector(HBond, nil)
	defer RegisterDetector(SaltBridge, nil)
	src := &memSource{natoms: 4, total: 2500, failAt: -1}
	p := DefaultParams()
	p.ITypes([]string{HBond, SaltBridge})
	p.Cpus(3)
	outdir := filepath.Join(Te.TempDir(), "contacts")
	if err := TrajContacts(src, outdir, p); err != nil {
		Te.Fatal(err)
	}
	hb, err := os.ReadFile(filepath.Join(outdir, "hb.txt"))
	if err != nil {
		Te.Fatal(err)
	}
	if got, want := string(hb), "1003\tA:ALA:1:CA:0\tA:ALA:2:CA:1\t-hb\n"; got != want {
		Te.Errorf("hb.txt: got %q, want %q", got, want)
	}
	sb, err := os.ReadFile(filepath.Join(outdir, "sb.txt"))
	if err != nil {
		Te.Fatal(err)
	}
	if got, want := string(sb), "0\tA:ALA:1:CA:0\tA:ALA:2:CA:1\t-sb\n"; got != want {
		Te.Errorf("sb.txt: got %q, want %q", got, want)
	}
	//no file for types that were never observed
	if _, err := os.Stat(filepath.Join(outdir, "vdw.txt")); !os.IsNotExist(err) {
		Te.Error("found an output file for an interaction type never observed")
	}
	fmt.Println("hb.txt:", string(hb))
}

// Two runs over the same trajectory must produce byte-identical files,
// whatever the workers did, and the global frames of a detector firing on
// every frame must cover a contiguous 0-based range.
func TestTrajContactsDeterministic(Te *testing.T) {
	RegisterDetector(VanDerWaals, always(VanDerWaals))
	defer RegisterDetector(VanDerWaals, nil)
	src := &memSource{natoms: 2, total: 101, failAt: -1}
	p := DefaultParams()
	p.ITypes([]string{VanDerWaals})
	p.FragSize(10)
	p.Cpus(4)
	dir1 := filepath.Join(Te.TempDir(), "one")
	dir2 := filepath.Join(Te.TempDir(), "two")
	if err := TrajContacts(src, dir1, p); err != nil {
		Te.Fatal(err)
	}
	if err := TrajContacts(src, dir2, p); err != nil {
		Te.Fatal(err)
	}
	one, err := os.ReadFile(filepath.Join(dir1, "vdw.txt"))
	if err != nil {
		Te.Fatal(err)
	}
	two, err := os.ReadFile(filepath.Join(dir2, "vdw.txt"))
	if err != nil {
		Te.Fatal(err)
	}
	if !bytes.Equal(one, two) {
		Te.Error("two identical runs produced different output")
	}
	//10 full fragments of 9 usable frames each, plus a final 1-frame
	//fragment with no usable frames: global frames 0 to 89, no gaps.
	lines := bytes.Split(bytes.TrimSuffix(one, []byte("\n")), []byte("\n"))
	if len(lines) != 90 {
		Te.Fatalf("expected 90 contacts, got %d", len(lines))
	}
	for i, l := range lines {
		if want := fmt.Sprintf("%d\t", i); !bytes.HasPrefix(l, []byte(want)) {
			Te.Fatalf("line %d starts with %q, want global frame %d", i, l, i)
		}
	}
}

// A failing fragment aborts the whole run before any output exists.
func TestTrajContactsFailure(Te *testing.T) {
	RegisterDetector(HBond, always(HBond))
	defer RegisterDetector(HBond, nil)
	src := &memSource{natoms: 2, total: 100, failAt: 42}
	p := DefaultParams()
	p.ITypes([]string{HBond})
	p.FragSize(10)
	outdir := filepath.Join(Te.TempDir(), "none")
	err := TrajContacts(src, outdir, p)
	if err == nil {
		Te.Fatal("expected the run to fail")
	}
	if _, err2 := os.Stat(outdir); !os.IsNotExist(err2) {
		Te.Error("output directory created despite the failure")
	}
	fmt.Println("failed as expected:", err)
}

// A detector error aborts the run just like a load error does.
func TestTrajContactsDetectorFailure(Te *testing.T) {
	RegisterDetector(PiStacking, func(w *Window, frame int, labels map[int]string, p *Params) ([]*Contact, error) {
		return nil, CError{"bad geometry", []string{"test detector"}}
	})
	defer RegisterDetector(PiStacking, nil)
	src := &memSource{natoms: 2, total: 30, failAt: -1}
	p := DefaultParams()
	p.ITypes([]string{PiStacking})
	p.FragSize(10)
	outdir := filepath.Join(Te.TempDir(), "none")
	if err := TrajContacts(src, outdir, p); err == nil {
		Te.Fatal("expected the run to fail")
	}
	if _, err := os.Stat(outdir); !os.IsNotExist(err) {
		Te.Error("output directory created despite the failure")
	}
}

// Requesting an unknown code, or a known one with no registered detector,
// is quietly a no-op: the run succeeds and just finds nothing.
func TestTrajContactsNoDetectors(Te *testing.T) {
	src := &memSource{natoms: 2, total: 50, failAt: -1}
	p := DefaultParams()
	p.ITypes([]string{"-nothere", TStacking})
	p.FragSize(10)
	outdir := filepath.Join(Te.TempDir(), "empty")
	if err := TrajContacts(src, outdir, p); err != nil {
		Te.Fatal(err)
	}
	entries, err := os.ReadDir(outdir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 0 {
		Te.Error("expected an empty output directory, got", entries)
	}
}
