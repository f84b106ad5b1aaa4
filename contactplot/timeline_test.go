package contactplot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	contact "github.com/mdnets/gontact"
)

func TestTimeline(Te *testing.T) {
	contacts := []*contact.Contact{
		{Frame: 0, Atom1: "A:ASP:1:OD1:1", Atom2: "B:LYS:7:NZ:2", IType: contact.SaltBridge},
		{Frame: 1, Atom1: "A:ASP:1:OD1:1", Atom2: "B:LYS:7:NZ:2", IType: contact.SaltBridge},
		{Frame: 1, Atom1: "A:SER:3:OG:5", Atom2: "B:GLU:9:OE1:8", IType: contact.HBond},
		{Frame: 3, Atom1: "A:SER:3:OG:5", Atom2: "B:GLU:9:OE1:8", IType: contact.HBond},
		{Frame: 3, Atom1: "A:ASP:1:OD1:1", Atom2: "B:LYS:7:NZ:2", IType: contact.SaltBridge},
	}
	plotname := filepath.Join(Te.TempDir(), "timeline")
	if err := Timeline(contacts, "contacts over time", plotname); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(plotname + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("the plot file is empty")
	}
	fmt.Println("wrote", info.Name(), "of", info.Size(), "bytes")
}
