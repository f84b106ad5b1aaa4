package contact

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//writeContacts persists the fully assembled contact list, one file per
//observed interaction type, inside outdir (created if missing). Each line
//is frame, atom1, atom2 and type, tab-separated, no header. Partitions are
//first written to temporary files and renamed into place only once all of
//them succeeded, so a failed run does not leave a half-written directory.
func writeContacts(outdir string, contacts []*Contact, itypes map[string]bool) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return errDecorate(err, "writeContacts")
	}
	files := make(map[string]*os.File, len(itypes))
	writers := make(map[string]*bufio.Writer, len(itypes))
	cleanup := func() {
		for _, f := range files {
			f.Close()
			os.Remove(f.Name())
		}
	}
	for itype := range itypes {
		f, err := os.Create(filepath.Join(outdir, FileName(itype)+".tmp"))
		if err != nil {
			cleanup()
			return errDecorate(err, "writeContacts")
		}
		files[itype] = f
		writers[itype] = bufio.NewWriter(f)
	}
	for _, c := range contacts {
		if _, err := fmt.Fprintf(writers[c.IType], "%s\n", c.String()); err != nil {
			cleanup()
			return errDecorate(err, "writeContacts")
		}
	}
	for itype, w := range writers {
		if err := w.Flush(); err != nil {
			cleanup()
			return errDecorate(err, "writeContacts")
		}
		if err := files[itype].Close(); err != nil {
			cleanup()
			return errDecorate(err, "writeContacts")
		}
	}
	//Everything is on disk, now the renames. These are the only
	//destructive steps and they come last.
	for _, f := range files {
		if err := os.Rename(f.Name(), strings.TrimSuffix(f.Name(), ".tmp")); err != nil {
			cleanup()
			return errDecorate(err, "writeContacts")
		}
	}
	return nil
}
