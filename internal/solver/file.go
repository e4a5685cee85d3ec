package solver

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// Table files are the raw concatenation of the given tables with no
// header; krof.dat is edges-A, edges-B, corners, 173,335,680 bytes. A
// path ending in .snappy streams the same bytes through a snappy
// framer, trading the byte-exact layout for roughly a third of the
// disk.

func compressed(path string) bool {
	return strings.HasSuffix(path, ".snappy")
}

// loadTables fills each table in order from path. A missing file or a
// short read surfaces as ErrTableLoad.
func loadTables(path string, tables ...[]byte) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(ErrTableLoad, "open %s: %v", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed(path) {
		r = snappy.NewReader(f)
	}
	for _, table := range tables {
		if _, err := io.ReadFull(r, table); err != nil {
			return errors.Wrapf(ErrTableLoad, "read %s: %v", path, err)
		}
	}
	return nil
}

// saveTables writes the tables to path in order.
func saveTables(path string, tables ...[]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrTableSave, "create %s: %v", path, err)
	}

	var w io.Writer = f
	var sw *snappy.Writer
	if compressed(path) {
		sw = snappy.NewBufferedWriter(f)
		w = sw
	}
	for _, table := range tables {
		if _, err := w.Write(table); err != nil {
			f.Close()
			return errors.Wrapf(ErrTableSave, "write %s: %v", path, err)
		}
	}
	if sw != nil {
		if err := sw.Close(); err != nil {
			f.Close()
			return errors.Wrapf(ErrTableSave, "flush %s: %v", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(ErrTableSave, "close %s: %v", path, err)
	}
	return nil
}

// TableDigest returns the BLAKE2b-256 digest of a table file as a hex
// string. The digest is over the file bytes as stored, so compressed
// and raw copies of the same tables hash differently.
func TableDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(ErrTableLoad, "open %s: %v", path, err)
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(ErrTableLoad, "read %s: %v", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
