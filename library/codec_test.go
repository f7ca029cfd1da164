package library

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleCollections() (map[string]*Book, map[string]*User) {
	alice := "U1"
	books := map[string]*Book{
		"B1": {BookID: "B1", Title: "Dune", Author: "Herbert", IssuedTo: &alice},
		"B2": {BookID: "B2", Title: "Emma", Author: "Austen"},
	}
	users := map[string]*User{
		"U1": {UserID: "U1", Name: "Alice", BorrowedBooks: []string{"B1"}},
		"U2": {UserID: "U2", Name: "Bob"},
	}
	return books, users
}

func TestSnapshotRoundTrip(t *testing.T) {
	books, users := sampleCollections()

	data, err := encodeSnapshot(books, users)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	gotBooks, gotUsers, err := decodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(books, gotBooks) {
		t.Fatalf("books differ after round trip")
	}
	if !reflect.DeepEqual(users, gotUsers) {
		t.Fatalf("users differ after round trip")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	books, users := sampleCollections()

	first, err := encodeSnapshot(books, users)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := encodeSnapshot(books, users)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("same state encoded to different bytes")
	}
	if bytes.Index(first, []byte("B1")) > bytes.Index(first, []byte("B2")) {
		t.Fatalf("book records not sorted by id")
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := decodeSnapshot([]byte("{not json"))
	if !errors.Is(err, ErrCorruptData) {
		t.Fatalf("want ErrCorruptData, got %v", err)
	}
}

func TestWriteSnapshotAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	if err := writeSnapshot(path, []byte(`{"books":[],"users":[]}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"books":[],"users":[]}` {
		t.Fatalf("unexpected content: %s", data)
	}

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file still present")
	}
}

func TestWriteSnapshotCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.json")
	if err := writeSnapshot(path, []byte("{}")); err != nil {
		t.Fatalf("write with missing dir: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}
