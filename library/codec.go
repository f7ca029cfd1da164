package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// snapshot is the on-disk document: two flat record lists. An issued_to of
// null marks an available book.
type snapshot struct {
	Books []*Book `json:"books"`
	Users []*User `json:"users"`
}

// encodeSnapshot flattens the collections into an indented document with
// records sorted by id, so saving the same state twice yields identical
// bytes.
func encodeSnapshot(books map[string]*Book, users map[string]*User) ([]byte, error) {
	snap := snapshot{
		Books: make([]*Book, 0, len(books)),
		Users: make([]*User, 0, len(users)),
	}
	for _, b := range books {
		snap.Books = append(snap.Books, b)
	}
	for _, u := range users {
		snap.Users = append(snap.Users, u)
	}
	sort.Slice(snap.Books, func(i, j int) bool { return snap.Books[i].BookID < snap.Books[j].BookID })
	sort.Slice(snap.Users, func(i, j int) bool { return snap.Users[i].UserID < snap.Users[j].UserID })

	return json.MarshalIndent(snap, "", "    ")
}

func decodeSnapshot(data []byte) (map[string]*Book, map[string]*User, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	books := make(map[string]*Book, len(snap.Books))
	for _, b := range snap.Books {
		if b == nil {
			continue
		}
		books[b.BookID] = b
	}
	users := make(map[string]*User, len(snap.Users))
	for _, u := range snap.Users {
		if u == nil {
			continue
		}
		users[u.UserID] = u
	}
	return books, users, nil
}

// writeSnapshot writes data to path through a temp file in the same
// directory followed by a rename. A load never observes a half-written
// catalog.
func writeSnapshot(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publish snapshot: %w", err)
	}
	return nil
}
