package library

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Store owns the book and user collections and keeps the data file in step
// with every mutation: each mutating operation persists a full snapshot
// before returning, and rolls the in-memory change back if the save fails.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Store struct {
	path         string
	deleteIssued string

	books map[string]*Book
	users map[string]*User

	log *zap.Logger
}

// Open loads the catalog at cfg.DataFile. A missing file starts a fresh
// catalog and writes it out immediately, so a data file exists after first
// use. An unparsable file is handled per cfg.OnCorrupt: reset leaves the
// bad file on disk and runs with empty collections, fail returns the
// parse error.
func Open(cfg *Config, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		path:         cfg.DataFile,
		deleteIssued: cfg.DeleteIssued,
		books:        map[string]*Book{},
		users:        map[string]*User{},
		log:          log,
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if err := s.save(); err != nil {
			return nil, err
		}
		log.Info("created new catalog", zap.String("path", s.path))
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	books, users, decErr := decodeSnapshot(data)
	if decErr != nil {
		if cfg.OnCorrupt == OnCorruptFail {
			return nil, decErr
		}
		log.Warn("catalog file is corrupt, starting with empty collections",
			zap.String("path", s.path), zap.Error(decErr))
		return s, nil
	}

	s.books, s.users = books, users
	log.Debug("catalog loaded",
		zap.String("path", s.path),
		zap.Int("books", len(s.books)),
		zap.Int("users", len(s.users)))
	return s, nil
}

// save writes the full current state to the data file.
func (s *Store) save() error {
	data, err := encodeSnapshot(s.books, s.users)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := writeSnapshot(s.path, data); err != nil {
		s.log.Error("catalog save failed", zap.String("path", s.path), zap.Error(err))
		return err
	}
	return nil
}

func validID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidID
	}
	return nil
}

// AddBook inserts a new available book.
func (s *Store) AddBook(bookID, title, author string) error {
	if err := validID(bookID); err != nil {
		return err
	}
	if _, ok := s.books[bookID]; ok {
		return fmt.Errorf("book %q: %w", bookID, ErrDuplicateID)
	}

	s.books[bookID] = &Book{BookID: bookID, Title: title, Author: author}
	if err := s.save(); err != nil {
		delete(s.books, bookID)
		return err
	}
	return nil
}

// DeleteBook removes a book. When the book is out on loan the configured
// policy decides: forbid rejects the delete, scrub also removes the id
// from the borrower's loan list so no dangling reference survives.
func (s *Store) DeleteBook(bookID string) error {
	book, ok := s.books[bookID]
	if !ok {
		return fmt.Errorf("book %q: %w", bookID, ErrNotFound)
	}
	if book.IssuedTo != nil && s.deleteIssued != DeleteIssuedScrub {
		return fmt.Errorf("book %q: %w", bookID, ErrBookIssued)
	}

	delete(s.books, bookID)
	var holder *User
	loanIdx := -1
	if book.IssuedTo != nil {
		if u, ok := s.users[*book.IssuedTo]; ok {
			holder = u
			loanIdx = removeLoan(u, bookID)
		}
	}

	if err := s.save(); err != nil {
		s.books[bookID] = book
		if holder != nil && loanIdx >= 0 {
			restoreLoan(holder, bookID, loanIdx)
		}
		return err
	}
	return nil
}

// AddUser registers a new borrower with no loans.
func (s *Store) AddUser(userID, name string) error {
	if err := validID(userID); err != nil {
		return err
	}
	if _, ok := s.users[userID]; ok {
		return fmt.Errorf("user %q: %w", userID, ErrDuplicateID)
	}

	s.users[userID] = &User{UserID: userID, Name: name}
	if err := s.save(); err != nil {
		delete(s.users, userID)
		return err
	}
	return nil
}

// IssueBook lends a book to a user. The book side and the user side are
// updated together; a failed save undoes both.
func (s *Store) IssueBook(bookID, userID string) error {
	book, ok := s.books[bookID]
	if !ok {
		return fmt.Errorf("book %q: %w", bookID, ErrNotFound)
	}
	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	if book.IssuedTo != nil {
		return fmt.Errorf("book %q: %w", bookID, ErrAlreadyIssued)
	}

	book.IssuedTo = &userID
	user.BorrowedBooks = append(user.BorrowedBooks, bookID)

	if err := s.save(); err != nil {
		book.IssuedTo = nil
		user.BorrowedBooks = user.BorrowedBooks[:len(user.BorrowedBooks)-1]
		return err
	}
	return nil
}

// ReturnBook clears the loan. The book must currently be issued to exactly
// the given user.
func (s *Store) ReturnBook(bookID, userID string) error {
	book, ok := s.books[bookID]
	if !ok {
		return fmt.Errorf("book %q: %w", bookID, ErrNotFound)
	}
	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	if book.IssuedTo == nil || *book.IssuedTo != userID {
		return fmt.Errorf("book %q: %w", bookID, ErrNotIssuedToUser)
	}

	book.IssuedTo = nil
	loanIdx := removeLoan(user, bookID)

	if err := s.save(); err != nil {
		book.IssuedTo = &userID
		restoreLoan(user, bookID, loanIdx)
		return err
	}
	return nil
}

// GetBook returns a copy of the book.
func (s *Store) GetBook(bookID string) (Book, error) {
	book, ok := s.books[bookID]
	if !ok {
		return Book{}, fmt.Errorf("book %q: %w", bookID, ErrNotFound)
	}
	out := *book
	if book.IssuedTo != nil {
		issuedTo := *book.IssuedTo
		out.IssuedTo = &issuedTo
	}
	return out, nil
}

// GetUser returns a copy of the user.
func (s *Store) GetUser(userID string) (User, error) {
	user, ok := s.users[userID]
	if !ok {
		return User{}, fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	out := *user
	out.BorrowedBooks = append([]string(nil), user.BorrowedBooks...)
	return out, nil
}

// ListBooks returns all books sorted by id, each with a display status:
// "Available", or "Issued to <name>". A dangling borrower reference falls
// back to the raw user id.
func (s *Store) ListBooks() []BookView {
	out := make([]BookView, 0, len(s.books))
	for _, b := range s.books {
		status := "Available"
		if b.IssuedTo != nil {
			who := *b.IssuedTo
			if u, ok := s.users[who]; ok {
				who = u.Name
			}
			status = "Issued to " + who
		}
		out = append(out, BookView{BookID: b.BookID, Title: b.Title, Author: b.Author, Status: status})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookID < out[j].BookID })
	return out
}

// ListUsers returns all users sorted by id with their current loan ids.
func (s *Store) ListUsers() []UserView {
	out := make([]UserView, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, UserView{
			UserID:   u.UserID,
			Name:     u.Name,
			Borrowed: append([]string(nil), u.BorrowedBooks...),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// removeLoan drops the first matching loan entry and reports its former
// index, or -1 when absent.
func removeLoan(u *User, bookID string) int {
	for i, id := range u.BorrowedBooks {
		if id == bookID {
			u.BorrowedBooks = append(u.BorrowedBooks[:i], u.BorrowedBooks[i+1:]...)
			return i
		}
	}
	return -1
}

// restoreLoan reinserts a loan entry at its former index.
func restoreLoan(u *User, bookID string, i int) {
	if i < 0 || i > len(u.BorrowedBooks) {
		return
	}
	u.BorrowedBooks = append(u.BorrowedBooks[:i], append([]string{bookID}, u.BorrowedBooks[i:]...)...)
}
