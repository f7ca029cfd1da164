package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"library-catalog/library"
)

// Seeds a fresh catalog file with sample books and users, issues a few
// loans, and prints a summary. Any existing catalog file is replaced.
func main() {
	cfg := library.DefaultConfig()

	fmt.Printf("Removing existing catalog file %s...\n", cfg.DataFile)
	if err := os.Remove(cfg.DataFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", cfg.DataFile, err)
		os.Exit(1)
	}

	log := library.NewLogger("warn")
	defer log.Sync()

	store, err := library.Open(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}

	books := [][2]string{
		{"1984", "George Orwell"},
		{"Animal Farm", "George Orwell"},
		{"Dune", "Frank Herbert"},
		{"The Fellowship of the Ring", "J.R.R. Tolkien"},
		{"The Two Towers", "J.R.R. Tolkien"},
		{"The Return of the King", "J.R.R. Tolkien"},
		{"Romeo and Juliet", "William Shakespeare"},
		{"The Art of War", "Sun Tzu"},
	}
	users := []string{"Alice", "Bob", "Charlie"}

	var bookIDs, userIDs []string

	for _, b := range books {
		id := uuid.NewString()
		if err := store.AddBook(id, b[0], b[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding book %q: %v\n", b[0], err)
			os.Exit(1)
		}
		bookIDs = append(bookIDs, id)
		fmt.Printf("Added: %s by %s\n", b[0], b[1])
	}

	for _, name := range users {
		id := uuid.NewString()
		if err := store.AddUser(id, name); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding user %q: %v\n", name, err)
			os.Exit(1)
		}
		userIDs = append(userIDs, id)
		fmt.Printf("Added user: %s\n", name)
	}

	// A couple of loans so the seeded catalog shows both statuses.
	if err := store.IssueBook(bookIDs[0], userIDs[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error issuing book: %v\n", err)
		os.Exit(1)
	}
	if err := store.IssueBook(bookIDs[2], userIDs[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error issuing book: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSeed complete: %d books, %d users, 2 loans.\n\n", len(bookIDs), len(userIDs))

	fmt.Printf("%-38s %-30s %s\n", "ID", "Title", "Status")
	fmt.Println(strings.Repeat("-", 90))
	for _, v := range store.ListBooks() {
		fmt.Printf("%-38s %-30s %s\n", v.BookID, v.Title, v.Status)
	}
}
