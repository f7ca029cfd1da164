package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"library-catalog/library"
)

// runShell drives the interactive session. Every store error is printed
// and the loop continues; only "exit" or EOF ends the session.
func runShell(store *library.Store) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the Library Catalog!")
	fmt.Println("Available commands:")
	fmt.Println("  Books: add book, delete book, list books")
	fmt.Println("  Users: add user, list users")
	fmt.Println("  Circulation: issue, return")
	fmt.Println("  System: exit")

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add book":
			handleAddBook(scanner, store)
		case "delete book":
			handleDeleteBook(scanner, store)
		case "add user":
			handleAddUser(scanner, store)
		case "issue":
			handleIssue(scanner, store)
		case "return":
			handleReturn(scanner, store)
		case "list books":
			printBooks(store.ListBooks())
		case "list users":
			printUsers(store.ListUsers())
		case "exit":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

func prompt(sc *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func handleAddBook(sc *bufio.Scanner, store *library.Store) {
	id, ok := prompt(sc, "Book ID (blank to generate): ")
	if !ok {
		return
	}
	if id == "" {
		id = uuid.NewString()
	}
	title, ok := prompt(sc, "Title: ")
	if !ok {
		return
	}
	author, ok := prompt(sc, "Author: ")
	if !ok {
		return
	}

	if err := store.AddBook(id, title, author); err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added book %s: '%s' by %s\n", id, title, author)
}

func handleDeleteBook(sc *bufio.Scanner, store *library.Store) {
	id, ok := prompt(sc, "Book ID: ")
	if !ok {
		return
	}
	if err := store.DeleteBook(id); err != nil {
		fmt.Printf("Error deleting book: %v\n", err)
		return
	}
	fmt.Printf("Deleted book %s\n", id)
}

func handleAddUser(sc *bufio.Scanner, store *library.Store) {
	id, ok := prompt(sc, "User ID (blank to generate): ")
	if !ok {
		return
	}
	if id == "" {
		id = uuid.NewString()
	}
	name, ok := prompt(sc, "Name: ")
	if !ok {
		return
	}

	if err := store.AddUser(id, name); err != nil {
		fmt.Printf("Error adding user: %v\n", err)
		return
	}
	fmt.Printf("Added user %s: %s\n", id, name)
}

func handleIssue(sc *bufio.Scanner, store *library.Store) {
	bookID, ok := prompt(sc, "Book ID: ")
	if !ok {
		return
	}
	userID, ok := prompt(sc, "User ID: ")
	if !ok {
		return
	}

	if err := store.IssueBook(bookID, userID); err != nil {
		fmt.Printf("Error issuing book: %v\n", err)
		return
	}
	book, _ := store.GetBook(bookID)
	user, _ := store.GetUser(userID)
	fmt.Printf("Book '%s' issued to %s\n", book.Title, user.Name)
}

func handleReturn(sc *bufio.Scanner, store *library.Store) {
	bookID, ok := prompt(sc, "Book ID: ")
	if !ok {
		return
	}
	userID, ok := prompt(sc, "User ID: ")
	if !ok {
		return
	}

	if err := store.ReturnBook(bookID, userID); err != nil {
		fmt.Printf("Error returning book: %v\n", err)
		return
	}
	book, _ := store.GetBook(bookID)
	fmt.Printf("Book '%s' returned\n", book.Title)
}

func printBooks(books []library.BookView) {
	if len(books) == 0 {
		fmt.Println("No books in the catalog.")
		return
	}

	fmt.Printf("%-38s %-30s %-25s %s\n", "ID", "Title", "Author", "Status")
	fmt.Println(strings.Repeat("-", 120))
	for _, b := range books {
		fmt.Printf("%-38s %-30s %-25s %s\n",
			b.BookID,
			truncateString(b.Title, 30),
			truncateString(b.Author, 25),
			b.Status)
	}
}

func printUsers(users []library.UserView) {
	if len(users) == 0 {
		fmt.Println("No users registered.")
		return
	}

	fmt.Printf("%-38s %-30s %s\n", "ID", "Name", "Borrowed")
	fmt.Println(strings.Repeat("-", 100))
	for _, u := range users {
		borrowed := "None"
		if len(u.Borrowed) > 0 {
			borrowed = strings.Join(u.Borrowed, ", ")
		}
		fmt.Printf("%-38s %-30s %s\n", u.UserID, truncateString(u.Name, 30), borrowed)
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
