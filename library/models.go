package library

// Book is a single catalog entry. IssuedTo holds the borrower's user id
// while the book is out on loan; nil means the book is on the shelf.
type Book struct {
	BookID   string  `json:"book_id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	IssuedTo *string `json:"issued_to"`
}

// User is a registered borrower. BorrowedBooks lists the ids of the books
// currently on loan to them, in issue order.
type User struct {
	UserID        string   `json:"user_id"`
	Name          string   `json:"name"`
	BorrowedBooks []string `json:"borrowed_books"`
}

// BookView is a Book shaped for display, with the loan status resolved
// against the user collection at query time.
type BookView struct {
	BookID string
	Title  string
	Author string
	Status string
}

// UserView is a User shaped for display.
type UserView struct {
	UserID   string
	Name     string
	Borrowed []string
}
