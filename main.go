package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"library-catalog/library"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore loads the config and opens the catalog it points at.
func openStore() (*library.Store, *zap.Logger, error) {
	cfg, err := library.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := library.NewLogger(cfg.Log.Level)
	store, err := library.Open(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return store, log, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Track books, borrowers and loans in a flat-file catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore()
			if err != nil {
				return err
			}
			defer log.Sync()
			runShell(store)
			return nil
		},
	}

	root.AddCommand(
		newAddBookCmd(),
		newDeleteBookCmd(),
		newAddUserCmd(),
		newIssueCmd(),
		newReturnCmd(),
		newListBooksCmd(),
		newListUsersCmd(),
	)
	return root
}

func newAddBookCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "add-book <title> <author>",
		Short: "Add a book to the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore()
			if err != nil {
				return err
			}
			defer log.Sync()
			if id == "" {
				id = uuid.NewString()
			}
			if err := store.AddBook(id, args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Added book %s: '%s' by %s\n", id, args[0], args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "book id (generated when omitted)")
	return cmd
}

func newDeleteBookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-book <book-id>",
		Short: "Delete a book from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore()
			if err != nil {
				return err
			}
			defer log.Sync()
			if err := store.DeleteBook(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted book %s\n", args[0])
			return nil
		},
	}
}

func newAddUserCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "add-user <name>",
		Short: "Register a borrower",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore()
			if err != nil {
				return err
			}
			defer log.Sync()
			if id == "" {
				id = uuid.NewString()
			}
			if err := store.AddUser(id, args[0]); err != nil {
				return err
			}
			fmt.Printf("Added user %s: %s\n", id, args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "user id (generated when omitted)")
	return cmd
}

func newIssueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issue <book-id> <user-id>",
		Short: "Issue a book to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore()
			if err != nil {
				return err
			}
			defer log.Sync()
			if err := store.IssueBook(args[0], args[1]); err != nil {
				return err
			}
			book, _ := store.GetBook(args[0])
			user, _ := store.GetUser(args[1])
			fmt.Printf("Book '%s' issued to %s\n", book.Title, user.Name)
			return nil
		},
	}
}

func newReturnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "return <book-id> <user-id>",
		Short: "Return a book from a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore()
			if err != nil {
				return err
			}
			defer log.Sync()
			if err := store.ReturnBook(args[0], args[1]); err != nil {
				return err
			}
			book, _ := store.GetBook(args[0])
			fmt.Printf("Book '%s' returned\n", book.Title)
			return nil
		},
	}
}

func newListBooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-books",
		Short: "List all books with loan status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore()
			if err != nil {
				return err
			}
			defer log.Sync()
			printBooks(store.ListBooks())
			return nil
		},
	}
}

func newListUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all users with their loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, err := openStore()
			if err != nil {
				return err
			}
			defer log.Sync()
			printUsers(store.ListUsers())
			return nil
		},
	}
}
