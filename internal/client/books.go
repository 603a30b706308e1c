// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-book-catalog/models"
)

func (a *App) books(ctx context.Context, args []string) error {
	return a.subcommand(ctx, "books", args, map[string]command{
		"list":   a.listBooks,
		"create": a.createBook,
		"update": a.updateBook,
		"delete": a.deleteBook,
	})
}

func (a *App) listBooks(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("books list"), args); err != nil {
		return err
	}

	books, err := a.server.ListBooks(ctx)
	if err != nil {
		return err
	}

	return a.printJSON(books)
}

type bookFlags struct {
	title     string
	isbn      string
	authorID  int64
	published string
}

func (f *bookFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "book title")
	fs.StringVar(&f.isbn, "isbn", "", "book ISBN")
	fs.Int64Var(&f.authorID, "author", 0, "author id")
	fs.StringVar(&f.published, "published", "", "publication date, YYYY-MM-DD")
}

func (a *App) createBook(ctx context.Context, args []string) error {
	var f bookFlags
	fs := a.newFlagSet("books create")
	f.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	set := setFlags(fs)

	book := models.Book{Title: f.title, ISBN: f.isbn}
	if set["author"] {
		book.AuthorID = &f.authorID
	}
	if set["published"] {
		published, err := parseDateFlag("published", f.published)
		if err != nil {
			return err
		}
		book.PublishedDate = published
	}

	created, err := a.server.CreateBook(ctx, book)
	if err != nil {
		return err
	}

	return a.printJSON(created)
}

func (a *App) updateBook(ctx context.Context, args []string) error {
	var f bookFlags
	fs := a.newFlagSet("books update")
	id := fs.Int64("id", 0, "book id")
	f.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}
	set := setFlags(fs)

	var patch models.BookPatch
	if set["title"] {
		patch.Title = &f.title
	}
	if set["isbn"] {
		patch.ISBN = &f.isbn
	}
	if set["author"] {
		patch.AuthorID = &f.authorID
	}
	if set["published"] {
		published, err := parseDateFlag("published", f.published)
		if err != nil {
			return err
		}
		patch.PublishedDate = published
	}

	updated, err := a.server.UpdateBook(ctx, *id, patch)
	if err != nil {
		return err
	}

	return a.printJSON(updated)
}

func (a *App) deleteBook(ctx context.Context, args []string) error {
	fs := a.newFlagSet("books delete")
	id := fs.Int64("id", 0, "book id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}

	if err := a.server.DeleteBook(ctx, *id); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "book %d deleted\n", *id)
	return err
}
