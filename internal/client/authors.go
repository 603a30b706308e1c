// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-book-catalog/models"
)

func (a *App) authors(ctx context.Context, args []string) error {
	return a.subcommand(ctx, "authors", args, map[string]command{
		"list":   a.listAuthors,
		"create": a.createAuthor,
		"update": a.updateAuthor,
		"delete": a.deleteAuthor,
	})
}

func (a *App) listAuthors(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("authors list"), args); err != nil {
		return err
	}

	authors, err := a.server.ListAuthors(ctx)
	if err != nil {
		return err
	}

	return a.printJSON(authors)
}

type authorFlags struct {
	name string
	bio  string
	born string
}

func (f *authorFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "author name")
	fs.StringVar(&f.bio, "bio", "", "author biography")
	fs.StringVar(&f.born, "born", "", "date of birth, YYYY-MM-DD")
}

func (a *App) createAuthor(ctx context.Context, args []string) error {
	var f authorFlags
	fs := a.newFlagSet("authors create")
	f.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	set := setFlags(fs)

	author := models.Author{Name: f.name}
	if set["bio"] {
		author.Biography = &f.bio
	}
	if set["born"] {
		born, err := parseDateFlag("born", f.born)
		if err != nil {
			return err
		}
		author.DateOfBirth = born
	}

	created, err := a.server.CreateAuthor(ctx, author)
	if err != nil {
		return err
	}

	return a.printJSON(created)
}

func (a *App) updateAuthor(ctx context.Context, args []string) error {
	var f authorFlags
	fs := a.newFlagSet("authors update")
	id := fs.Int64("id", 0, "author id")
	f.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}
	set := setFlags(fs)

	var patch models.AuthorPatch
	if set["name"] {
		patch.Name = &f.name
	}
	if set["bio"] {
		patch.Biography = &f.bio
	}
	if set["born"] {
		born, err := parseDateFlag("born", f.born)
		if err != nil {
			return err
		}
		patch.DateOfBirth = born
	}

	updated, err := a.server.UpdateAuthor(ctx, *id, patch)
	if err != nil {
		return err
	}

	return a.printJSON(updated)
}

func (a *App) deleteAuthor(ctx context.Context, args []string) error {
	fs := a.newFlagSet("authors delete")
	id := fs.Int64("id", 0, "author id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireID(*id); err != nil {
		return err
	}

	if err := a.server.DeleteAuthor(ctx, *id); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "author %d deleted\n", *id)
	return err
}
