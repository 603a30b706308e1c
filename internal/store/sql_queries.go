// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/mattn/go-sqlite3"
)

var (
	userColumns   = []string{"id", "username", "password_hash", "created_at", "updated_at"}
	authorColumns = []string{"id", "name", "biography", "date_of_birth", "created_at", "updated_at"}
	bookColumns   = []string{"id", "title", "isbn", "published_date", "author_id", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "password_hash", "created_at", "updated_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertAuthorQuery(b sq.StatementBuilderType, author models.Author) (string, []any, error) {
	return b.Insert(author.TableName()).
		Columns("name", "biography", "date_of_birth", "created_at", "updated_at").
		Values(author.Name, nullableString(author.Biography), nullableDate(author.DateOfBirth), author.CreatedAt, author.UpdatedAt).
		Suffix(returning(authorColumns)).
		ToSql()
}

func buildSelectAuthorsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(authorColumns...).
		From(models.Author{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildSelectAuthorQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(authorColumns...).
		From(models.Author{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateAuthorQuery sets only the fields present in patch.
func buildUpdateAuthorQuery(b sq.StatementBuilderType, id int64, patch models.AuthorPatch, updatedAt time.Time) (string, []any, error) {
	q := b.Update(models.Author{}.TableName())

	if patch.Name != nil {
		q = q.Set("name", *patch.Name)
	}
	if patch.Biography != nil {
		q = q.Set("biography", *patch.Biography)
	}
	if patch.DateOfBirth != nil {
		q = q.Set("date_of_birth", patch.DateOfBirth.String())
	}

	return q.Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix(returning(authorColumns)).
		ToSql()
}

func buildDeleteAuthorQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Author{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertBookQuery(b sq.StatementBuilderType, book models.Book) (string, []any, error) {
	return b.Insert(book.TableName()).
		Columns("title", "isbn", "published_date", "author_id", "created_at", "updated_at").
		Values(book.Title, book.ISBN, nullableDate(book.PublishedDate), nullableInt64(book.AuthorID), book.CreatedAt, book.UpdatedAt).
		Suffix(returning(bookColumns)).
		ToSql()
}

func buildSelectBooksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(bookColumns...).
		From(models.Book{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildSelectBookQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(bookColumns...).
		From(models.Book{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateBookQuery sets only the fields present in patch.
func buildUpdateBookQuery(b sq.StatementBuilderType, id int64, patch models.BookPatch, updatedAt time.Time) (string, []any, error) {
	q := b.Update(models.Book{}.TableName())

	if patch.Title != nil {
		q = q.Set("title", *patch.Title)
	}
	if patch.ISBN != nil {
		q = q.Set("isbn", *patch.ISBN)
	}
	if patch.PublishedDate != nil {
		q = q.Set("published_date", patch.PublishedDate.String())
	}
	if patch.AuthorID != nil {
		q = q.Set("author_id", *patch.AuthorID)
	}

	return q.Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookColumns)).
		ToSql()
}

func buildDeleteBookQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Book{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// nullableString, nullableDate and nullableInt64 turn optional model fields
// into driver values, with nil meaning SQL NULL.

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableDate(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func nullableInt64(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, timestamp{&u.CreatedAt}, timestamp{&u.UpdatedAt})
	return u, err
}

func scanAuthor(row rowScanner) (models.Author, error) {
	var a models.Author
	err := row.Scan(&a.ID, &a.Name, &a.Biography, &a.DateOfBirth, timestamp{&a.CreatedAt}, timestamp{&a.UpdatedAt})
	return a, err
}

func scanBook(row rowScanner) (models.Book, error) {
	var b models.Book
	err := row.Scan(&b.ID, &b.Title, &b.ISBN, &b.PublishedDate, &b.AuthorID, timestamp{&b.CreatedAt}, timestamp{&b.UpdatedAt})
	return b, err
}

// timestamp scans a time column. SQLite hands columns of a RETURNING
// clause back as text, so string forms are parsed with the driver's layouts.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", s)
}
