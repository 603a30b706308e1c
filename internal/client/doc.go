// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the book catalog.
//
// [App] parses a subcommand line such as "authors create -name Tolkien
// -born 1892-01-03", calls the server through an [adapter.ServerAdapter]
// and prints the result as indented JSON.
package client
