// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connecting to and bootstrapping the database.

# Dialects

Two dialects are supported:

  - SQLite (default): an embedded database file, via modernc.org/sqlite
  - Postgres: a server database, via github.com/lib/pq

Queries are written with ? placeholders and passed through Dialect.Rebind,
which rewrites them to $1, $2, ... for Postgres.

# Bootstrap

Open returns a ready handle and initializes the database on first run:

	conn, err := db.Open(ctx, db.Options{
		Dialect:  db.SQLite,
		DSN:      "database/app.db",
		SeedPath: "database/seed.sql",
	})

For SQLite, first run means the file does not exist yet. For Postgres it
means the event table is missing. Initialization applies the schema (the
SchemaPath script when present, otherwise the built-in schema) and then the
optional seed script. An existing database is opened as-is.

If initialization fails, the new SQLite file is removed so the next start
begins from scratch.

SQLite connections enable foreign keys and a busy timeout, and the pool is
limited to a single connection.

# Tables

	sport 1──* event
	venue 1──* event
	event 1──* event_participant
	team (standalone)

event_participant rows cascade when their event is deleted.
*/
package db
