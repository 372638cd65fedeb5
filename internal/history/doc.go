// Package history keeps a record of finished download runs in SQLite.
package history
