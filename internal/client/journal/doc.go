// Package journal keeps a local record of finished upload attempts.
//
// # Overview
//
// Every settled upload session can be written to a small SQLite database so
// the operator can look back at what was sent, where, and how it ended. The
// journal is informational only: it never drives retries.
//
// Key Types
//
//   - type Repository       : contract used by the uploader and the CLI
//   - type SQLiteRepository : SQLite implementation over DBTX (*sql.DB or *sql.Tx)
//
// Typical Usage
//
//	db, _ := journal.InitDatabase(ctx, "uploads.db")
//	repo := journal.NewSQLiteRepository(db)
//	uploader.WithRecorder(repo)
//	last, _ := repo.Recent(ctx, 20)
package journal
