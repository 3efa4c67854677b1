package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countApplied(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("count applied: %v", err)
	}
	return n
}

func TestMigrateRoundTripKeepsBackendUsable(t *testing.T) {
	db := openTestDB(t)

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if n := countApplied(t, db); n != 0 {
		t.Fatalf("expected no applied versions after down, got %d", n)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	backend, err := NewSQLiteBackend(db)
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}
	if err := backend.Write(t.Context(), StateKey, []byte(`{"notes":"roundtrip"}`)); err != nil {
		t.Fatalf("write after roundtrip failed: %v", err)
	}
	got, err := backend.Read(t.Context(), StateKey)
	if err != nil {
		t.Fatalf("read after roundtrip failed: %v", err)
	}
	if string(got) != `{"notes":"roundtrip"}` {
		t.Fatalf("unexpected value after roundtrip: %q", got)
	}
}

func TestMigrateUpRecordsEachVersionOnce(t *testing.T) {
	db := openTestDB(t)
	versions, err := migrationVersions()
	if err != nil {
		t.Fatalf("list versions: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := MigrateUp(db); err != nil {
			t.Fatalf("migrate up #%d: %v", i+1, err)
		}
	}
	if n := countApplied(t, db); n != len(versions) {
		t.Fatalf("expected %d applied versions, got %d", len(versions), n)
	}
}

func TestMigrateUpPreservesData(t *testing.T) {
	db := openTestDB(t)
	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	backend, err := NewSQLiteBackend(db)
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}
	if err := backend.Write(t.Context(), StateKey, []byte(`{"notes":"keep"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("re-run migrate up: %v", err)
	}
	if _, err := backend.Read(t.Context(), StateKey); err != nil {
		t.Fatalf("data lost on re-run: %v", err)
	}
}
