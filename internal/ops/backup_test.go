package ops

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBackupRestore_RoundTrip(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("mkdir data dir: %v", err)
	}

	tasksJSON := `{"tasks":[{"id":1,"title":"Laundry","completed":false}]}`
	if err := os.WriteFile(filepath.Join(dataDir, "tasks.json"), []byte(tasksJSON), 0o644); err != nil {
		t.Fatalf("write tasks.json: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte("reminder_minutes: 15\n"), 0o644); err != nil {
		t.Fatalf("write config.yaml: %v", err)
	}

	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	if err := BackupDataDir(dataDir, archive); err != nil {
		t.Fatalf("backup failed: %v", err)
	}
	if _, err := os.Stat(archive); err != nil {
		t.Fatalf("archive missing: %v", err)
	}

	restoreDir := filepath.Join(t.TempDir(), "restore")
	if err := RestoreDataDir(archive, restoreDir); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(restoreDir, "tasks.json"))
	if err != nil {
		t.Fatalf("read restored tasks.json: %v", err)
	}
	if string(got) != tasksJSON {
		t.Fatalf("restored tasks.json mismatch:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(restoreDir, "config.yaml")); err != nil {
		t.Fatalf("restored config.yaml missing: %v", err)
	}
}

func TestBackup_SkipsNestedBackups(t *testing.T) {
	dataDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dataDir, "tasks.json"), []byte(`{"tasks":[]}`), 0o644); err != nil {
		t.Fatalf("write tasks.json: %v", err)
	}

	// An archive inside the data dir's backups folder must not end up
	// inside the next archive.
	first := DefaultArchivePath(dataDir, time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	if err := BackupDataDir(dataDir, first); err != nil {
		t.Fatalf("first backup failed: %v", err)
	}

	second := filepath.Join(t.TempDir(), "second.tar.gz")
	if err := BackupDataDir(dataDir, second); err != nil {
		t.Fatalf("second backup failed: %v", err)
	}

	restoreDir := filepath.Join(t.TempDir(), "restore")
	if err := RestoreDataDir(second, restoreDir); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(restoreDir, "backups")); !os.IsNotExist(err) {
		t.Fatalf("backups dir leaked into archive (stat err = %v)", err)
	}
}

func TestBackup_MissingDataDir(t *testing.T) {
	err := BackupDataDir(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "x.tar.gz"))
	if err == nil {
		t.Fatal("expected error for missing data dir")
	}
}

func TestDefaultArchivePath(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.Local)
	got := DefaultArchivePath("/tmp/data", now)
	want := filepath.Join("/tmp/data", "backups", "todo-20250310-093000.tar.gz")
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
