package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestDataset(t *testing.T) string {
	t.Helper()
	dataPath := filepath.Join(t.TempDir(), "health-data.json")
	if err := os.WriteFile(dataPath, []byte(`{"days": []}`), 0600); err != nil {
		t.Fatalf("failed to create test dataset: %v", err)
	}
	return dataPath
}

func TestCreateBackup(t *testing.T) {
	dataPath := setupTestDataset(t)

	mgr := NewManager(dataPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file not created: %v", err)
	}

	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup name: %s", name)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"days": []}` {
		t.Errorf("backup content differs from dataset: %q", string(data))
	}
}

func TestCreateBackup_MissingDataset(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing dataset")
	}
}

func TestListBackups(t *testing.T) {
	dataPath := setupTestDataset(t)
	mgr := NewManager(dataPath)

	if backups, err := mgr.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("expected no backups initially, got %v (err %v)", backups, err)
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestCreateBackup_UniqueNames(t *testing.T) {
	dataPath := setupTestDataset(t)
	mgr := NewManager(dataPath)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
		if seen[path] {
			t.Errorf("duplicate backup path: %s", path)
		}
		seen[path] = true
	}
}

func TestRestoreBackup(t *testing.T) {
	dataPath := setupTestDataset(t)
	mgr := NewManager(dataPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the dataset, then restore the earlier snapshot.
	if err := os.WriteFile(dataPath, []byte(`{"days": [{"date": "2026-01-10"}]}`), 0600); err != nil {
		t.Fatalf("failed to modify dataset: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		t.Fatalf("failed to read restored dataset: %v", err)
	}
	if string(data) != `{"days": []}` {
		t.Errorf("restore did not bring back the snapshot: %q", string(data))
	}
}

func TestRestoreBackup_MissingBackupFile(t *testing.T) {
	mgr := NewManager(setupTestDataset(t))
	if err := mgr.RestoreBackup("/nonexistent/backup.json"); err == nil {
		t.Error("expected error for missing backup file")
	}
}
