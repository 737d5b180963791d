package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

// fileDoc is the on-disk shape: one document, full collection.
type fileDoc struct {
	Tasks []model.Task `json:"tasks"`
}

// FileRepo persists the task collection as a single JSON document,
// rewritten in full on every save.
type FileRepo struct {
	path string
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileRepo{path: filepath.Join(dataDir, "tasks.json")}, nil
}

// Path returns the location of the backing file.
func (r *FileRepo) Path() string {
	return r.path
}

// Load reads the collection back. A missing file is an empty
// collection, not an error. Records from older file versions are
// upgraded in place: absent fields get their documented defaults
// instead of failing the load.
func (r *FileRepo) Load() ([]model.Task, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var doc fileDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}

	for i := range doc.Tasks {
		migrateRecord(&doc.Tasks[i])
	}
	return doc.Tasks, nil
}

func (r *FileRepo) Save(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(fileDoc{Tasks: tasks}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

// migrateRecord fills fields that older saved files did not have.
func migrateRecord(t *model.Task) {
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Recurring != nil && t.Recurring.Enabled && t.Recurring.Type == nil {
		// Enabled recurrence without a type cannot advance; disable it
		// rather than reject the whole file.
		t.Recurring.Enabled = false
	}
}
