package storage

import (
	"agentcrm/internal/models"
	"agentcrm/internal/providers"
	"agentcrm/internal/storage/interfaces"
	"agentcrm/internal/structures"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

var ErrSnapshotShape = errors.New("snapshot must contain clients and deals arrays")

// FileManager persists the whole snapshot as a single file.
type FileManager struct {
	path       string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewFileManager(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *FileManager {
	return &FileManager{
		path:       conf.Persistence.FilePath,
		compressor: compressor,
		logger:     logger,
		metrics:    metrics,
	}
}

func (f *FileManager) Path() string {
	return f.path
}

// Load returns ok=false for a missing, empty, unreadable or malformed file.
// Anything other than a missing or empty file is logged as a warning.
func (f *FileManager) Load() (*models.Snapshot, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warnf(providers.TypeStore, "Failed to read snapshot %s, falling back to defaults: %s", f.path, err)
		}
		return nil, false
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, false
	}

	snapshot, err := f.decode(data)
	if err != nil {
		f.logger.Warnf(providers.TypeStore, "Failed to parse snapshot %s, falling back to defaults: %s", f.path, err)
		return nil, false
	}
	f.logger.Infof(providers.TypeStore, "Loaded snapshot %s: %d clients, %d deals", f.path, len(snapshot.Contacts), len(snapshot.Deals))
	return snapshot, true
}

func (f *FileManager) decode(data []byte) (*models.Snapshot, error) {
	raw, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Contacts *[]models.Contact `json:"clients"`
		Deals    *[]models.Deal    `json:"deals"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	if payload.Contacts == nil || payload.Deals == nil {
		return nil, ErrSnapshotShape
	}

	return &models.Snapshot{
		Contacts: *payload.Contacts,
		Deals:    *payload.Deals,
	}, nil
}

// Save overwrites the snapshot file, creating parent directories first.
// The content goes to a temp file that is synced and renamed into place.
func (f *FileManager) Save(snapshot *models.Snapshot) error {
	start := time.Now()
	err := f.save(snapshot)
	f.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		f.metrics.IncPersistenceFailures()
		f.logger.Errorf(providers.TypeStore, "Error while persisting snapshot to %s: %s", f.path, err)
		return err
	}
	f.logger.Debugf(providers.TypeStore, "Persisted snapshot to %s", f.path)
	return nil
}

func (f *FileManager) save(snapshot *models.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(normalize(snapshot), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("write snapshot: %w", err)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("sync snapshot: %w", err)
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err = os.Rename(tmpFile, f.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// normalize makes nil collections serialize as [] so the file always
// passes the shape check on the next load.
func normalize(snapshot *models.Snapshot) *models.Snapshot {
	out := *snapshot
	if out.Contacts == nil {
		out.Contacts = []models.Contact{}
	}
	if out.Deals == nil {
		out.Deals = []models.Deal{}
	}
	return &out
}

func (f *FileManager) Close() {
	f.compressor.Close()
}
