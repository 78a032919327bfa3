package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BarkinBalci/funnel-analytics-service/internal/analytics"
	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
)

const currentFileName = "current.csv"

// Store is a file-backed DatasetStore. The current dataset lives at
// <dataDir>/current.csv, raw uploads under <dataDir>/uploads, and the
// bundled sample at samplePath.
type Store struct {
	dataDir    string
	uploadsDir string
	samplePath string
	log        *zap.Logger
}

// NewStore creates a file-backed dataset store rooted at dataDir, creating
// the uploads directory if needed.
func NewStore(dataDir, samplePath string, log *zap.Logger) (*Store, error) {
	uploadsDir := filepath.Join(dataDir, "uploads")
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &Store{
		dataDir:    dataDir,
		uploadsDir: uploadsDir,
		samplePath: samplePath,
		log:        log,
	}, nil
}

func (s *Store) currentPath() string {
	return filepath.Join(s.dataDir, currentFileName)
}

// Active loads the current dataset, falling back to the bundled sample when
// no dataset has been promoted.
func (s *Store) Active() (domain.EventTable, error) {
	path := s.currentPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = s.samplePath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	table, err := analytics.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	return table, nil
}

// SaveUpload writes a raw upload to the uploads directory under a
// uuid-prefixed name, so repeated uploads of the same filename never
// overwrite each other.
func (s *Store) SaveUpload(filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	path := filepath.Join(s.uploadsDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	s.log.Info("Upload saved",
		zap.String("filename", filename),
		zap.String("path", path))

	return path, nil
}

// Promote writes a normalized table as the current dataset. The write goes
// through a temp file and rename so a crash mid-write cannot leave a
// truncated current dataset behind.
func (s *Store) Promote(table domain.EventTable) error {
	tmp, err := os.CreateTemp(s.dataDir, currentFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dataset file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := analytics.WriteCSV(tmp, table); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp dataset file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.currentPath()); err != nil {
		return fmt.Errorf("failed to promote dataset: %w", err)
	}

	s.log.Info("Dataset promoted", zap.Int("events", len(table)))
	return nil
}

// Reset removes the current dataset so Active falls back to the sample.
// Resetting when no current dataset exists is a no-op.
func (s *Store) Reset() error {
	if err := os.Remove(s.currentPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove current dataset: %w", err)
	}

	s.log.Info("Dataset reset to sample")
	return nil
}
