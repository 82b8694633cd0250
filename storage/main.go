package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"eccli/enums"
	"eccli/models"
)

// Storage lays quest assets out under a base directory:
//
//	{base}/{year}/descriptions/{day}.html
//	{base}/{year}/inputs/{day}-{part}.txt
//	{base}/{year}/samples/{day}-{part}.txt
//	{base}/{year}/answers/{day}-{part}.txt
type Storage struct {
	baseDir   string
	overrides map[enums.AssetKind]string
}

func New(baseDir string) *Storage {
	return &Storage{
		baseDir:   baseDir,
		overrides: make(map[enums.AssetKind]string),
	}
}

// Override pins one asset kind to an exact file path, bypassing the
// layout. Used by the --input-path/--description-path style flags.
func (s *Storage) Override(kind enums.AssetKind, path string) {
	if path == "" {
		return
	}
	s.overrides[kind] = path
}

func (s *Storage) Path(kind enums.AssetKind, quest *models.Quest) string {
	if path, exists := s.overrides[kind]; exists {
		return path
	}
	year := strconv.Itoa(quest.Year)
	switch kind {
	case enums.AssetKindDescription:
		return filepath.Join(s.baseDir, year, "descriptions",
			fmt.Sprintf("%d.html", quest.Day))
	case enums.AssetKindInput:
		return filepath.Join(s.baseDir, year, "inputs",
			fmt.Sprintf("%d-%d.txt", quest.Day, quest.Part))
	case enums.AssetKindSample:
		return filepath.Join(s.baseDir, year, "samples",
			fmt.Sprintf("%d-%d.txt", quest.Day, quest.Part))
	case enums.AssetKindAnswer:
		return filepath.Join(s.baseDir, year, "answers",
			fmt.Sprintf("%d-%d.txt", quest.Day, quest.Part))
	}
	return ""
}

// Save writes the asset atomically: data lands in a temp file next to
// the target and is renamed over it, so readers never see a torn file.
func (s *Storage) Save(kind enums.AssetKind, quest *models.Quest, data string) (string, error) {
	path := s.Path(kind, quest)
	if path == "" {
		return "", fmt.Errorf("no path for asset kind %s", kind)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	tempPath := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tempPath, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to move file in place: %w", err)
	}
	return path, nil
}

func (s *Storage) Load(kind enums.AssetKind, quest *models.Quest) (string, error) {
	path := s.Path(kind, quest)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", kind, err)
	}
	return string(data), nil
}

func (s *Storage) Has(kind enums.AssetKind, quest *models.Quest) bool {
	path := s.Path(kind, quest)
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
