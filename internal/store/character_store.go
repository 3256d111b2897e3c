package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"inkbound-server/internal/models"
)

// indent совпадает с форматом, который ожидают существующие characters.json (4 пробела).
const indent = "    "

// LoadResult - результат чтения файла. Found == false означает, что файла нет
// и Document содержит пустой документ по умолчанию.
type LoadResult struct {
	Document models.CharacterDocument
	Found    bool
}

// CharacterRepository определяет операции над хранилищем персонажей.
type CharacterRepository interface {
	// Load читает документ целиком.
	Load() (LoadResult, error)
	// Append добавляет запись в конец списка и перезаписывает файл.
	Append(character models.Character) error
	// List возвращает персонажей в порядке хранения. Ошибки чтения логируются,
	// в этом случае возвращается пустой список.
	List() []models.Character
}

// FileStore хранит персонажей в одном JSON-файле.
// Добавления сериализуются мьютексом, запись атомарная (временный файл + rename),
// поэтому в пределах процесса ни одно успешное добавление не теряется.
type FileStore struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

var _ CharacterRepository = (*FileStore)(nil)

// NewFileStore создает хранилище поверх файла path.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.Named("CharacterStore").With(zap.String("path", path)),
	}
}

// Path возвращает путь к файлу хранилища.
func (s *FileStore) Path() string {
	return s.path
}

// EnsureExists создает пустой документ, если файла нет.
// Возвращает true, если файл был создан.
func (s *FileStore) EnsureExists() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	if err := s.writeDocument(models.NewCharacterDocument()); err != nil {
		return false, err
	}
	return true, nil
}

// Load читает документ с диска.
func (s *FileStore) Load() (LoadResult, error) {
	return s.load()
}

func (s *FileStore) load() (LoadResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{Document: models.NewCharacterDocument(), Found: false}, nil
		}
		return LoadResult{Document: models.NewCharacterDocument()}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var doc models.CharacterDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return LoadResult{Document: models.NewCharacterDocument(), Found: true}, fmt.Errorf("%w: %v", models.ErrStoreCorrupted, err)
	}
	doc.Normalize()

	return LoadResult{Document: doc, Found: true}, nil
}

// Append добавляет персонажа. Поврежденный файл не перезаписывается.
func (s *FileStore) Append(character models.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.load()
	if err != nil {
		s.logger.Error("Failed to load characters before append", zap.Error(err))
		return err
	}
	if !res.Found {
		s.logger.Info("Characters file not found, starting a fresh document")
	}

	doc := res.Document
	doc.Characters = append(doc.Characters, character)

	if err := s.writeDocument(doc); err != nil {
		s.logger.Error("Failed to write characters file", zap.Error(err))
		return err
	}

	s.logger.Info("Character appended",
		zap.String("name", character.Name),
		zap.Int("total", len(doc.Characters)),
	)
	return nil
}

// List возвращает текущий список персонажей.
func (s *FileStore) List() []models.Character {
	res, err := s.load()
	if err != nil {
		s.logger.Error("Error reading characters", zap.Error(err))
		return []models.Character{}
	}
	return res.Document.Characters
}

// writeDocument пишет документ во временный файл рядом с целевым и переименовывает его.
// Вызывается под s.mu.
func (s *FileStore) writeDocument(doc models.CharacterDocument) error {
	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal document: %v", models.ErrStoreWrite, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", models.ErrStoreWrite, err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("%w: failed to write temp file: %v", models.ErrStoreWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("%w: failed to sync temp file: %v", models.ErrStoreWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to close temp file: %v", models.ErrStoreWrite, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to chmod temp file: %v", models.ErrStoreWrite, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace %s: %v", models.ErrStoreWrite, s.path, err)
	}
	return nil
}
