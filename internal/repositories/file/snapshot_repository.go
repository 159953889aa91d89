package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chrisdamba/menuengine/internal/models"
	"github.com/chrisdamba/menuengine/internal/repositories"
)

var extensions = map[string]bool{".json": true, ".yaml": true, ".yml": true}

// SnapshotRepository reads snapshot documents from disk. Path is either a
// single document or a directory of them; the file stem is the restaurant id
// unless the document sets one.
type SnapshotRepository struct {
	path string
}

func NewSnapshotRepository(path string) *SnapshotRepository {
	return &SnapshotRepository{path: path}
}

func (r *SnapshotRepository) ListRestaurants(ctx context.Context) ([]string, error) {
	files, err := r.files()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(files))
	for id := range files {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *SnapshotRepository) Load(ctx context.Context, restaurantID string) (models.EngineInput, error) {
	if err := ctx.Err(); err != nil {
		return models.EngineInput{}, err
	}
	files, err := r.files()
	if err != nil {
		return models.EngineInput{}, err
	}
	path, ok := files[restaurantID]
	if !ok {
		return models.EngineInput{}, fmt.Errorf("%w: %s", repositories.ErrSnapshotNotFound, restaurantID)
	}

	input, err := ReadSnapshot(path)
	if err != nil {
		return models.EngineInput{}, err
	}
	if input.RestaurantID == "" {
		input.RestaurantID = restaurantID
	}
	return input, nil
}

// ReadSnapshot decodes one JSON or YAML snapshot document.
func ReadSnapshot(path string) (models.EngineInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.EngineInput{}, fmt.Errorf("error reading snapshot file: %w", err)
	}

	var input models.EngineInput
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &input)
	default:
		err = yaml.Unmarshal(data, &input)
	}
	if err != nil {
		return models.EngineInput{}, fmt.Errorf("error decoding snapshot %s: %w", path, err)
	}
	return input, nil
}

// WriteSnapshot stores input as YAML or JSON depending on the extension.
func WriteSnapshot(path string, input models.EngineInput) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(input, "", "  ")
	} else {
		data, err = yaml.Marshal(input)
	}
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// files maps restaurant ids to document paths.
func (r *SnapshotRepository) files() (map[string]string, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot path: %w", err)
	}
	if !info.IsDir() {
		return map[string]string{stem(r.path): r.path}, nil
	}

	entries, err := os.ReadDir(r.path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot directory: %w", err)
	}
	files := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !extensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files[stem(e.Name())] = filepath.Join(r.path, e.Name())
	}
	return files, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
