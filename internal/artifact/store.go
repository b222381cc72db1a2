// Package artifact persists trained pipelines and the production
// export bundle. Each write is atomic from the caller's perspective:
// open, write fully, close, with no shared state between artifacts.
package artifact

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"intentrain/internal/model"
)

// ProductionFormatVersion tags production exports.
const ProductionFormatVersion = "1.0"

// Store writes and reads model artifacts under a root directory.
type Store struct {
	Root string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Root: dir}
}

// ModelName returns the registry name a trained algorithm is saved
// and exported under.
func ModelName(alg model.Algorithm) string {
	return fmt.Sprintf("intent_classifier_%s", alg)
}

// ModelPath returns the per-algorithm bundle location.
func (s *Store) ModelPath(alg model.Algorithm) string {
	return filepath.Join(s.Root, "models", ModelName(alg)+".json")
}

// ProductionPath returns the fixed production export location,
// overwritten on each export.
func (s *Store) ProductionPath() string {
	return filepath.Join(s.Root, "production", "chatbot_model.json")
}

// EvaluationDir returns the directory evaluation plots are written to.
func (s *Store) EvaluationDir() string {
	return filepath.Join(s.Root, "evaluation")
}

// envelope wraps a bundle with the checksum recorded at write time,
// plus the evaluation accuracy and intent vocabulary of the run that
// produced it so a later export needs no registry in memory.
type envelope struct {
	SHA256   string          `json:"sha256"`
	Accuracy float64         `json:"accuracy"`
	Intents  []string        `json:"intents"`
	Bundle   json.RawMessage `json:"bundle"`
}

// SavedModel is one per-algorithm artifact read back from disk.
type SavedModel struct {
	Pipeline *model.Pipeline
	Accuracy float64
	Intents  []string
}

// SaveModel writes the pipeline's bundle to its per-algorithm path and
// returns that path. The bundle checksum is recorded alongside so a
// corrupted file is detected on load.
func (s *Store) SaveModel(pipeline *model.Pipeline, accuracy float64, intents []string) (string, error) {
	bundle, err := pipeline.Bundle()
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(bundle)
	if err != nil {
		return "", fmt.Errorf("marshal bundle: %w", err)
	}
	sum := sha256.Sum256(raw)

	path := s.ModelPath(pipeline.Algorithm())
	if err := writeJSON(path, envelope{
		SHA256:   hex.EncodeToString(sum[:]),
		Accuracy: accuracy,
		Intents:  intents,
		Bundle:   raw,
	}); err != nil {
		return "", err
	}
	return path, nil
}

// LoadModel reads a saved artifact back into a pipeline of the same
// shape, refusing an envelope whose checksum does not match its
// contents.
func (s *Store) LoadModel(alg model.Algorithm) (*SavedModel, error) {
	content, err := os.ReadFile(s.ModelPath(alg))
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(content, &env); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	// The envelope is written indented; the checksum covers the compact
	// form the bundle was marshaled to.
	var compact bytes.Buffer
	if err := json.Compact(&compact, env.Bundle); err != nil {
		return nil, fmt.Errorf("parse model bundle: %w", err)
	}
	sum := sha256.Sum256(compact.Bytes())
	if got := hex.EncodeToString(sum[:]); got != env.SHA256 {
		return nil, fmt.Errorf("model artifact checksum mismatch: got %s want %s", got, env.SHA256)
	}

	var bundle model.Bundle
	if err := json.Unmarshal(env.Bundle, &bundle); err != nil {
		return nil, fmt.Errorf("parse model bundle: %w", err)
	}
	pipeline, err := model.FromBundle(bundle)
	if err != nil {
		return nil, err
	}
	return &SavedModel{Pipeline: pipeline, Accuracy: env.Accuracy, Intents: env.Intents}, nil
}

// ProductionArtifact packages one registry entry for deployment. It is
// created once at export time and intended to be write-once.
type ProductionArtifact struct {
	Model         model.Bundle `json:"model"`
	Intents       []string     `json:"intents"`
	CreatedAt     string       `json:"created"`
	Accuracy      float64      `json:"accuracy"`
	FormatVersion string       `json:"version"`
}

// ExportProduction packages the named registry entry with the intent
// vocabulary and overwrites the fixed production path. The accuracy is
// the registry's stored value; nothing is re-evaluated at export time.
// An unknown name fails with model.ErrModelNotFound and leaves any
// prior artifact untouched.
func (s *Store) ExportProduction(registry *model.Registry, intents []string, name string) (string, error) {
	entry, err := registry.Lookup(name)
	if err != nil {
		return "", err
	}
	bundle, err := entry.Pipeline.Bundle()
	if err != nil {
		return "", err
	}

	path := s.ProductionPath()
	if err := writeJSON(path, ProductionArtifact{
		Model:         bundle,
		Intents:       intents,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Accuracy:      entry.Accuracy,
		FormatVersion: ProductionFormatVersion,
	}); err != nil {
		return "", err
	}
	return path, nil
}

// ExportSaved rebuilds a registry from the per-algorithm artifacts on
// disk and exports the entry saved under name. Absent artifacts are
// skipped, so an unknown name fails with model.ErrModelNotFound.
func (s *Store) ExportSaved(name string) (string, error) {
	registry := model.NewRegistry()
	var intents []string
	for _, alg := range model.AllAlgorithms() {
		saved, err := s.LoadModel(alg)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		entryName := ModelName(alg)
		registry.Register(entryName, saved.Pipeline, saved.Accuracy)
		if entryName == name {
			intents = saved.Intents
		}
	}
	return s.ExportProduction(registry, intents, name)
}

// WriteReport writes an indented JSON document under the store root
// and returns its path.
func (s *Store) WriteReport(name string, value any) (string, error) {
	path := filepath.Join(s.Root, "reports", name)
	if err := writeJSON(path, value); err != nil {
		return "", err
	}
	return path, nil
}

// WriteRaw writes bytes under the store root and returns the path.
func (s *Store) WriteRaw(relative string, content []byte) (string, error) {
	path := filepath.Join(s.Root, relative)
	if err := ensureParentDir(path); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", relative, err)
	}
	return path, nil
}

func writeJSON(path string, value any) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	content, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	content = append(content, '\n')
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
