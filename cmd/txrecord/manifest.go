package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const manifestFile = "records.yaml"

var (
	ErrEmptyManifest    = errors.New("manifest lists no records")
	ErrDuplicateRecord  = errors.New("duplicate record name")
	ErrIncompleteRecord = errors.New("record needs a name and a path")
)

// Manifest lists the record files that make up one account
type Manifest struct {
	Records []ManifestRecord `yaml:"records"`
}

type ManifestRecord struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

func (m Manifest) Validate() error {
	if len(m.Records) == 0 {
		return ErrEmptyManifest
	}
	seen := make(map[string]bool, len(m.Records))
	for i, rec := range m.Records {
		if strings.TrimSpace(rec.Name) == "" || strings.TrimSpace(rec.Path) == "" {
			return fmt.Errorf("record %d: %w", i, ErrIncompleteRecord)
		}
		if seen[rec.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateRecord, rec.Name)
		}
		seen[rec.Name] = true
	}
	return nil
}

// ParseManifest decodes and validates a manifest payload.
func ParseManifest(data []byte) (Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Manifest{}, ErrEmptyManifest
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// LoadManifest reads a manifest and resolves record paths against its directory.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i, rec := range m.Records {
		if !filepath.IsAbs(rec.Path) {
			m.Records[i].Path = filepath.Join(base, rec.Path)
		}
	}
	return m, nil
}

func WriteManifest(path string, m Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// manifestFromPaths names each record after its file, minus the extension.
func manifestFromPaths(paths []string) Manifest {
	var m Manifest
	for _, p := range paths {
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		m.Records = append(m.Records, ManifestRecord{Name: name, Path: p})
	}
	return m
}
