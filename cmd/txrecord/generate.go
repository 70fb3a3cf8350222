package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"pkg.jsn.cam/txrecord/pkg/txrecord"
)

// accountHolders name the first records written by generate -records
var accountHolders = []string{
	"Vlad",
	"Frank",
	"Bigfoot",
	"Casper",
	"Gomez",
}

const recordExt = ".in"

// recordNames returns n record names, falling back to random ones once the
// account holders run out.
func recordNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(accountHolders) {
			names = append(names, accountHolders[i])
			continue
		}
		names = append(names, "record-"+uuid.New().String()[:8])
	}
	return names
}

func newSource(seed uint64) txrecord.Source {
	if seed == 0 {
		return txrecord.NewSource(nil)
	}
	return txrecord.NewSeededSource(seed)
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	seed := fs.Uint64("seed", 0, "Seed for deterministic output (0 = random)")
	output := fs.String("output", "", "Output file path (default stdout)")
	records := fs.Int("records", 0, "Number of record files to write (0 = print a single document)")
	dir := fs.String("dir", "var/records", "Directory for record files and manifest")
	fs.Parse(args)

	gen := txrecord.New(newSource(*seed))

	if *records <= 0 {
		if err := writeDocument(gen, *output); err != nil {
			log.Fatalf("[TXGEN] %v", err)
		}
		return
	}

	manifest, err := writeRecords(gen, *dir, recordNames(*records))
	if err != nil {
		log.Fatalf("[TXGEN] %v", err)
	}
	manifestPath := filepath.Join(*dir, manifestFile)
	if err := WriteManifest(manifestPath, manifest); err != nil {
		log.Fatalf("[TXGEN] %v", err)
	}
	log.Printf("[TXGEN] Wrote %d records, manifest at %s", len(manifest.Records), manifestPath)
}

func writeDocument(gen *txrecord.Generator, path string) error {
	if path == "" {
		_, err := gen.WriteTo(os.Stdout)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	n, err := gen.WriteTo(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Printf("[TXGEN] Wrote %s to %s", humanize.Bytes(uint64(n)), path)
	return nil
}

// writeRecords writes one document per name into dir and returns the manifest
// describing them. Paths in the manifest are relative to dir.
func writeRecords(gen *txrecord.Generator, dir string, names []string) (Manifest, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Manifest{}, fmt.Errorf("create record dir: %w", err)
	}

	var manifest Manifest
	for _, name := range names {
		rel := name + recordExt
		doc := gen.Generate()
		if err := os.WriteFile(filepath.Join(dir, rel), []byte(doc), 0644); err != nil {
			return Manifest{}, fmt.Errorf("write record %s: %w", name, err)
		}
		log.Printf("[TXGEN] Record %s: %s", name, humanize.Bytes(uint64(len(doc))))
		manifest.Records = append(manifest.Records, ManifestRecord{Name: name, Path: rel})
	}
	return manifest, nil
}
