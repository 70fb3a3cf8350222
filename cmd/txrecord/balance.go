package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"pkg.jsn.cam/txrecord/pkg/ledger"
	"pkg.jsn.cam/txrecord/pkg/txrecord"
)

func runBalance(args []string) {
	fs := flag.NewFlagSet("balance", flag.ExitOnError)
	manifestPath := fs.String("manifest", "", "Path to a records.yaml manifest")
	workerName := fs.String("worker", "balance", "Ledger worker to run (see 'txrecord workers')")
	chunkSize := fs.Int("chunk_size", 64, "Lines per map chunk")
	fs.Parse(args)

	var manifest Manifest
	switch {
	case *manifestPath != "":
		m, err := LoadManifest(*manifestPath)
		if err != nil {
			log.Fatalf("[LEDGER] %v", err)
		}
		manifest = m
	case fs.NArg() > 0:
		manifest = manifestFromPaths(fs.Args())
		if err := manifest.Validate(); err != nil {
			log.Fatalf("[LEDGER] %v", err)
		}
	default:
		log.Fatal("[LEDGER] -manifest or at least one record file is required")
	}

	worker, err := ledger.GetWorker(*workerName)
	if err != nil {
		log.Fatalf("[LEDGER] %v", err)
	}

	records, err := loadRecords(manifest)
	if err != nil {
		log.Fatalf("[LEDGER] %v", err)
	}

	results, err := ledger.Run(records, *chunkSize, worker)
	if err != nil {
		log.Fatalf("[LEDGER] %v", err)
	}

	if *workerName == "balance" {
		if err := printBalances(os.Stdout, manifest, results); err != nil {
			log.Fatalf("[LEDGER] %v", err)
		}
		return
	}
	for _, kv := range results {
		fmt.Printf("%s: %s\n", kv.Key, kv.Value)
	}
}

// loadRecords reads every record and checks its structure before any totals
// are computed, so a malformed file aborts the run with no partial output.
func loadRecords(m Manifest) ([]ledger.Record, error) {
	records := make([]ledger.Record, 0, len(m.Records))
	for _, rec := range m.Records {
		data, err := os.ReadFile(rec.Path)
		if err != nil {
			return nil, fmt.Errorf("read record %s: %w", rec.Name, err)
		}
		if _, err := txrecord.Parse(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("record %s (%s): %w", rec.Name, rec.Path, err)
		}
		records = append(records, ledger.Record{Name: rec.Name, Reader: bytes.NewReader(data)})
	}
	return records, nil
}

// printBalances writes the running account balance after each record, in
// manifest order, followed by the final balance. Records with no transactions
// contribute nothing.
func printBalances(w io.Writer, m Manifest, results []ledger.KeyValue) error {
	byName := make(map[string]string, len(results))
	for _, kv := range results {
		byName[kv.Key] = kv.Value
	}

	var total float64
	for _, rec := range m.Records {
		value, ok := byName[rec.Name]
		if !ok {
			value = "0.00"
		}
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("bad balance for %s: %w", rec.Name, err)
		}
		total += amount
		if _, err := fmt.Fprintf(w, "Account balance after %s is $%.2f\n", rec.Name, total); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Final account balance is $%.2f\n", total)
	return err
}

func runWorkers() {
	for _, name := range ledger.ListWorkers() {
		w, _ := ledger.GetWorker(name)
		fmt.Printf("  %-10s %s\n", name, w.Description())
	}
}
