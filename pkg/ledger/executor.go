package ledger

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

/*
1. Chunk each record into runs of lines
2. Map: each chunk -> worker -> emits (key, value) pairs.
3. Shuffle: merge all outputs, group by key.
4. Reduce: each key -> [values] -> worker emits results.
*/

// Record is a named transaction record to feed through the pipeline
type Record struct {
	Name   string
	Reader io.Reader
}

// Chunk splits r into slices of at most chunkSize lines.
func Chunk(r io.Reader, chunkSize int) ([][]string, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	scanner := bufio.NewScanner(r)
	var chunks [][]string
	var chunk []string
	for scanner.Scan() {
		chunk = append(chunk, scanner.Text())
		if len(chunk) >= chunkSize {
			chunks = append(chunks, chunk)
			chunk = nil
		}
	}
	if len(chunk) > 0 {
		chunks = append(chunks, chunk)
	}
	return chunks, scanner.Err()
}

func MapPhase(record string, chunks [][]string, worker Worker) ([]KeyValue, error) {
	var all []KeyValue
	for _, chunk := range chunks {
		err := worker.Map(record, chunk, func(kv KeyValue) {
			all = append(all, kv)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMapFailed, record, err)
		}
	}
	return all, nil
}

func Shuffle(pairs []KeyValue) map[string][]string {
	grouped := make(map[string][]string)
	for _, kv := range pairs {
		grouped[kv.Key] = append(grouped[kv.Key], kv.Value)
	}
	return grouped
}

// ReducePhase reduces every key group. Results are sorted by key.
func ReducePhase(groups map[string][]string, worker Worker) ([]KeyValue, error) {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var results []KeyValue
	for _, key := range keys {
		err := worker.Reduce(key, groups[key], func(kv KeyValue) {
			results = append(results, kv)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReduceFailed, key, err)
		}
	}
	return results, nil
}

// Run maps every record through worker, then shuffles and reduces the output.
func Run(records []Record, chunkSize int, worker Worker) ([]KeyValue, error) {
	var pairs []KeyValue
	for _, rec := range records {
		chunks, err := Chunk(rec.Reader, chunkSize)
		if err != nil {
			return nil, fmt.Errorf("chunk %s: %w", rec.Name, err)
		}
		kvs, err := MapPhase(rec.Name, chunks, worker)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, kvs...)
	}
	return ReducePhase(Shuffle(pairs), worker)
}
