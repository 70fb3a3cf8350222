// Package ledger totals transaction records with a small sequential
// map/shuffle/reduce pipeline.
package ledger

type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Worker maps record lines to key/value pairs and reduces each key group.
type Worker interface {
	// Map is called once per chunk of lines from a single record.
	Map(record string, chunk []string, emit Emitter) error
	Reduce(key string, values []string, emit Emitter) error
	Description() string
}

type Emitter func(KeyValue)
