package ledger

import (
	"fmt"
	"sort"
)

var Workers = map[string]Worker{
	"balance":  BalanceWorker{},
	"flow":     FlowWorker{},
	"sections": SectionCountWorker{},
}

// GetWorker returns a worker by name
func GetWorker(name string) (Worker, error) {
	w, exists := Workers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorker, name)
	}
	return w, nil
}

// ListWorkers returns all worker names, sorted
func ListWorkers() []string {
	names := make([]string, 0, len(Workers))
	for name := range Workers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
