package ledger

import (
	"strconv"

	"pkg.jsn.cam/txrecord/pkg/txrecord"
)

// SectionCountWorker counts critical sections per record.
type SectionCountWorker struct{}

func (w SectionCountWorker) Map(record string, chunk []string, emit Emitter) error {
	for _, line := range chunk {
		if line == txrecord.BeginMarker {
			emit(KeyValue{Key: record, Value: "1"})
		}
	}
	return nil
}

func (w SectionCountWorker) Reduce(key string, values []string, emit Emitter) error {
	emit(KeyValue{Key: key, Value: strconv.Itoa(len(values))})
	return nil
}

func (w SectionCountWorker) Description() string {
	return "Number of critical sections per record"
}
