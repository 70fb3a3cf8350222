package ledger

import (
	"strconv"
	"strings"

	"pkg.jsn.cam/txrecord/pkg/txrecord"
)

// BalanceWorker computes the net balance contributed by each record.
type BalanceWorker struct{}

// Map emits (record, amount) for every transaction line
func (w BalanceWorker) Map(record string, chunk []string, emit Emitter) error {
	for _, line := range chunk {
		if txrecord.IsMarker(line) {
			continue
		}
		t, err := txrecord.ParseTransaction(line)
		if err != nil {
			return err
		}
		emit(KeyValue{Key: record, Value: strconv.FormatFloat(float64(t), 'f', -1, 64)})
	}
	return nil
}

// Reduce sums all amounts for the record
func (w BalanceWorker) Reduce(key string, values []string, emit Emitter) error {
	sum, err := sumValues(values)
	if err != nil {
		return err
	}
	emit(KeyValue{Key: key, Value: strconv.FormatFloat(sum, 'f', 2, 64)})
	return nil
}

func (w BalanceWorker) Description() string {
	return "Net balance per record (sum of every transaction)"
}

func sumValues(values []string) (float64, error) {
	var sum float64
	for _, v := range values {
		val, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, err
		}
		sum += val
	}
	return sum, nil
}
