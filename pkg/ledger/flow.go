package ledger

import (
	"strconv"

	"pkg.jsn.cam/txrecord/pkg/txrecord"
)

const (
	DepositsKey    = "deposits"
	WithdrawalsKey = "withdrawals"
)

// FlowWorker totals deposits and withdrawals across all records.
// Zero amounts count as deposits.
type FlowWorker struct{}

func (w FlowWorker) Map(_ string, chunk []string, emit Emitter) error {
	for _, line := range chunk {
		if txrecord.IsMarker(line) {
			continue
		}
		t, err := txrecord.ParseTransaction(line)
		if err != nil {
			return err
		}
		key := DepositsKey
		if t < 0 {
			key = WithdrawalsKey
		}
		emit(KeyValue{Key: key, Value: strconv.FormatFloat(float64(t), 'f', -1, 64)})
	}
	return nil
}

func (w FlowWorker) Reduce(key string, values []string, emit Emitter) error {
	sum, err := sumValues(values)
	if err != nil {
		return err
	}
	emit(KeyValue{Key: key, Value: strconv.FormatFloat(sum, 'f', 2, 64)})
	return nil
}

func (w FlowWorker) Description() string {
	return "Total deposits and withdrawals across all records"
}
