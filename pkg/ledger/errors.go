package ledger

import "errors"

// Sentinel errors for common error conditions
var (
	ErrInvalidChunkSize = errors.New("invalid chunk size")
	ErrUnknownWorker    = errors.New("unknown worker")
	ErrMapFailed        = errors.New("error during map phase")
	ErrReduceFailed     = errors.New("error during reduce phase")
)
