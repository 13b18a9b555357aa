package eventstore

import (
	"errors"
)

var (
	ErrEmptyEventsTableName        = errors.New("empty events table name supplied")
	ErrNilDatabaseConnection       = errors.New("nil database connection supplied")
	ErrConcurrencyConflict         = errors.New("concurrency error, no rows were affected")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning db row failed")
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
	ErrAppendingEventFailed        = errors.New("appending the event failed")
	ErrGettingRowsAffectedFailed   = errors.New("getting rows affected failed")
	ErrBuildingQueryFailed         = errors.New("building the query failed")
	ErrBeginningTransactionFailed  = errors.New("beginning the append transaction failed")
	ErrAcquiringAppendLockFailed   = errors.New("acquiring the append lock failed")
	ErrCommittingTransactionFailed = errors.New("committing the append transaction failed")
)

// MaxSequenceNumberUint is a type alias for uint, representing the maximum sequence number for a "dynamic event stream".
type MaxSequenceNumberUint = uint
