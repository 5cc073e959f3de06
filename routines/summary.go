package routines

import (
	"context"
	"fmt"
	"time"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/hashicorp/go-memdb"
)

// StartSummaryRoutine logs how many records each table holds, once at start
// and then every interval, until ctx is done. It blocks; run it in a goroutine.
func StartSummaryRoutine(ctx context.Context, db *memdb.MemDB, interval time.Duration, tables ...string) {
	logSummary(db, tables)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logSummary(db, tables)
		}
	}
}

func logSummary(db *memdb.MemDB, tables []string) {
	log := logger.GetLogger()
	counts, err := CountRecords(db, tables...)
	if err != nil {
		log.Errorw("Failed to count stored submissions", "error", err)
		return
	}
	fields := make([]interface{}, 0, 2*len(counts))
	for _, table := range tables {
		fields = append(fields, table, counts[table])
	}
	log.Infow("Stored submissions", fields...)
}

// CountRecords returns the number of records per table.
func CountRecords(db *memdb.MemDB, tables ...string) (map[string]int, error) {
	txn := db.Txn(false)
	defer txn.Abort()

	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		it, err := txn.Get(table, "id")
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		n := 0
		for obj := it.Next(); obj != nil; obj = it.Next() {
			n++
		}
		counts[table] = n
	}
	return counts, nil
}
