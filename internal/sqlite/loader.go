package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// orderRecord is the JSONL shape of one order. Unknown fields are ignored so
// newer journals still load.
type orderRecord struct {
	OrderID     string  `json:"order_id"`
	Recipe      string  `json:"recipe"`
	Description string  `json:"description"`
	Fingerprint string  `json:"fingerprint"`
	Cost        float64 `json:"cost"`
	CreatedAt   string  `json:"created_at"`
}

// loadOrdersJSONL inserts every record of path into the orders table inside
// one transaction: either all records load or none do. Records that do not
// decode, lack an order_id, or carry a created_at that is not RFC 3339 are
// skipped. created_at is stored in timeLayout so reads can parse it strictly.
func loadOrdersJSONL(db *sql.DB, path string) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertOrderSQL())
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for _, raw := range records {
		var rec orderRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.OrderID == "" {
			continue
		}
		createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
		if err != nil {
			continue
		}
		// Later lines win when an ID repeats.
		if _, err := tx.Exec("DELETE FROM orders WHERE order_id = ?", rec.OrderID); err != nil {
			return 0, fmt.Errorf("replacing order %s: %w", rec.OrderID, err)
		}
		if _, err := stmt.Exec(rec.OrderID, rec.Recipe, rec.Description, rec.Fingerprint, rec.Cost, createdAt.UTC().Format(timeLayout)); err != nil {
			return 0, fmt.Errorf("inserting order %s: %w", rec.OrderID, err)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}

func insertOrderSQL() string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(orderColumns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		ordersTable, strings.Join(orderColumns, ", "), placeholders)
}
