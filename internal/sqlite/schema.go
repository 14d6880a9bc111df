// Package sqlite implements the SQLite order journal.
// SQLite is the query engine; orders.jsonl in the data directory is the
// source of truth and is loaded into a fresh database on every Attach.
package sqlite

// File names inside the data directory.
const (
	dbFileName  = "journal.db"
	ordersJSONL = "orders.jsonl"
	ordersTable = "orders"
)

// timeLayout is fixed width so that created_at sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const createOrders = `CREATE TABLE orders (
    order_id TEXT PRIMARY KEY,
    recipe TEXT NOT NULL,
    description TEXT NOT NULL,
    fingerprint TEXT NOT NULL,
    cost REAL NOT NULL,
    created_at TEXT NOT NULL
);`

const (
	idxOrdersFingerprint = `CREATE INDEX idx_orders_fingerprint ON orders(fingerprint);`
	idxOrdersCreated     = `CREATE INDEX idx_orders_created ON orders(created_at, order_id);`
)

// schemaDDL lists the CREATE statements run on Attach, tables first.
var schemaDDL = []string{
	createOrders,
	idxOrdersFingerprint,
	idxOrdersCreated,
}

// orderColumns is the column order shared by the loader and the queries.
var orderColumns = []string{"order_id", "recipe", "description", "fingerprint", "cost", "created_at"}
