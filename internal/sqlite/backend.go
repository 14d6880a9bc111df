package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/fooditems/internal/menu"
	"github.com/mesh-intelligence/fooditems/pkg/food"
	"github.com/mesh-intelligence/fooditems/pkg/types"
)

// Backend implements types.Journal with SQLite as the query engine and
// orders.jsonl as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	// now is the clock used for CreatedAt; tests replace it.
	now func() time.Time
}

var _ types.Journal = (*Backend)(nil)

// NewBackend creates a detached backend. Call Attach before use.
func NewBackend() *Backend {
	return &Backend{now: time.Now}
}

// Attach validates config, creates DataDir if needed, builds a fresh SQLite
// schema and loads orders.jsonl into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is rebuilt from JSONL every time.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbFileName, err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	jsonlPath := filepath.Join(dataDir, ordersJSONL)
	if err := ensureJSONL(jsonlPath); err != nil {
		db.Close()
		return err
	}
	if _, err := loadOrdersJSONL(db, jsonlPath); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	config.DataDir = dataDir
	b.config = config
	b.db = db
	b.attached = true
	return nil
}

// Detach closes the database. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		return err
	}
	return nil
}

// Record evaluates item, inserts the order and rewrites orders.jsonl.
// toppings is the recipe that built item, innermost first.
// Returns food.ErrNilItem if item is nil or a typed nil pointer.
func (b *Backend) Record(item food.Item, toppings []string) (*types.Order, error) {
	if food.IsNil(item) {
		return nil, food.ErrNilItem
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrJournalDetached
	}

	recipe := menu.FormatRecipe(toppings)
	order := &types.Order{
		OrderID:     newUUID(),
		Recipe:      recipe,
		Description: food.Describe(item),
		Fingerprint: types.RecipeFingerprint(recipe),
		Cost:        item.Cost(),
		CreatedAt:   b.now().UTC(),
	}

	if _, err := b.db.Exec(insertOrderSQL(),
		order.OrderID, order.Recipe, order.Description, order.Fingerprint,
		order.Cost, order.CreatedAt.Format(timeLayout),
	); err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	if err := b.persistOrdersLocked(); err != nil {
		return nil, fmt.Errorf("persisting orders: %w", err)
	}
	return order, nil
}

// Get returns the order with the given ID.
// Returns ErrInvalidID if id is empty, ErrNotFound if no order matches.
func (b *Backend) Get(id string) (*types.Order, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrJournalDetached
	}

	row := b.db.QueryRow(selectOrdersSQL()+" WHERE order_id = ?", id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}

// List returns the orders matching filter, oldest first.
// Returns ErrInvalidFilter for an unrecognized filter key.
func (b *Backend) List(filter types.Filter) ([]*types.Order, error) {
	where, args, err := buildWhere(filter)
	if err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrJournalDetached
	}
	return b.queryOrdersLocked(where, args)
}

func (b *Backend) queryOrdersLocked(where string, args []any) ([]*types.Order, error) {
	rows, err := b.db.Query(selectOrdersSQL()+where+" ORDER BY created_at, order_id", args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*types.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// persistOrdersLocked rewrites orders.jsonl from the orders table.
// The caller holds b.mu.
func (b *Backend) persistOrdersLocked() error {
	orders, err := b.queryOrdersLocked("", nil)
	if err != nil {
		return err
	}

	records := make([]json.RawMessage, 0, len(orders))
	for _, o := range orders {
		rec, err := json.Marshal(orderRecord{
			OrderID:     o.OrderID,
			Recipe:      o.Recipe,
			Description: o.Description,
			Fingerprint: o.Fingerprint,
			Cost:        o.Cost,
			CreatedAt:   o.CreatedAt.Format(timeLayout),
		})
		if err != nil {
			return fmt.Errorf("marshal order %s: %w", o.OrderID, err)
		}
		records = append(records, rec)
	}
	return writeJSONL(filepath.Join(b.config.DataDir, ordersJSONL), records)
}

// filterColumns maps filter keys to columns.
var filterColumns = map[string]string{
	types.FilterRecipe:      "recipe",
	types.FilterFingerprint: "fingerprint",
}

func buildWhere(filter types.Filter) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		if _, ok := filterColumns[k]; !ok {
			return "", nil, fmt.Errorf("%w %q", types.ErrInvalidFilter, k)
		}
		keys = append(keys, k)
	}
	// Stable clause order keeps the SQL deterministic.
	if len(keys) == 2 && keys[0] > keys[1] {
		keys[0], keys[1] = keys[1], keys[0]
	}

	clauses := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for _, k := range keys {
		clauses = append(clauses, filterColumns[k]+" = ?")
		args = append(args, filter[k])
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func selectOrdersSQL() string {
	return "SELECT " + strings.Join(orderColumns, ", ") + " FROM " + ordersTable
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*types.Order, error) {
	var (
		o         types.Order
		createdAt string
	)
	if err := row.Scan(&o.OrderID, &o.Recipe, &o.Description, &o.Fingerprint, &o.Cost, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at of %s: %w", o.OrderID, err)
	}
	o.CreatedAt = t
	return &o, nil
}

// newUUID generates a UUID v7, falling back to v4.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
