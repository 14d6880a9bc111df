// Package sqlite exposes the SQLite order journal to programs that embed
// fooditems as a library.
package sqlite

import (
	"github.com/mesh-intelligence/fooditems/internal/sqlite"
	"github.com/mesh-intelligence/fooditems/pkg/types"
)

// NewJournal creates a detached SQLite journal.
//
//	j := sqlite.NewJournal()
//	if err := j.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
//		return err
//	}
//	defer j.Detach()
func NewJournal() types.Journal {
	return sqlite.NewBackend()
}
