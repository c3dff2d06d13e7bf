// Package state remembers which card was last viewed in each deck.
// The carousel itself keeps no persistent state; the app restores the
// remembered position after building it.
package state

import (
	"database/sql"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/cardstack/internal/db"
)

const (
	appName      = "cardstack"
	dbFileName   = "cardstack.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]int
	flushing  map[string]int // taken by the debounce timer, not yet written
	inflight  sync.WaitGroup
	closed    bool
	debounce  time.Duration
	now       func() time.Time
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the store at path. ":memory:" gives a throwaway store.
func OpenPath(path string) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{
		db:       db,
		pending:  make(map[string]int),
		flushing: make(map[string]int),
		debounce: saveDebounce,
		now:      time.Now,
	}, nil
}

// Close writes outstanding positions and closes the database. It waits
// for a debounced save that is already running.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.takePending()
	m.saveMu.Unlock()

	m.inflight.Wait()

	// Flush pending positions
	err := m.flush(pending)
	if cerr := m.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// GetPosition returns the remembered active index for deck.
func (m *Manager) GetPosition(deck string) (int, bool, error) {
	m.saveMu.Lock()
	index, ok := m.pending[deck]
	if !ok {
		index, ok = m.flushing[deck]
	}
	m.saveMu.Unlock()
	if ok {
		return index, true, nil
	}
	return getPosition(m.db, deck)
}

// SavePosition remembers index for deck. Writes are debounced so rapid
// swiping costs one write.
func (m *Manager) SavePosition(deck string, index int) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[deck] = index
	if m.closed {
		return
	}

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(m.debounce, m.flushPending)
}

// flushPending runs on the debounce timer. Taken positions stay readable
// through flushing until they are written.
func (m *Manager) flushPending() {
	m.saveMu.Lock()
	if m.closed {
		m.saveMu.Unlock()
		return
	}
	pending := m.takePending()
	for deck, index := range pending {
		m.flushing[deck] = index
	}
	m.inflight.Add(1)
	m.saveMu.Unlock()
	defer m.inflight.Done()

	if err := m.flush(pending); err != nil {
		slog.Error("save deck positions", "err", err)
	}

	m.saveMu.Lock()
	for deck, index := range pending {
		if m.flushing[deck] == index {
			delete(m.flushing, deck)
		}
	}
	m.saveMu.Unlock()
}

// takePending must be called with saveMu held.
func (m *Manager) takePending() map[string]int {
	pending := m.pending
	m.pending = make(map[string]int)
	return pending
}

func (m *Manager) flush(pending map[string]int) error {
	if len(pending) == 0 {
		return nil
	}
	now := m.now()
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		for deck, index := range pending {
			if err := savePosition(tx, deck, index, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
