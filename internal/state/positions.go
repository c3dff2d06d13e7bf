package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/cardstack/internal/db"
)

func getPosition(db *sql.DB, deck string) (int, bool, error) {
	var index sql.NullInt64
	err := db.QueryRow(`SELECT active_index FROM deck_positions WHERE deck = ?`, deck).Scan(&index)
	if errors.Is(err, sql.ErrNoRows) {
		return -1, false, nil
	}
	if err != nil {
		return -1, false, err
	}
	return int(dbutil.NullInt64Value(index, -1)), index.Valid, nil
}

func savePosition(tx *sql.Tx, deck string, index int, now time.Time) error {
	_, err := tx.Exec(`
		INSERT INTO deck_positions (deck, active_index, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(deck) DO UPDATE SET
			active_index = excluded.active_index,
			updated_at = excluded.updated_at
	`, deck, index, now.Unix())
	return err
}
