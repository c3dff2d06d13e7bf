// internal/app/persistence.go
package app

// SavePosition remembers the focused card of the current deck.
func (m *Model) SavePosition(index int) {
	m.StateMgr.SavePosition(m.Deck.Key(), index)
}
