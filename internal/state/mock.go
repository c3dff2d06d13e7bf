package state

// Mock is a test double for Manager.
type Mock struct {
	Positions map[string]int
	Saves     int
	Err       error
	Closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{Positions: make(map[string]int)}
}

func (m *Mock) GetPosition(deck string) (int, bool, error) {
	if m.Err != nil {
		return -1, false, m.Err
	}
	index, ok := m.Positions[deck]
	if !ok {
		return -1, false, nil
	}
	return index, true, nil
}

func (m *Mock) SavePosition(deck string, index int) {
	m.Positions[deck] = index
	m.Saves++
}

func (m *Mock) Close() error {
	m.Closed = true
	return nil
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
