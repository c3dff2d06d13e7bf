package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetPosition(deck string) (int, bool, error)
	SavePosition(deck string, index int)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
