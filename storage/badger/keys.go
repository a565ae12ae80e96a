package badger

import "fmt"

// Key prefixes for different data types
const (
	syncStatePrefix = "syncst"
)

// makeSyncStateKey generates a key for a note's sync state.
func makeSyncStateKey(noteID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", syncStatePrefix, noteID))
}

// syncStateScanPrefix returns the iterator prefix covering all sync states.
func syncStateScanPrefix() []byte {
	return []byte(syncStatePrefix + ":")
}
