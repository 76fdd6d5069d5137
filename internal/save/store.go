package save

import "context"

// Store is the persistence boundary: it moves SaveData to and from disk.
// The coordinator never touches bytes; stores never touch registries.
type Store interface {
	// Save persists a snapshot.
	Save(ctx context.Context, data *SaveData) error
	// Load returns the most recent snapshot. The second return is false
	// when nothing has been saved yet.
	Load(ctx context.Context) (*SaveData, bool, error)
}
