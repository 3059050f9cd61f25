// Package store is the local key-value backend: JSON-serialized values under
// the fixed string keys listed in keys.go. There is no schema enforcement;
// repositories own the shape of each key.
package store

// Tx is the read-modify-write surface shared by a plain store handle and the
// transaction passed to Update.
type Tx interface {
	// Get decodes the value under key into `into`. found is false when the
	// key is absent; a non-nil error means the stored blob did not decode.
	Get(key string, into any) (found bool, err error)
	Set(key string, v any) error
	Remove(key string) error
}

// Store adds atomic multi-key updates on top of Tx. Everything written inside
// one Update callback becomes visible together or not at all.
type Store interface {
	Tx
	Update(fn func(tx Tx) error) error
	Close() error
}
