package store

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("camprent")

// BoltStore persists all keys as JSON blobs in a single bbolt bucket.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error { return s.db.Close() }

type boltTx struct {
	b *bolt.Bucket
}

func (t *boltTx) Get(key string, into any) (bool, error) {
	raw := t.b.Get([]byte(key))
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return true, err
	}
	return true, nil
}

func (t *boltTx) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return t.b.Put([]byte(key), raw)
}

func (t *boltTx) Remove(key string) error {
	return t.b.Delete([]byte(key))
}

func (s *BoltStore) Get(key string, into any) (found bool, err error) {
	verr := s.db.View(func(tx *bolt.Tx) error {
		found, err = (&boltTx{b: tx.Bucket(bucketName)}).Get(key, into)
		return nil
	})
	if verr != nil {
		return false, verr
	}
	return found, err
}

func (s *BoltStore) Set(key string, v any) error {
	return s.Update(func(tx Tx) error { return tx.Set(key, v) })
}

func (s *BoltStore) Remove(key string) error {
	return s.Update(func(tx Tx) error { return tx.Remove(key) })
}

func (s *BoltStore) Update(fn func(tx Tx) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(&boltTx{b: tx.Bucket(bucketName)})
	})
}
