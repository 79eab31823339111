package store

import "github.com/dgraph-io/badger/v4"

// PutRaw stores arbitrary bytes under a length key, bypassing encoding.
func (s *BadgerStore) PutRaw(wordLength int, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(wordLength), data)
	})
}
