package storage

import (
	"encoding/json"

	"github.com/syndtr/goleveldb/leveldb"
)

// CacheClient is a small on-disk JSON cache backed by leveldb. It holds
// data that is expensive to refetch but safe to lose, such as resolved
// social links per mint.
type CacheClient struct {
	db *leveldb.DB
}

func NewCacheClient(dir string) (*CacheClient, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &CacheClient{db: db}, nil
}

// Get unmarshals the cached value for key into out. The bool reports
// whether the key was present.
func (c *CacheClient) Get(key string, out any) (bool, error) {
	data, err := c.db.Get([]byte(key), nil)
	if err == leveldb.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, out)
}

func (c *CacheClient) Put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.db.Put([]byte(key), data, nil)
}

func (c *CacheClient) Delete(key string) error {
	return c.db.Delete([]byte(key), nil)
}

func (c *CacheClient) Stop() {
	_ = c.db.Close()
}
