package memtable

import (
	"encoding/binary"
	"github.com/coocood/freecache"
)

const nameKeyPrefix = "campaign:name:"

// NameIndex caches campaign name to id in process memory, both never change once created
type NameIndex struct {
	cache *freecache.Cache
}

// New creates freecache with size in bytes
func New(size int) *NameIndex {
	return &NameIndex{
		cache: freecache.NewCache(size),
	}
}

func nameKey(name string) []byte {
	return []byte(nameKeyPrefix + name)
}

// Get ...
func (m *NameIndex) Get(name string) (campaignID int64, ok bool) {
	data, err := m.cache.Get(nameKey(name))
	if err != nil {
		return 0, false
	}
	if len(data) != 8 {
		return 0, false
	}
	return int64(binary.LittleEndian.Uint64(data)), true
}

// Set ...
func (m *NameIndex) Set(name string, campaignID int64) {
	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], uint64(campaignID))
	_ = m.cache.Set(nameKey(name), data[:], 0)
}

// Delete ...
func (m *NameIndex) Delete(name string) {
	m.cache.Del(nameKey(name))
}

// Count returns the number of cached names
func (m *NameIndex) Count() int64 {
	return m.cache.EntryCount()
}
