package hashtable

import (
	"hash/fnv"

	"github.com/navijation/structures/util"
)

const (
	defaultBucketCount = 16

	// resize when size exceeds maxLoadNumerator/maxLoadDenominator of the
	// bucket count
	maxLoadNumerator   = 3
	maxLoadDenominator = 4
)

type entry[V any] struct {
	key   string
	value V
}

// HashTable maps string keys to values with FNV-1a bucket selection and
// separate chaining. The bucket array doubles whenever the load factor
// crosses 3/4, rehashing every entry.
type HashTable[V any] struct {
	buckets [][]entry[V]
	size    int
}

func New[V any]() HashTable[V] {
	return HashTable[V]{
		buckets: make([][]entry[V], defaultBucketCount),
	}
}

func (me *HashTable[V]) Size() int {
	return me.size
}

func (me *HashTable[V]) IsEmpty() bool {
	return me.size == 0
}

// Set stores the value under key, replacing any previous value.
func (me *HashTable[V]) Set(key string, value V) {
	if (me.size+1)*maxLoadDenominator > len(me.buckets)*maxLoadNumerator {
		me.grow()
	}

	index := bucketIndex(key, len(me.buckets))
	for i, existing := range me.buckets[index] {
		if existing.key == key {
			me.buckets[index][i].value = value
			return
		}
	}

	me.buckets[index] = append(me.buckets[index], entry[V]{key: key, value: value})
	me.size++
}

func (me *HashTable[V]) Get(key string) util.Optional[V] {
	index := bucketIndex(key, len(me.buckets))
	for _, existing := range me.buckets[index] {
		if existing.key == key {
			return util.Some(existing.value)
		}
	}
	return util.None[V]()
}

// Delete removes the entry under key, returning the removed value or None
// when the key is absent.
func (me *HashTable[V]) Delete(key string) util.Optional[V] {
	index := bucketIndex(key, len(me.buckets))
	bucket := me.buckets[index]
	for i, existing := range bucket {
		if existing.key == key {
			bucket[i] = bucket[len(bucket)-1]
			me.buckets[index] = bucket[:len(bucket)-1]
			me.size--
			return util.Some(existing.value)
		}
	}
	return util.None[V]()
}

// Keys returns the stored keys in no particular order.
func (me *HashTable[V]) Keys() (out []string) {
	for _, bucket := range me.buckets {
		for _, existing := range bucket {
			out = append(out, existing.key)
		}
	}
	return out
}

func (me *HashTable[V]) grow() {
	next := make([][]entry[V], len(me.buckets)*2)
	for _, bucket := range me.buckets {
		for _, existing := range bucket {
			index := bucketIndex(existing.key, len(next))
			next[index] = append(next[index], existing)
		}
	}
	me.buckets = next
}

func bucketIndex(key string, bucketCount int) int {
	hasher := fnv.New32a()
	hasher.Write([]byte(key))
	return int(hasher.Sum32() % uint32(bucketCount))
}
