// Package kvtest holds a ginkgo specification that every kv.Store
// implementation must satisfy.
package kvtest

import (
	"github.com/arya-analytics/keyspace/kv"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Pair is a key-value pair collected from an iterator.
type Pair struct {
	Key   string
	Value string
}

// Collect drains iter into a slice of pairs and closes it.
func Collect(iter kv.Iterator) ([]Pair, error) {
	var pairs []Pair
	for iter.Next() {
		pairs = append(pairs, Pair{Key: string(iter.Key()), Value: string(iter.Value())})
	}
	if err := iter.Error(); err != nil {
		_ = iter.Close()
		return pairs, err
	}
	return pairs, iter.Close()
}

// StoreSpec registers the conformance specification for the store returned by
// open. A fresh store is opened before each spec and closed after it.
func StoreSpec(name string, open func() kv.Store) bool {
	return Describe(name+" conformance", func() {
		var store kv.Store
		BeforeEach(func() {
			store = open()
			for _, p := range []Pair{
				{"a", "1"},
				{"b", "2"},
				{"b\x00", "3"},
				{"c", "4"},
				{"d\xff", "5"},
			} {
				Expect(store.Set([]byte(p.Key), []byte(p.Value))).To(Succeed())
			}
		})
		AfterEach(func() { Expect(store.Close()).To(Succeed()) })

		Describe("Get", func() {
			It("Should return a stored value", func() {
				Expect(store.Get([]byte("b\x00"))).To(Equal([]byte("3")))
			})
			It("Should return ErrNotFound for a missing key", func() {
				_, err := store.Get([]byte("z"))
				Expect(errors.Is(err, kv.ErrNotFound)).To(BeTrue())
			})
		})

		Describe("Set", func() {
			It("Should overwrite an existing value", func() {
				Expect(store.Set([]byte("a"), []byte("10"))).To(Succeed())
				Expect(store.Get([]byte("a"))).To(Equal([]byte("10")))
			})
			It("Should not retain the caller's buffers", func() {
				k, v := []byte("e"), []byte("6")
				Expect(store.Set(k, v)).To(Succeed())
				v[0] = '7'
				Expect(store.Get([]byte("e"))).To(Equal([]byte("6")))
			})
		})

		Describe("Delete", func() {
			It("Should remove a key", func() {
				Expect(store.Delete([]byte("a"))).To(Succeed())
				_, err := store.Get([]byte("a"))
				Expect(errors.Is(err, kv.ErrNotFound)).To(BeTrue())
			})
			It("Should not fail on a missing key", func() {
				Expect(store.Delete([]byte("z"))).To(Succeed())
			})
		})

		Describe("Range", func() {
			It("Should scan the full store in ascending order", func() {
				Expect(Collect(store.Range(nil, nil, kv.Ascending))).To(Equal([]Pair{
					{"a", "1"}, {"b", "2"}, {"b\x00", "3"}, {"c", "4"}, {"d\xff", "5"},
				}))
			})
			It("Should scan the full store in descending order", func() {
				Expect(Collect(store.Range(nil, nil, kv.Descending))).To(Equal([]Pair{
					{"d\xff", "5"}, {"c", "4"}, {"b\x00", "3"}, {"b", "2"}, {"a", "1"},
				}))
			})
			It("Should include the start key and exclude the end key", func() {
				Expect(Collect(store.Range([]byte("b"), []byte("c"), kv.Ascending))).To(Equal([]Pair{
					{"b", "2"}, {"b\x00", "3"},
				}))
			})
			It("Should respect both bounds when descending", func() {
				Expect(Collect(store.Range([]byte("b"), []byte("c"), kv.Descending))).To(Equal([]Pair{
					{"b\x00", "3"}, {"b", "2"},
				}))
			})
			It("Should exclude an end key that exists when descending", func() {
				Expect(Collect(store.Range([]byte("a"), []byte("b"), kv.Descending))).To(Equal([]Pair{
					{"a", "1"},
				}))
			})
			It("Should support an unbounded start", func() {
				Expect(Collect(store.Range(nil, []byte("b"), kv.Ascending))).To(Equal([]Pair{
					{"a", "1"},
				}))
			})
			It("Should support an unbounded end", func() {
				Expect(Collect(store.Range([]byte("c"), nil, kv.Descending))).To(Equal([]Pair{
					{"d\xff", "5"}, {"c", "4"},
				}))
			})
			It("Should return nothing for an inverted range", func() {
				Expect(Collect(store.Range([]byte("c"), []byte("a"), kv.Ascending))).To(BeEmpty())
			})
			It("Should be safely abandoned before exhaustion", func() {
				iter := store.Range(nil, nil, kv.Ascending)
				Expect(iter.Next()).To(BeTrue())
				Expect(iter.Close()).To(Succeed())
				Expect(store.Set([]byte("f"), []byte("7"))).To(Succeed())
				Expect(store.Get([]byte("f"))).To(Equal([]byte("7")))
			})
		})
	})
}
