package memkv_test

import (
	"github.com/arya-analytics/keyspace/kv"
	"github.com/arya-analytics/keyspace/kv/kvtest"
	"github.com/arya-analytics/keyspace/kv/memkv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = kvtest.StoreSpec("memkv", func() kv.Store { return memkv.Open() })

var _ = Describe("MemKV", func() {
	It("Should not observe writes made after a scan is opened", func() {
		db := memkv.Open()
		Expect(db.Set([]byte("a"), []byte("1"))).To(Succeed())
		iter := db.Range(nil, nil, kv.Ascending)
		Expect(db.Set([]byte("b"), []byte("2"))).To(Succeed())
		Expect(kvtest.Collect(iter)).To(Equal([]kvtest.Pair{{Key: "a", Value: "1"}}))
	})
	It("Should stop yielding after close", func() {
		db := memkv.Open()
		Expect(db.Set([]byte("a"), []byte("1"))).To(Succeed())
		iter := db.Range(nil, nil, kv.Ascending)
		Expect(iter.Close()).To(Succeed())
		Expect(iter.Next()).To(BeFalse())
	})
	It("Should keep scanning its snapshot while keys are deleted", func() {
		db := memkv.Open()
		for _, k := range []string{"a", "b", "c"} {
			Expect(db.Set([]byte(k), []byte(k))).To(Succeed())
		}
		iter := db.Range([]byte("a"), []byte("c"), kv.Descending)
		Expect(iter.Next()).To(BeTrue())
		Expect(iter.Key()).To(Equal([]byte("b")))
		Expect(db.Delete([]byte("a"))).To(Succeed())
		Expect(db.Set([]byte("a\x00"), []byte("x"))).To(Succeed())
		Expect(iter.Next()).To(BeTrue())
		Expect(iter.Key()).To(Equal([]byte("a")))
		Expect(iter.Next()).To(BeFalse())
		Expect(iter.Next()).To(BeFalse())
		Expect(iter.Close()).To(Succeed())
	})
})
