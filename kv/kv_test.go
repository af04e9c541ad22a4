package kv_test

import (
	"github.com/arya-analytics/keyspace/kv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("KV", func() {
	Describe("IsEmptyRange", func() {
		DescribeTable("Should detect ranges that can't hold keys",
			func(start, end []byte, expected bool) {
				Expect(kv.IsEmptyRange(start, end)).To(Equal(expected))
			},
			Entry("unbounded", nil, nil, false),
			Entry("unbounded end", []byte("a"), nil, false),
			Entry("unbounded start", nil, []byte("a"), false),
			Entry("ordered", []byte("a"), []byte("b"), false),
			Entry("equal", []byte("a"), []byte("a"), true),
			Entry("reversed", []byte("b"), []byte("a"), true),
		)
	})
	Describe("EmptyIterator", func() {
		It("Should yield nothing", func() {
			iter := kv.EmptyIterator()
			Expect(iter.Next()).To(BeFalse())
			Expect(iter.Error()).ToNot(HaveOccurred())
			Expect(iter.Close()).To(Succeed())
		})
	})
	Describe("Order", func() {
		It("Should print the scan direction", func() {
			Expect(kv.Ascending.String()).To(Equal("ascending"))
			Expect(kv.Descending.String()).To(Equal("descending"))
		})
	})
})
