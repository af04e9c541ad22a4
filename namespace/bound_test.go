package namespace_test

import (
	"bytes"
	"math/rand"

	"github.com/arya-analytics/keyspace/namespace"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bound", func() {
	DescribeTable("Should compute the same-length upper bound",
		func(prefix, expected string) {
			Expect(string(namespace.Bound([]byte(prefix)))).To(Equal(expected))
		},
		Entry("simple increment", "bob", "boc"),
		Entry("increment to 0xFF", "fo\xfe", "fo\xff"),
		Entry("single roll over", "fo\xff", "fp\x00"),
		Entry("multiple roll over", "fo\xff\xff\xff", "fp\x00\x00\x00"),
		Entry("leading 0xFF", "\xffabc", "\xffabd"),
		Entry("all 0xFF degenerates to zeros", "\xff\xff", "\x00\x00"),
	)

	It("Should not modify its input", func() {
		p := []byte("fo\xff")
		namespace.Bound(p)
		Expect(p).To(Equal([]byte("fo\xff")))
	})
})

var _ = Describe("UpperBound", func() {
	DescribeTable("Should compute the shortest upper bound",
		func(prefix string, expected []byte) {
			Expect(namespace.UpperBound([]byte(prefix))).To(Equal(expected))
		},
		Entry("simple increment", "bob", []byte("boc")),
		Entry("trailing 0xFF", "fo\xff", []byte("fp")),
		Entry("multiple trailing 0xFF", "fo\xff\xff\xff", []byte("fp")),
		Entry("leading 0xFF", "\xffabc", []byte("\xffabd")),
		Entry("all 0xFF is unbounded", "\xff\xff", nil),
		Entry("empty is unbounded", "", nil),
	)

	It("Should contain exactly the keys with the prefix", func() {
		r := rand.New(rand.NewSource(0))
		alphabet := []byte{0x00, 0x01, 'f', 'o', 'p', 0xfe, 0xff}
		randKey := func(n int) []byte {
			k := make([]byte, n)
			for i := range k {
				k[i] = alphabet[r.Intn(len(alphabet))]
			}
			return k
		}
		for i := 0; i < 2000; i++ {
			p, k := randKey(1+r.Intn(3)), randKey(r.Intn(6))
			end := namespace.UpperBound(p)
			inRange := bytes.Compare(k, p) >= 0 && (end == nil || bytes.Compare(k, end) < 0)
			Expect(inRange).To(Equal(bytes.HasPrefix(k, p)), "prefix %x key %x", p, k)
		}
	})

	It("Should agree with Bound for encoded prefixes not ending in 0xFF", func() {
		p := namespace.MustEncodeNested([]byte("foo"), []byte("bar"))
		Expect(namespace.UpperBound(p)).To(Equal(namespace.Bound(p)))
	})
})
