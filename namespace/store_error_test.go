package namespace_test

import (
	"github.com/arya-analytics/keyspace/codec"
	"github.com/arya-analytics/keyspace/kv"
	"github.com/arya-analytics/keyspace/namespace"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var errStore = errors.New("store failed")

// failingReader yields a single entry from every scan and then fails.
type failingReader struct {
	key, value []byte
	iters      []*failingIterator
}

func (r *failingReader) Get([]byte) ([]byte, error) { return nil, errStore }

func (r *failingReader) Range(_, _ []byte, _ kv.Order) kv.Iterator {
	iter := &failingIterator{key: r.key, value: r.value}
	r.iters = append(r.iters, iter)
	return iter
}

type failingIterator struct {
	key, value []byte
	pos        int
	closes     int
}

func (i *failingIterator) Next() bool {
	i.pos++
	return i.pos == 1
}

func (i *failingIterator) Key() []byte { return i.key }

func (i *failingIterator) Value() []byte { return i.value }

func (i *failingIterator) Error() error {
	if i.pos > 1 {
		return errStore
	}
	return nil
}

func (i *failingIterator) Close() error {
	i.closes++
	return errStore
}

var _ = Describe("Store errors", func() {
	var (
		prefix []byte
		r      *failingReader
	)
	BeforeEach(func() {
		prefix = namespace.MustEncodeNested([]byte("a"))
		r = &failingReader{
			key:   namespace.Concat(prefix, []byte("k")),
			value: []byte(`{"name":"ann","age":7}`),
		}
	})

	It("Should forward the store error through Error and Close", func() {
		iter := namespace.Range(r, prefix, nil, nil, kv.Ascending)
		Expect(iter.Next()).To(BeTrue())
		Expect(iter.Key()).To(Equal([]byte("k")))
		Expect(iter.Next()).To(BeFalse())
		Expect(errors.Is(iter.Error(), errStore)).To(BeTrue())
		Expect(errors.Is(iter.Close(), errStore)).To(BeTrue())
		Expect(errors.Is(iter.Close(), errStore)).To(BeTrue())
		Expect(errors.Is(iter.Error(), errStore)).To(BeTrue())
		Expect(r.iters).To(HaveLen(1))
		Expect(r.iters[0].closes).To(Equal(1))
	})

	It("Should return the entries decoded before the failure along with the error", func() {
		entries, err := namespace.RangeTyped[person](r, prefix, nil, nil, kv.Descending, codec.JSON).Collect()
		Expect(errors.Is(err, errStore)).To(BeTrue())
		Expect(entries).To(HaveLen(1))
		Expect(string(entries[0].Key)).To(Equal("k"))
		Expect(entries[0].Err).ToNot(HaveOccurred())
		Expect(entries[0].Value).To(Equal(person{Name: "ann", Age: 7}))
		Expect(r.iters[0].closes).To(Equal(1))
	})
})
