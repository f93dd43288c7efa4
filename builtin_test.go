package hashmap_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/hashmap"
)

var _ = Describe("Builtin Map", func() {
	var m *hashmap.BuiltinMap[int]

	BeforeEach(func() {
		m = hashmap.NewBuiltinMap[int](10)
	})

	It("should store and load values", func() {
		m.Store("key1", 42)

		value, ok := m.Load("key1")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(42))
	})

	It("should return false for non-existent keys", func() {
		_, ok := m.Load("key2")
		Expect(ok).To(BeFalse())
	})

	It("should overwrite the value when a key is stored again", func() {
		m.Store("key3", 84)
		m.Store("key3", 168)

		value, ok := m.Load("key3")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(168))
		Expect(m.Len()).To(Equal(1))
	})

	It("should iterate over elements with Range", func() {
		m.Store("key7", 10)
		m.Store("key8", 20)
		m.Store("key9", 30)

		elements := make(map[string]int)
		m.Range(func(k string, v int) bool {
			elements[k] = v
			return true
		})

		Expect(elements).To(HaveKeyWithValue("key7", 10))
		Expect(elements).To(HaveKeyWithValue("key8", 20))
		Expect(elements).To(HaveKeyWithValue("key9", 30))
	})

	It("should return the correct length", func() {
		m.Store("key10", 100)
		m.Store("key11", 200)
		Expect(m.Len()).To(Equal(2))
	})
})

var _ = Describe("Map Implementations", func() {
	It("should agree on behavior across backends", func() {
		backends := map[string]hashmap.Map[int]{
			"table":   hashmap.New[int](),
			"builtin": hashmap.NewBuiltinMap[int](hashmap.DefaultCapacity),
		}

		for name, m := range backends {
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("key%d", i)
				stored, err := m.Store(key, i)
				Expect(err).To(BeNil(), name)
				Expect(stored).To(Equal(key), name)
			}

			Expect(m.Len()).To(Equal(100), name)

			visited := 0
			m.Range(func(key string, value int) bool {
				visited++
				v, ok := m.Load(key)
				Expect(ok).To(BeTrue(), name)
				Expect(v).To(Equal(value), name)
				return true
			})
			Expect(visited).To(Equal(100), name)
		}
	})
})
