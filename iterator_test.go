package hashmap_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/hashmap"
)

var _ = Describe("Iterator", func() {
	var table *hashmap.Table[string]

	BeforeEach(func() {
		table = hashmap.New[string]()
	})

	It("should report exhaustion immediately on an empty table", func() {
		it := table.Iterator()
		Expect(it.Next()).To(BeFalse())
		Expect(it.Next()).To(BeFalse())
	})

	It("should visit every entry exactly once", func() {
		table.Store("keyA", "valueA")
		table.Store("keyB", "valueB")
		table.Store("keyC", "valueC")

		visited := make(map[string]string)
		steps := 0

		it := table.Iterator()
		for it.Next() {
			steps++
			visited[it.Key()] = it.Value()
		}

		Expect(steps).To(Equal(3))
		Expect(visited).To(HaveLen(3))
		Expect(visited).To(HaveKeyWithValue("keyA", "valueA"))
		Expect(visited).To(HaveKeyWithValue("keyB", "valueB"))
		Expect(visited).To(HaveKeyWithValue("keyC", "valueC"))
	})

	It("should stay exhausted once the pass completes", func() {
		table.Store("keyA", "valueA")

		it := table.Iterator()
		Expect(it.Next()).To(BeTrue())
		Expect(it.Next()).To(BeFalse())
		Expect(it.Next()).To(BeFalse())
	})

	It("should start over with a fresh iterator", func() {
		table.Store("keyA", "valueA")
		table.Store("keyB", "valueB")

		count := func() (n int) {
			it := table.Iterator()
			for it.Next() {
				n++
			}
			return
		}

		Expect(count()).To(Equal(2))
		Expect(count()).To(Equal(2))
	})

	It("should observe the latest value for an updated key", func() {
		table.Store("keyA", "old")
		table.Store("keyA", "new")

		it := table.Iterator()
		Expect(it.Next()).To(BeTrue())
		Expect(it.Key()).To(Equal("keyA"))
		Expect(it.Value()).To(Equal("new"))
		Expect(it.Next()).To(BeFalse())
	})

	It("should visit every entry of a table that has grown", func() {
		for i := 0; i < 40; i++ {
			table.Store(fmt.Sprintf("key%d", i), fmt.Sprint(i))
		}

		visited := 0
		it := table.Iterator()
		for it.Next() {
			visited++
		}

		Expect(visited).To(Equal(40))
	})
})

var _ = Describe("Table Range", func() {
	var table *hashmap.Table[int]

	BeforeEach(func() {
		table = hashmap.New[int]()
		table.Store("key1", 10)
		table.Store("key2", 20)
		table.Store("key3", 30)
	})

	It("should iterate over every element", func() {
		elements := make(map[string]int)
		table.Range(func(k string, v int) bool {
			elements[k] = v
			return true
		})

		Expect(elements).To(HaveKeyWithValue("key1", 10))
		Expect(elements).To(HaveKeyWithValue("key2", 20))
		Expect(elements).To(HaveKeyWithValue("key3", 30))
	})

	It("should stop as soon as the callback returns false", func() {
		visited := 0
		table.Range(func(k string, v int) bool {
			visited++
			return false
		})

		Expect(visited).To(Equal(1))
	})
})
