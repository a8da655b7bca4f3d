package deltacache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMissReturnsNil(t *testing.T) {
	c := New()
	assert.Nil(t, c.Get(26, ""))
}

func TestPutThenGet(t *testing.T) {
	c := New()
	c.Put(26, "", FieldMap{"message": "hi", "turn": int32(10)})

	got := c.Get(26, "")
	assert.Equal(t, FieldMap{"message": "hi", "turn": int32(10)}, got)
}

func TestGetReturnsCopyNotAliasedToStore(t *testing.T) {
	c := New()
	c.Put(16, "", FieldMap{"global_advances": []bool{true, false}})

	got := c.Get(16, "")
	got["global_advances"].([]bool)[0] = false // mutate the returned copy

	again := c.Get(16, "")
	assert.Equal(t, []bool{true, false}, again["global_advances"])
}

func TestPutCopiesInputNotAliasedAfterward(t *testing.T) {
	c := New()
	input := FieldMap{"global_advances": []bool{true, false}}
	c.Put(16, "", input)

	input["global_advances"].([]bool)[0] = false // mutate caller's copy after Put

	stored := c.Get(16, "")
	assert.Equal(t, []bool{true, false}, stored["global_advances"])
}

func TestDifferentKeyTuplesAreIndependent(t *testing.T) {
	c := New()
	c.Put(148, "1", FieldMap{"id": uint16(1), "adjective": "Roman"})
	c.Put(148, "2", FieldMap{"id": uint16(2), "adjective": "Greek"})

	assert.Equal(t, "Roman", c.Get(148, "1")["adjective"])
	assert.Equal(t, "Greek", c.Get(148, "2")["adjective"])
}

func TestClearEmptiesCache(t *testing.T) {
	c := New()
	c.Put(26, "", FieldMap{"message": "hi"})
	c.Clear()

	assert.Nil(t, c.Get(26, ""))
}
