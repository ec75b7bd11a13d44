package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
}

func TestPaginateFullAndLastPage(t *testing.T) {
	items := makeItems(13)

	first := Paginate(items, 1, 10)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, first.Items)
	assert.Equal(t, 13, first.TotalItems)
	assert.Equal(t, 2, first.TotalPages)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	last := Paginate(items, 2, 10)
	assert.Len(t, last.Items, 3)
	assert.Equal(t, []int{10, 11, 12}, last.Items)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestPaginateEveryPageSizeIsMinOfRemaining(t *testing.T) {
	items := makeItems(27)
	pageSize := 10
	for page := 1; page <= 3; page++ {
		got := Paginate(items, page, pageSize)
		remaining := 27 - (page-1)*pageSize
		want := pageSize
		if remaining < want {
			want = remaining
		}
		assert.Len(t, got.Items, want, "page %d", page)
	}
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := makeItems(13)

	tooFar := Paginate(items, 99, 10)
	assert.Equal(t, 2, tooFar.Number)
	assert.Len(t, tooFar.Items, 3)

	tooLow := Paginate(items, -5, 10)
	assert.Equal(t, 1, tooLow.Number)
	assert.Len(t, tooLow.Items, 10)
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate([]int{}, 5, 10)
	assert.Empty(t, got.Items)
	assert.Equal(t, 1, got.Number)
	assert.Equal(t, 1, got.TotalPages)
	assert.Equal(t, 0, got.TotalItems)
	assert.False(t, got.HasNext)
	assert.False(t, got.HasPrev)
}
