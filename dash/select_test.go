package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtons_Tap(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var (
		b        = NewButtons(q)
		selected []int
		settled  []bool
	)
	b.OnSelect(func(i int) {
		selected = append(selected, i)
		settled = append(settled, b.Highlighted(i))
	})
	q.Sync(func() {
		b.SetTitles(DefaultPeriodTitles)
		b.Tap(3)
		assert.Equal(t, 3, b.Current())
		assert.Empty(t, selected)
	})
	q.Sync(func() {})

	assert.Equal(t, []int{3}, selected)
	assert.Equal(t, []bool{true}, settled)
	assert.True(t, b.Highlighted(3))
	assert.False(t, b.Highlighted(0))
}

func TestButtons_OutOfRange(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var (
		b     = NewButtons(q)
		calls int
	)
	b.OnSelect(func(int) {
		calls++
	})
	q.Sync(func() {
		b.Tap(0)
		b.SetTitles(DefaultPeriodTitles)
		b.Tap(6)
		b.Tap(-1)
		b.SetTitles(nil)
		b.SetCurrent(2)
	})
	q.Sync(func() {})

	assert.Zero(t, calls)
	assert.Equal(t, 2, b.Current())
	assert.False(t, b.Highlighted(2))
}

func TestDropList_OpenClose(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	d := NewDropList(q)
	d.RowHeight = 35
	assert.True(t, d.Hidden())

	d.SetTitles([]string{"YIELD", "PRICE", "SPREAD"})
	assert.False(t, d.Hidden())
	assert.Equal(t, []string{"YIELD"}, d.Rows())
	assert.Equal(t, 35.0, d.Height())

	d.Tap(0)
	assert.True(t, d.IsOpen())
	assert.Len(t, d.Rows(), 3)
	assert.Equal(t, 105.0, d.Height())

	d.MaxHeight = 70
	assert.Equal(t, 70.0, d.Height())
	assert.True(t, d.Scrollable())

	d.Tap(0)
	assert.False(t, d.IsOpen())
	assert.False(t, d.Scrollable())

	d.Tap(0)
	d.Hide()
	assert.False(t, d.IsOpen())
}

func TestDropList_Select(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var (
		d        = NewDropList(q)
		selected []int
		closed   []bool
	)
	d.OnSelect(func(i int) {
		selected = append(selected, i)
		closed = append(closed, !d.IsOpen())
	})
	q.Sync(func() {
		d.SetTitles([]string{"YIELD", "PRICE", "SPREAD"})
		d.Tap(0)
		d.Tap(2)
		assert.Equal(t, []string{"SPREAD", "YIELD", "PRICE"}, d.Rows())
		assert.True(t, d.IsOpen())
	})
	q.Sync(func() {})
	q.Sync(func() {})

	require.Equal(t, []int{2}, selected)
	assert.Equal(t, []bool{true}, closed)
	assert.Equal(t, "SPREAD", d.Selected())

	q.Sync(func() {
		d.Tap(0)
		d.Tap(2)
		assert.Equal(t, []string{"PRICE", "YIELD", "SPREAD"}, d.Rows())
	})
	q.Sync(func() {})
	q.Sync(func() {})
	assert.Equal(t, []int{2, 1}, selected)
}

func TestDropList_SingleRow(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	d := NewDropList(q)
	d.Tap(0)
	assert.False(t, d.IsOpen())
	assert.Empty(t, d.Rows())
	assert.Empty(t, d.Selected())

	d.SetTitles([]string{"YIELD"})
	d.Tap(0)
	assert.False(t, d.IsOpen())
}
