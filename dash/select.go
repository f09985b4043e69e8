package dash

import (
	"golang.org/x/exp/slices"
)

// Buttons is the horizontal strip of period buttons. Only one button is
// highlighted at a time.
type Buttons struct {
	queue    *Queue
	titles   []string
	current  int
	onSelect func(int)
}

func NewButtons(q *Queue) *Buttons {
	return &Buttons{
		queue: q,
	}
}

func (b *Buttons) OnSelect(fn func(int)) {
	b.onSelect = fn
}

func (b *Buttons) SetTitles(titles []string) {
	b.titles = slices.Clone(titles)
}

func (b *Buttons) Titles() []string {
	return b.titles
}

func (b *Buttons) Len() int {
	return len(b.titles)
}

// SetCurrent highlights the button at index without notifying.
func (b *Buttons) SetCurrent(index int) {
	b.current = index
}

func (b *Buttons) Current() int {
	return b.current
}

// Highlighted reports whether the button at index is the selected one.
func (b *Buttons) Highlighted(index int) bool {
	return index >= 0 && index < len(b.titles) && index == b.current
}

// Tap highlights the button at index first, then notifies the selection on the
// queue so the new highlight is settled before anyone reacts to it.
func (b *Buttons) Tap(index int) {
	if index < 0 || index >= len(b.titles) {
		return
	}
	b.current = index
	if b.onSelect == nil {
		return
	}
	fn := b.onSelect
	b.queue.Post(func() {
		fn(index)
	})
}

// DropList shows its selected row first. Tapping the first row opens or closes
// it, tapping another row selects it.
type DropList struct {
	queue    *Queue
	source   []string
	rows     []string
	open     bool
	onSelect func(int)

	RowHeight float64
	MaxHeight float64
}

func NewDropList(q *Queue) *DropList {
	return &DropList{
		queue: q,
	}
}

func (d *DropList) OnSelect(fn func(int)) {
	d.onSelect = fn
}

func (d *DropList) SetTitles(titles []string) {
	d.source = slices.Clone(titles)
	d.rows = slices.Clone(titles)
}

func (d *DropList) Hidden() bool {
	return len(d.source) == 0
}

func (d *DropList) IsOpen() bool {
	return d.open
}

// Rows gives the visible rows: all of them when open, only the selected one
// otherwise.
func (d *DropList) Rows() []string {
	if d.open || len(d.rows) == 0 {
		return d.rows
	}
	return d.rows[:1]
}

func (d *DropList) Selected() string {
	if len(d.rows) == 0 {
		return ""
	}
	return d.rows[0]
}

// Height gives the height of the visible rows, limited by MaxHeight when set.
func (d *DropList) Height() float64 {
	h := float64(len(d.Rows())) * d.RowHeight
	if d.MaxHeight > 0 && h > d.MaxHeight {
		return d.MaxHeight
	}
	return h
}

// Scrollable reports whether the open list is taller than MaxHeight.
func (d *DropList) Scrollable() bool {
	return d.open && d.MaxHeight > 0 && float64(len(d.rows))*d.RowHeight > d.MaxHeight
}

func (d *DropList) Hide() {
	d.open = false
}

func (d *DropList) Tap(row int) {
	if !d.open {
		d.open = len(d.rows) > 1
		return
	}
	if row == 0 {
		d.open = false
		return
	}
	if row < 0 || row >= len(d.rows) {
		return
	}
	value := d.rows[row]
	d.moveFirst(row)
	d.queue.Post(func() {
		d.Hide()
		d.queue.Post(func() {
			if index := slices.Index(d.source, value); index >= 0 && d.onSelect != nil {
				d.onSelect(index)
			}
		})
	})
}

// moveFirst puts the row at index on top, the other rows keeping the order of
// the titles.
func (d *DropList) moveFirst(index int) {
	value := d.rows[index]
	rows := make([]string, 0, len(d.source))
	rows = append(rows, value)
	for _, s := range d.source {
		if s != value {
			rows = append(rows, s)
		}
	}
	d.rows = rows
}
