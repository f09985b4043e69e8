package dash

import (
	"context"
	"io"
	"log/slog"
	"time"
)

const DefaultDelay = 3 * time.Second

// Snapshot is the whole state published by the view-model. Listeners get a new
// one every time something changes.
type Snapshot struct {
	DropTitles   []string
	PeriodTitles []string
	PeriodIndex  int
	XTitles      []string
	Data         []float64
	Loading      bool
}

// State holds the selections made by the user.
type State struct {
	DropIndex   int
	PeriodIndex int
}

type Option func(*ViewModel)

func WithDelay(d time.Duration) Option {
	return func(v *ViewModel) {
		v.delay = d
	}
}

func WithLoader(load Loader) Option {
	return func(v *ViewModel) {
		v.load = load
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(v *ViewModel) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// ViewModel simulates fetching the data of an instrument and feeds the drop
// list, the period strip and the chart. Apart from the loading itself, all its
// methods are expected to run on the queue.
type ViewModel struct {
	queue  *Queue
	load   Loader
	delay  time.Duration
	logger *slog.Logger

	fetches   uint64
	data      Dataset
	state     State
	snap      Snapshot
	listeners []func(Snapshot)
}

func NewViewModel(q *Queue, options ...Option) *ViewModel {
	v := ViewModel{
		queue:  q,
		load:   Simulate(time.Now().UnixNano()),
		delay:  DefaultDelay,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range options {
		o(&v)
	}
	return &v
}

func (v *ViewModel) OnChange(fn func(Snapshot)) {
	v.listeners = append(v.listeners, fn)
}

func (v *ViewModel) Snapshot() Snapshot {
	return v.snap
}

func (v *ViewModel) State() State {
	return v.state
}

// Fetch marks the view-model as loading then, once the delay has elapsed, loads
// the dataset of isin away from the queue. The result is published on the
// queue.
func (v *ViewModel) Fetch(ctx context.Context, isin string) {
	v.logger.Info("fetch data", "isin", isin, "delay", v.delay)
	v.fetches++
	v.snap.Loading = true
	v.snap.Data = nil
	v.snap.XTitles = nil
	v.notify()

	id := v.fetches
	v.queue.After(v.delay, func() {
		if id != v.fetches {
			return
		}
		go v.download(ctx, id, isin)
	})
}

// download loads the dataset then publishes it unless another fetch started
// in the meantime.
func (v *ViewModel) download(ctx context.Context, id uint64, isin string) {
	data, err := v.load(ctx, isin)
	v.queue.Post(func() {
		if id != v.fetches {
			v.logger.Debug("stale data dropped", "isin", isin)
			return
		}
		if err != nil {
			v.logger.Error("fetch data failed", "isin", isin, "err", err)
			v.snap.Loading = false
			v.notify()
			return
		}
		v.logger.Debug("data received", "isin", isin, "lists", len(data.Lists))
		v.data = data
		v.state = State{}
		v.snap.DropTitles = data.DropTitles
		v.snap.PeriodTitles = data.PeriodTitles
		v.snap.PeriodIndex = 0
		v.snap.Loading = false
		v.performCurrentData()
		v.notify()
	})
}

func (v *ViewModel) DropListSelected(index int) {
	v.state.DropIndex = index
	if v.performCurrentData() {
		v.notify()
	}
}

func (v *ViewModel) PeriodSelected(index int) {
	v.state.PeriodIndex = index
	v.snap.PeriodIndex = index
	if v.performCurrentData() {
		v.notify()
	}
}

// performCurrentData publishes the period matching the current selection. It
// leaves the snapshot untouched when the selection points to nothing.
func (v *ViewModel) performCurrentData() bool {
	p, err := v.data.Period(v.state.DropIndex, v.state.PeriodIndex)
	if err != nil {
		v.logger.Debug("no data for selection", "drop", v.state.DropIndex, "period", v.state.PeriodIndex, "err", err)
		return false
	}
	v.snap.XTitles = p.Titles
	v.snap.Data = p.Points
	return true
}

func (v *ViewModel) notify() {
	for _, fn := range v.listeners {
		fn(v.snap)
	}
}
