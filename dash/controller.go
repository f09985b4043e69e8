package dash

import (
	"context"
	"io"
	"log/slog"

	"github.com/midbel/linechart"
	"golang.org/x/exp/slices"
)

const DefaultYGridCount = 5

// Controller wires the view-model to the chart, the drop list and the period
// strip. Its methods must run on the queue.
type Controller struct {
	Chart    *linechart.LineChart
	DropList *DropList
	Buttons  *Buttons
	Model    *ViewModel

	queue   *Queue
	logger  *slog.Logger
	isin    string
	loading bool
	onDraw  func(*linechart.LineChart)
}

func NewController(q *Queue, vm *ViewModel, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := Controller{
		Chart:    linechart.New(),
		DropList: NewDropList(q),
		Buttons:  NewButtons(q),
		Model:    vm,
		queue:    q,
		logger:   logger,
	}
	c.Chart.Y.Grid.Count = DefaultYGridCount

	c.DropList.OnSelect(vm.DropListSelected)
	c.Buttons.OnSelect(vm.PeriodSelected)
	vm.OnChange(c.apply)
	return &c
}

// OnDraw registers fn to be called each time the chart has been redrawn.
func (c *Controller) OnDraw(fn func(*linechart.LineChart)) {
	c.onDraw = fn
}

func (c *Controller) ISIN() string {
	return c.isin
}

func (c *Controller) Loading() bool {
	return c.loading
}

// SetISIN clears the chart and fetches the data of the given instrument.
func (c *Controller) SetISIN(ctx context.Context, isin string) {
	c.isin = isin
	c.Chart.ClearAll()
	c.Model.Fetch(ctx, isin)
	c.display()
}

func (c *Controller) Resize(w, h float64) {
	c.Chart.Resize(w, h)
	c.display()
}

// Rotate redraws the chart and folds the drop list.
func (c *Controller) Rotate() {
	c.Chart.SetNeedsDisplay()
	c.DropList.Hide()
	c.display()
}

func (c *Controller) apply(s Snapshot) {
	if !slices.Equal(c.DropList.source, s.DropTitles) {
		c.DropList.SetTitles(s.DropTitles)
	}
	if !slices.Equal(c.Buttons.Titles(), s.PeriodTitles) {
		c.Buttons.SetTitles(s.PeriodTitles)
	}
	c.Buttons.SetCurrent(s.PeriodIndex)

	if !slices.Equal(c.Chart.X.Labels.Values, s.XTitles) {
		c.Chart.X.Grid.Count = len(s.XTitles)
		c.Chart.X.Labels.Values = slices.Clone(s.XTitles)
		c.Chart.SetNeedsDisplay()
	}
	if c.changed(s.Data) {
		c.Chart.ClearAll()
		c.Chart.AddLine(s.Data)
	}
	if c.loading != s.Loading {
		c.logger.Debug("loading state", "isin", c.isin, "loading", s.Loading)
		c.loading = s.Loading
	}
	c.display()
}

func (c *Controller) changed(data []float64) bool {
	current, ok := c.Chart.Serie(0)
	if !ok {
		return len(data) > 0
	}
	return c.Chart.Len() != 1 || !slices.Equal(current, data)
}

func (c *Controller) display() {
	if !c.Chart.NeedsDisplay() {
		return
	}
	plan := c.Chart.Redraw()
	c.logger.Debug("chart redrawn", "isin", c.isin, "primitives", len(plan))
	if c.onDraw != nil {
		c.onDraw(c.Chart)
	}
}
