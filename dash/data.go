package dash

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/midbel/linechart"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	MinValue = 1.5
	MaxValue = 100.0

	valuePlaces = 2
)

var (
	DefaultDropTitles   = []string{"YIELD", "PRICE"}
	DefaultPeriodTitles = []string{"1W", "1M", "3M", "6M", "1Y", "2Y"}
)

// Period is the data shown for one button of the period strip.
type Period struct {
	Points []float64
	Titles []string
}

// ListData holds the periods of one entry of the drop list.
type ListData struct {
	Periods []Period
}

func (d ListData) Period(i int) (Period, error) {
	if i < 0 || i >= len(d.Periods) {
		return Period{}, fmt.Errorf("period %d: %w", i, linechart.ErrIndexOutOfRange)
	}
	return d.Periods[i], nil
}

// Dataset is what a Loader gives back for an instrument.
type Dataset struct {
	DropTitles   []string
	PeriodTitles []string
	Lists        []ListData
}

func (d Dataset) Period(list, period int) (Period, error) {
	if list < 0 || list >= len(d.Lists) {
		return Period{}, fmt.Errorf("list %d: %w", list, linechart.ErrIndexOutOfRange)
	}
	return d.Lists[list].Period(period)
}

// Loader fetches the dataset of an instrument identified by its isin.
type Loader func(ctx context.Context, isin string) (Dataset, error)

type periodSpec struct {
	count  int
	titles []string
}

var periodSpecs = []periodSpec{
	{
		count:  7,
		titles: []string{"23.07", "24.07", "25.07", "26.07", "27.07", "28.07", "29.07"},
	},
	{
		count:  31,
		titles: make([]string, 14),
	},
	{
		count:  3,
		titles: []string{"05", "06", "07"},
	},
	{
		count:  6,
		titles: []string{"02", "03", "04", "05", "06", "07"},
	},
	{
		count:  12,
		titles: []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"},
	},
	{
		count:  24,
		titles: make([]string, 12),
	},
}

// Simulate gives a Loader building random lists, one per drop list title. The
// lists are generated concurrently, each from its own source seeded from seed.
func Simulate(seed int64) Loader {
	return func(ctx context.Context, isin string) (Dataset, error) {
		var (
			lists     = make([]ListData, len(DefaultDropTitles))
			grp, gctx = errgroup.WithContext(ctx)
		)
		for i := range lists {
			i := i
			grp.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				rnd := rand.New(rand.NewSource(seed + int64(i)))
				lists[i] = GenerateList(rnd)
				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return Dataset{}, fmt.Errorf("%s: %w", isin, err)
		}
		ds := Dataset{
			DropTitles:   append([]string(nil), DefaultDropTitles...),
			PeriodTitles: append([]string(nil), DefaultPeriodTitles...),
			Lists:        lists,
		}
		return ds, nil
	}
}

func GenerateList(rnd *rand.Rand) ListData {
	var list ListData
	for _, s := range periodSpecs {
		p := Period{
			Points: RandomValues(rnd, s.count),
			Titles: append([]string(nil), s.titles...),
		}
		list.Periods = append(list.Periods, p)
	}
	return list
}

// RandomValues gives count values between MinValue and MaxValue rounded to two
// decimals.
func RandomValues(rnd *rand.Rand, count int) []float64 {
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		v := MinValue + rnd.Float64()*(MaxValue-MinValue)
		values = append(values, decimal.NewFromFloat(v).Round(valuePlaces).InexactFloat64())
	}
	return values
}
