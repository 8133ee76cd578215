package data

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

// synthDataProvider implements Provider with a deterministic random walk.
// It exists for offline use and tests; the walk is seeded from the symbol so
// repeated runs agree.
type synthDataProvider struct{}

func NewSyntheticProvider() Provider { return &synthDataProvider{} }

func symbolSeed(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return int64(h.Sum64())
}

func (synthDataProv *synthDataProvider) GetSpot(symbol string) (float64, error) {
	rng := rand.New(rand.NewSource(symbolSeed(symbol)))
	return 100.0 + float64(rng.Intn(200)), nil
}

func (synthDataProv *synthDataProvider) GetDailyBars(symbol string, fromDate, toDate time.Time) ([]Bar, error) {
	rng := rand.New(rand.NewSource(symbolSeed(symbol)))
	price := 100.0 + float64(rng.Intn(200))

	var out []Bar
	cur := fromDate
	for !cur.After(toDate) {
		if cur.Weekday() != time.Saturday && cur.Weekday() != time.Sunday {
			delta := rng.NormFloat64() * 0.01 * price
			open := price
			close := price + delta
			high := math.Max(open, close) + math.Abs(rng.NormFloat64()*0.3)
			low := math.Min(open, close) - math.Abs(rng.NormFloat64()*0.3)
			out = append(out, Bar{
				Date:  cur,
				Open:  open,
				High:  high,
				Low:   low,
				Close: close,
				Vol:   float64(1000 + rng.Intn(5000)),
			})
			price = close
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return out, nil
}
