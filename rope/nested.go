package rope

import (
	"sync"

	"github.com/npillmayer/gardener/polygon"
)

// Nested traces one curve per slack around the same foci. The walks share
// no state and run concurrently. Curves are returned in the order of
// slacks; if any walk fails, the error of the first failing slack in this
// order is returned.
func Nested(foci *polygon.Polygon, slacks ...float64) ([]*Curve, error) {
	curves := make([]*Curve, len(slacks))
	errs := make([]error, len(slacks))
	var wg sync.WaitGroup
	for i, slack := range slacks {
		i, slack := i, slack
		wg.Add(1)
		go func() {
			defer wg.Done()
			curves[i], errs[i] = Walk(foci, slack)
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return curves, nil
}
