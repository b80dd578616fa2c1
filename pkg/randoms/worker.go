package randoms

import (
	"context"
	"errors"
	"math/rand"
)

// The generated numbers fall in [1, rangeMax], so the tally stays small
// no matter how many draws are requested.
const rangeMax = 1000

// DefaultCount matches the draw count used when the request does not
// say how many.
const DefaultCount = 100000000

var ErrStopped = errors.New("randoms worker stopped")

type request struct {
	count int
	reply chan map[int]int
}

// Worker computes random-number tallies off the request path. Handlers
// talk to it over a channel and each request carries its own reply
// channel, so responses never cross between callers.
type Worker struct {
	requests chan request
}

func NewWorker() *Worker {
	return &Worker{requests: make(chan request)}
}

// Run serves tally requests until ctx is canceled. Meant to run on its
// own goroutine for the life of the process.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-w.requests:
			req.reply <- tally(req.count)
		}
	}
}

// Tally draws count random numbers and returns how often each value
// came up.
func (w *Worker) Tally(ctx context.Context, count int) (map[int]int, error) {
	if count <= 0 {
		count = DefaultCount
	}

	req := request{count: count, reply: make(chan map[int]int, 1)}

	select {
	case <-ctx.Done():
		return nil, ErrStopped
	case w.requests <- req:
	}

	select {
	case <-ctx.Done():
		return nil, ErrStopped
	case result := <-req.reply:
		return result, nil
	}
}

func tally(count int) map[int]int {
	counts := make(map[int]int, rangeMax)
	for i := 0; i < count; i++ {
		counts[rand.Intn(rangeMax)+1]++
	}
	return counts
}
