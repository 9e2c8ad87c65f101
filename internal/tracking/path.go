package tracking

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
)

// Interpolate splits the straight line between from and to into steps equal
// moves. The result excludes from and ends exactly at to.
func Interpolate(from, to entities.Coordinate, steps int) []entities.Coordinate {
	if steps <= 0 {
		return nil
	}
	latStep := (to.Lat - from.Lat) / float64(steps)
	lngStep := (to.Lng - from.Lng) / float64(steps)

	path := make([]entities.Coordinate, steps)
	for i := 1; i < steps; i++ {
		path[i-1] = entities.Coordinate{
			Lat: from.Lat + latStep*float64(i),
			Lng: from.Lng + lngStep*float64(i),
		}
	}
	path[steps-1] = to
	return path
}

// Simulate emits path one point per interval, the first one right away. The
// channel is closed after the last point or when ctx is done.
func Simulate(ctx context.Context, path []entities.Coordinate, interval time.Duration) <-chan entities.Coordinate {
	out := make(chan entities.Coordinate)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for i, c := range path {
			if i > 0 {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
			}
			select {
			case <-ctx.Done():
				return
			case out <- c:
			}
		}
	}()

	return out
}
