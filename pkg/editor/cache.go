package editor

import (
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

// polylineCache keeps sampled curves keyed by store revision and step count.
// Entries never expire on their own; the store flushes them on mutation.
type polylineCache struct {
	c *cache.Cache
}

func newPolylineCache() *polylineCache {
	return &polylineCache{c: cache.New(cache.NoExpiration, 0)}
}

func polylineKey(revision uint64, steps int) string {
	return strconv.FormatUint(revision, 10) + ":" + strconv.Itoa(steps)
}

// get returns a copy so callers cannot corrupt the cached line.
func (pc *polylineCache) get(revision uint64, steps int) ([]bezier.Point, bool) {
	v, ok := pc.c.Get(polylineKey(revision, steps))
	if !ok {
		return nil, false
	}

	line := v.([]bezier.Point)
	result := make([]bezier.Point, len(line))
	copy(result, line)
	return result, true
}

func (pc *polylineCache) put(revision uint64, steps int, line []bezier.Point) {
	stored := make([]bezier.Point, len(line))
	copy(stored, line)
	pc.c.Set(polylineKey(revision, steps), stored, cache.NoExpiration)
}

func (pc *polylineCache) flush() {
	pc.c.Flush()
}

func (pc *polylineCache) size() int {
	return pc.c.ItemCount()
}
