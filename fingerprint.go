package ephcore

import (
	"hash/fnv"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/cache"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/frames"
)

// computeFingerprint builds the cache key spec.md §4.5 mandates: a
// content hash of (target_id, observer_id, frame_id, precession_model_id,
// epoch_ticks), where epoch_ticks is an integer count of picoseconds
// past J2000 TDB. Integer ticks, not the raw float64 epoch, keep the
// key stable across platforms (spec.md §9: "Cache key stability").
func computeFingerprint(target, observer Body, frame Frame, model frames.PrecessionModel, epochTicksPicoseconds int64) cache.Key {
	h := fnv.New64a()
	var buf [8]byte
	putUint64 := func(v uint64) {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		buf[4] = byte(v >> 32)
		buf[5] = byte(v >> 40)
		buf[6] = byte(v >> 48)
		buf[7] = byte(v >> 56)
		h.Write(buf[:])
	}
	putUint64(uint64(int64(target)))
	putUint64(uint64(int64(observer)))
	putUint64(uint64(int64(frame)))
	putUint64(uint64(int64(model)))
	putUint64(uint64(epochTicksPicoseconds))
	return h.Sum64()
}
