package ephcore

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/frames"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/logging"
)

// DefaultCacheCapacity is the cache size used when EngineConfig leaves
// CacheCapacity unset (spec.md §6).
const DefaultCacheCapacity = 256

// EngineConfig holds every recognized construction-time option
// (spec.md §6). KernelPaths and LskPath are required; everything else
// has a documented default.
type EngineConfig struct {
	// KernelPaths lists SPK file paths; at least one must cover the
	// bodies the caller intends to query.
	KernelPaths []string
	// LskPath is the NAIF leap-second kernel text file.
	LskPath string
	// EopPath is the IERS finals2000A.all file. Optional: DUT1 is
	// treated as zero when unset.
	EopPath string
	// CacheCapacity is the fingerprint cache's entry limit. Zero means
	// DefaultCacheCapacity.
	CacheCapacity int
	// PrecessionModel selects the ecliptic-of-date series. Zero value
	// is frames.Lieske1977, which is NOT the engine default — callers
	// leaving this unset get frames.DefaultPrecessionModel via
	// NewEngine, not the zero value.
	PrecessionModel frames.PrecessionModel
	// PrecessionModelSet must be true for PrecessionModel to take
	// effect; otherwise NewEngine substitutes frames.DefaultPrecessionModel.
	PrecessionModelSet bool
	// ThreadSafe records the caller's intended usage. When false, the
	// caller promises not to share the Engine across goroutines; see
	// DESIGN.md for why the cache lock is not actually elided on this
	// path.
	ThreadSafe bool

	// Logger receives construction diagnostics from NewEngine; Query and
	// QueryBatch log nothing. Nil is valid and discards everything.
	Logger *logging.Logger
	// MetricsRegisterer, if set, receives the cache hit/miss counters
	// and query-latency histogram. Nil disables metrics.
	MetricsRegisterer prometheus.Registerer
}

// Validate reports ErrConfigError if required fields are missing or
// contradictory.
func (c EngineConfig) Validate() error {
	if len(c.KernelPaths) == 0 {
		return fmt.Errorf("%w: at least one kernel path is required", ErrConfigError)
	}
	if c.LskPath == "" {
		return fmt.Errorf("%w: a leap-second kernel path is required", ErrConfigError)
	}
	if c.CacheCapacity < 0 {
		return fmt.Errorf("%w: cache_capacity must be non-negative, got %d", ErrConfigError, c.CacheCapacity)
	}
	return nil
}

func (c EngineConfig) cacheCapacity() int {
	if c.CacheCapacity <= 0 {
		return DefaultCacheCapacity
	}
	return c.CacheCapacity
}

func (c EngineConfig) precessionModel() frames.PrecessionModel {
	if !c.PrecessionModelSet {
		return frames.DefaultPrecessionModel
	}
	return c.PrecessionModel
}
