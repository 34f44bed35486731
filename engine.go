package ephcore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/cache"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/chain"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/daf"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/frames"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/logging"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/metrics"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/spk"
	"github.com/Mr-Pental21/ctara-dhruv-core/internal/timescale"
)

// batchParallelism bounds concurrent epoch-group evaluation inside
// QueryBatch, mirroring the errgroup.SetLimit(16) pattern used for
// bounded fan-out over blob-store backends.
const batchParallelism = 16

// Query is one request: a target and observer body, a frame, and an
// epoch.
type Query struct {
	Target   Body
	Observer Observer
	Frame    Frame
	Epoch    Epoch
}

// Result is one QueryBatch slot: either a StateVector or the error that
// request produced. Per-request errors never cancel sibling requests.
type Result struct {
	Value StateVector
	Err   error
}

// Engine is the query engine's public entry point. It owns the loaded
// kernels, the resolved chain adjacency, the time tables, and the
// fingerprint cache. An Engine is safe for concurrent use by any number
// of goroutines once constructed.
type Engine struct {
	kernels  []*spk.Kernel
	resolver *chain.Resolver
	lsk      *timescale.LskData
	eop      *timescale.EopTable

	cache           *cache.Cache[StateVector]
	precessionModel frames.PrecessionModel

	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewEngine loads every configured kernel, the leap-second kernel, and
// (if given) the EOP table, then builds the chain resolver and cache.
// Kernel-parse errors are raised eagerly here and abort construction
// (spec.md §7); once NewEngine succeeds the Engine never fails to
// construct again for the same inputs.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	kernels := make([]*spk.Kernel, 0, len(cfg.KernelPaths))
	for _, path := range cfg.KernelPaths {
		k, err := spk.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: loading kernel %q: %w", classifyKernelErr(err), path, err)
		}
		logger.Info("loaded kernel", zap.String("path", path), zap.Int("segments", len(k.Segments)))
		kernels = append(kernels, k)
	}

	lskContent, err := os.ReadFile(cfg.LskPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading leap-second kernel %q: %w", ErrTimeError, cfg.LskPath, err)
	}
	lsk, err := timescale.ParseLSK(string(lskContent))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing leap-second kernel %q: %w", ErrTimeError, cfg.LskPath, err)
	}

	var eop *timescale.EopTable
	if cfg.EopPath != "" {
		f, err := os.Open(cfg.EopPath)
		if err != nil {
			return nil, fmt.Errorf("%w: opening EOP file %q: %w", ErrTimeError, cfg.EopPath, err)
		}
		eop, err = timescale.ParseEOP(f)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: parsing EOP file %q: %w", ErrTimeError, cfg.EopPath, err)
		}
		if closeErr != nil {
			logger.Warn("closing EOP file", zap.Error(closeErr))
		}
	} else {
		logger.Info("no EOP path configured; DUT1 treated as zero")
	}

	resolver := chain.NewResolver(kernels)
	m := metrics.New(cfg.MetricsRegisterer)

	return &Engine{
		kernels:         kernels,
		resolver:        resolver,
		lsk:             lsk,
		eop:             eop,
		cache:           cache.New[StateVector](cfg.cacheCapacity()),
		precessionModel: cfg.precessionModel(),
		logger:          logger,
		metrics:         m,
	}, nil
}

// Close releases engine resources. Kernels in this implementation are
// ordinary read buffers rather than memory-mapped regions (spk.Load
// reads the whole file with os.ReadFile), so Close has nothing to unmap; it exists so callers can
// follow the owning-handle lifecycle spec.md §3 describes and so a
// future mmap-backed Kernel can be dropped in without an API change.
func (e *Engine) Close() error {
	return e.logger.Sync()
}

// Query evaluates one request. It is referentially transparent: equal
// Query values always return bitwise-equal StateVectors (spec.md §8).
// Query never panics across this boundary (spec.md §7); a defensive
// recover guards the Chebyshev evaluator's slice indexing the same way
// QueryBatch's per-item loop does.
func (e *Engine) Query(q Query) (sv StateVector, err error) {
	start := time.Now()
	defer func() { e.metrics.ObserveQuerySeconds(time.Since(start).Seconds()) }()
	defer func() {
		if r := recover(); r != nil {
			sv, err = StateVector{}, fmt.Errorf("%w: recovered panic: %v", ErrKernelInvalid, r)
		}
	}()

	sv, _, err = e.evaluate(q, &sync.Map{})
	return sv, err
}

// evaluate is the shared Query/QueryBatch path. bodyCache lets callers
// (QueryBatch) amortize repeated SSB resolution for the same body
// across requests sharing an epoch; Query passes a fresh, unshared map.
func (e *Engine) evaluate(q Query, bodyCache *sync.Map) (StateVector, bool, error) {
	tdbS, err := q.Epoch.ToTDBSeconds(e.lsk, e.eop)
	if err != nil {
		return StateVector{}, false, err
	}
	ticks := Epoch{Scale: TDB, SecondsPastJ2000: tdbS}.TicksPicoseconds()

	key := computeFingerprint(q.Target, q.Observer, q.Frame, e.precessionModel, ticks)
	if sv, ok := e.cache.Get(key); ok {
		e.metrics.ObserveCacheHit()
		return sv, true, nil
	}
	e.metrics.ObserveCacheMiss()

	icrf, err := e.resolveRelative(q.Target, q.Observer, tdbS, bodyCache)
	if err != nil {
		return StateVector{}, false, err
	}

	sv := e.applyFrame(icrf, q.Frame, tdbS)
	e.cache.Put(key, sv)
	return sv, false, nil
}

// resolveRelative resolves target and observer to SSB (using bodyCache
// to skip repeat work within one batch) and returns target relative to
// observer, in ICRF.
func (e *Engine) resolveRelative(target, observer Body, tdbS float64, bodyCache *sync.Map) (StateVector, error) {
	targetState, err := e.resolveCached(target, tdbS, bodyCache)
	if err != nil {
		return StateVector{}, err
	}
	if observer == SSB {
		return StateVector{PositionKM: targetState.PositionKM, VelocityKMS: targetState.VelocityKMS, Frame: IcrfJ2000}, nil
	}
	observerState, err := e.resolveCached(observer, tdbS, bodyCache)
	if err != nil {
		return StateVector{}, err
	}
	return StateVector{
		PositionKM: [3]float64{
			targetState.PositionKM[0] - observerState.PositionKM[0],
			targetState.PositionKM[1] - observerState.PositionKM[1],
			targetState.PositionKM[2] - observerState.PositionKM[2],
		},
		VelocityKMS: [3]float64{
			targetState.VelocityKMS[0] - observerState.VelocityKMS[0],
			targetState.VelocityKMS[1] - observerState.VelocityKMS[1],
			targetState.VelocityKMS[2] - observerState.VelocityKMS[2],
		},
		Frame: IcrfJ2000,
	}, nil
}

type bodyEpochKey struct {
	body Body
	tdbS float64
}

func (e *Engine) resolveCached(body Body, tdbS float64, bodyCache *sync.Map) (chain.State, error) {
	k := bodyEpochKey{body: body, tdbS: tdbS}
	if v, ok := bodyCache.Load(k); ok {
		return v.(chain.State), nil
	}
	st, err := e.resolver.ResolveToSSB(int32(body), tdbS)
	if err != nil {
		return chain.State{}, classifyChainErr(err)
	}
	bodyCache.Store(k, st)
	return st, nil
}

// applyFrame rotates an ICRF state into the requested frame.
func (e *Engine) applyFrame(icrf StateVector, frame Frame, tdbS float64) StateVector {
	switch frame {
	case IcrfJ2000:
		return StateVector{PositionKM: icrf.PositionKM, VelocityKMS: icrf.VelocityKMS, Frame: IcrfJ2000}
	case EclipticJ2000:
		return StateVector{
			PositionKM:  frames.IcrfToEcliptic(icrf.PositionKM),
			VelocityKMS: frames.IcrfToEcliptic(icrf.VelocityKMS),
			Frame:       EclipticJ2000,
		}
	case EclipticOfDate:
		eclPos := frames.IcrfToEcliptic(icrf.PositionKM)
		eclVel := frames.IcrfToEcliptic(icrf.VelocityKMS)
		tCenturies := tdbS / frames.SecondsPerCentury
		datedPos, datedVel := frames.PrecessEclipticStateJ2000ToDate(eclPos, eclVel, tCenturies, e.precessionModel)
		return StateVector{PositionKM: datedPos, VelocityKMS: datedVel, Frame: EclipticOfDate}
	default:
		return StateVector{PositionKM: icrf.PositionKM, VelocityKMS: icrf.VelocityKMS, Frame: frame}
	}
}

// QueryBatch evaluates every request, preserving input order. Requests
// are grouped by epoch so that queries sharing an epoch reuse each
// body's SSB-relative resolution; groups are evaluated concurrently,
// bounded by batchParallelism. A per-request error never cancels
// sibling requests (spec.md §4.5, §7).
func (e *Engine) QueryBatch(qs []Query) []Result {
	results := make([]Result, len(qs))

	groups := make(map[int64][]int)
	for i, q := range qs {
		tdbS, err := q.Epoch.ToTDBSeconds(e.lsk, e.eop)
		if err != nil {
			results[i] = Result{Err: err}
			continue
		}
		ticks := Epoch{Scale: TDB, SecondsPastJ2000: tdbS}.TicksPicoseconds()
		groups[ticks] = append(groups[ticks], i)
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(batchParallelism)

	for _, indices := range groups {
		indices := indices
		g.Go(func() error {
			bodyCache := &sync.Map{}
			for _, i := range indices {
				results[i] = e.evaluateRecovered(qs[i], bodyCache)
			}
			return nil
		})
	}
	_ = g.Wait() // per-request errors are carried in results, never returned here

	return results
}

// evaluateRecovered is QueryBatch's per-item boundary: one request's
// panic becomes that request's error without cancelling its siblings
// (spec.md §7).
func (e *Engine) evaluateRecovered(q Query, bodyCache *sync.Map) (result Result) {
	start := time.Now()
	defer func() { e.metrics.ObserveQuerySeconds(time.Since(start).Seconds()) }()
	defer func() {
		if r := recover(); r != nil {
			result = Result{Err: fmt.Errorf("%w: recovered panic: %v", ErrKernelInvalid, r)}
		}
	}()

	sv, _, err := e.evaluate(q, bodyCache)
	return Result{Value: sv, Err: err}
}

func classifyKernelErr(err error) error {
	switch {
	case errors.Is(err, daf.ErrFileTooSmall):
		return ErrKernelTruncated
	case errors.Is(err, daf.ErrBadFileID), errors.Is(err, daf.ErrBadEndianness), errors.Is(err, daf.ErrBadSummaryRecord):
		return ErrKernelInvalid
	case errors.Is(err, spk.ErrBadSummary), errors.Is(err, spk.ErrBadSegmentData), errors.Is(err, spk.ErrUnsupportedDataType):
		return ErrKernelInvalid
	default:
		return ErrKernelInvalid
	}
}

func classifyChainErr(err error) error {
	switch {
	case errors.Is(err, spk.ErrEpochOutOfRange):
		return fmt.Errorf("%w: %w", ErrEpochOutOfRange, err)
	case errors.Is(err, chain.ErrCyclicChain):
		return fmt.Errorf("%w: %w", ErrKernelInvalid, err)
	case errors.Is(err, spk.ErrUnsupportedDataType), errors.Is(err, spk.ErrBadSegmentData):
		return fmt.Errorf("%w: %w", ErrKernelInvalid, err)
	case errors.Is(err, chain.ErrNoSegment):
		return fmt.Errorf("%w: %w", ErrNoSegment, err)
	default:
		return fmt.Errorf("%w: %w", ErrNoSegment, err)
	}
}
