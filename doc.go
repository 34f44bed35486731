// Package ephcore is an ephemeris query engine: given a target body, an
// observer body, a reference frame, and an epoch, it returns a Cartesian
// state vector (position in km, velocity in km/s) by reading and
// interpolating NAIF/JPL SPK binary kernel files.
//
// It is the numerical and concurrency core of a larger toolchain; this
// package covers the kernel reader, the time-scale and frame machinery,
// the segment-chain resolver, and the query engine with its cache. The
// command-line tool, stable C ABI facade, convenience wrappers, and
// downstream astronomical computations are out of scope and consume
// only Engine.Query / Engine.QueryBatch.
//
// A typical caller loads one or more SPK kernels and a leap-second
// kernel, builds an Engine, and queries it from any number of
// goroutines:
//
//	eng, err := ephcore.NewEngine(ephcore.EngineConfig{
//	    KernelPaths: []string{"de442s.bsp"},
//	    LskPath:     "naif0012.tls",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	sv, err := eng.Query(ephcore.Query{
//	    Target:   ephcore.Earth,
//	    Observer: ephcore.SSB,
//	    Frame:    ephcore.IcrfJ2000,
//	    Epoch:    ephcore.EpochFromJulianDayTDB(2451545.0),
//	})
package ephcore
