package ephcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mr-Pental21/ctara-dhruv-core/internal/frames"
)

func TestEngineConfigValidateRequiresKernelPaths(t *testing.T) {
	cfg := EngineConfig{LskPath: "naif.tls"}
	require.ErrorIs(t, cfg.Validate(), ErrConfigError)
}

func TestEngineConfigValidateRequiresLskPath(t *testing.T) {
	cfg := EngineConfig{KernelPaths: []string{"de442s.bsp"}}
	require.ErrorIs(t, cfg.Validate(), ErrConfigError)
}

func TestEngineConfigValidateRejectsNegativeCacheCapacity(t *testing.T) {
	cfg := EngineConfig{KernelPaths: []string{"de442s.bsp"}, LskPath: "naif.tls", CacheCapacity: -1}
	require.ErrorIs(t, cfg.Validate(), ErrConfigError)
}

func TestEngineConfigValidateAccepts(t *testing.T) {
	cfg := EngineConfig{KernelPaths: []string{"de442s.bsp"}, LskPath: "naif.tls"}
	require.NoError(t, cfg.Validate())
}

func TestEngineConfigCacheCapacityDefault(t *testing.T) {
	cfg := EngineConfig{}
	require.Equal(t, DefaultCacheCapacity, cfg.cacheCapacity())
	cfg.CacheCapacity = 10
	require.Equal(t, 10, cfg.cacheCapacity())
}

func TestEngineConfigPrecessionModelDefault(t *testing.T) {
	cfg := EngineConfig{}
	require.Equal(t, frames.DefaultPrecessionModel, cfg.precessionModel())

	cfg.PrecessionModel = frames.Lieske1977
	cfg.PrecessionModelSet = true
	require.Equal(t, frames.Lieske1977, cfg.precessionModel())
}
