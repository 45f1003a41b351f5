package providers

import "chatalyzer/internal/structures"

// MetricsCacheProvider wraps a CacheProviderInterface and increments
// hit/miss counters on every Get call.
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return val, ok
}

func (c *MetricsCacheProvider) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

// CompressedCacheProvider stores values zstd-compressed. Analysis reports for
// large exports compress well, so the cache holds more of them. A value that
// fails to decompress is treated as a miss.
type CompressedCacheProvider struct {
	inner      CacheProviderInterface
	compressor CompressorInterface
}

func (c *CompressedCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if !ok {
		return nil, false
	}
	raw, err := c.compressor.Decompress(val)
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c *CompressedCacheProvider) Set(key string, value []byte) {
	compressed, err := c.compressor.Compress(value)
	if err != nil {
		return
	}
	c.inner.Set(key, compressed)
}

// NewInstrumentedCacheProvider builds the cache chain used by controllers:
// freecache wrapped with zstd compression and hit/miss instrumentation.
// When cache is disabled, returns the plain noopCache without wrapping
// to avoid counting phantom cache misses.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface, compressor CompressorInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if !conf.Cache.Enabled {
		return inner
	}
	return &MetricsCacheProvider{
		inner: &CompressedCacheProvider{
			inner:      inner,
			compressor: compressor,
		},
		metrics: metrics,
	}
}
