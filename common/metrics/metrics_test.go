package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func value(t *testing.T, m prometheus.Metric) float64 {
	var out dto.Metric
	require.NoError(t, m.Write(&out))

	switch {
	case out.Counter != nil:
		return out.Counter.GetValue()
	case out.Gauge != nil:
		return out.Gauge.GetValue()
	}

	t.Fatalf("unsupported metric %v", m.Desc())
	return 0
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "200", Status(200))
	assert.Equal(t, "404", Status(404))
}

func TestSessionActionsTotal(t *testing.T) {
	counter := SessionActionsTotal.WithLabelValues("search")
	before := value(t, counter)

	counter.Inc()
	assert.Equal(t, before+1, value(t, counter))
}

func TestCatalogSize(t *testing.T) {
	CatalogSize.Set(20)
	assert.Equal(t, float64(20), value(t, CatalogSize))
}
