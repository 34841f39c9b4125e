package services

import (
	"math/rand/v2"

	"github.com/collabsec/admin-console/internal/models"
)

// MetricsProvider supplies the resource figures shown on a VM card. The
// backend exposes no telemetry endpoint yet, so the default provider
// simulates plausible values. A real telemetry adapter can be swapped in
// without touching the mapper.
type MetricsProvider interface {
	Snapshot(status models.VMStatus) models.VMResources
}

// SimulatedMetrics draws fresh values inside fixed bands on every call.
// A machine that is not running consumes no CPU, memory or network but
// keeps its disk allocation.
type SimulatedMetrics struct{}

var _ MetricsProvider = SimulatedMetrics{}

func (SimulatedMetrics) Snapshot(status models.VMStatus) models.VMResources {
	res := models.VMResources{
		Disk: randRange(10, 50),
	}
	if status == models.VMStatusRunning {
		res.CPU = randRange(20, 80)
		res.Memory = randRange(30, 80)
		res.Network = randRange(5, 45)
	}
	return res
}

// randRange returns a value in [lo, hi).
func randRange(lo, hi int) int {
	return lo + rand.IntN(hi-lo)
}
