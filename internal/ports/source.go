package ports

import "context"

// SimulationSourcePort produces the complete, decoded output of one
// simulated upgrade run.
type SimulationSourcePort interface {
	Name() string
	Capture(ctx context.Context) (string, error)
}
