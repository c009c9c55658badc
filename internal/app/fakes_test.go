package app

import (
	"bytes"
	"context"

	"pkgforecaster/internal/core"
	"pkgforecaster/internal/ports"
	"pkgforecaster/internal/types"
)

type stubSource struct {
	name string
	text string
	err  error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Capture(ctx context.Context) (string, error) {
	return s.text, s.err
}

type stubReader struct {
	sim types.Simulation
	err error
}

func (r stubReader) ReadReport(path string) (types.Simulation, error) {
	return r.sim, r.err
}

type stubWatcher struct {
	contents []string
}

func (w stubWatcher) Watch(ctx context.Context, path string, out chan<- string) error {
	for _, content := range w.contents {
		select {
		case out <- content:
		case <-ctx.Done():
			return nil
		}
	}
	<-ctx.Done()
	return nil
}

func newTestService(source ports.SimulationSourcePort) (Service, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	service := NewService()
	service.Sources = func(req SourceRequest) (ports.SimulationSourcePort, error) {
		return source, nil
	}
	service.Forecaster = core.NewForecaster()
	service.Stdout = stdout
	return service, stdout
}

const sampleSimulation = `Reading package lists...
Inst openssl (1.1.1f-1ubuntu2 -> 1.1.1f-1ubuntu2.20)
Inst curl (7.68.0 -> 7.81.0)
Conf curl (7.81.0 Ubuntu:20.04/focal-updates [amd64])
`
