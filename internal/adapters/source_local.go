package adapters

import (
	"context"

	"pkgforecaster/internal/ports"
	"pkgforecaster/internal/shared"
)

// LocalAptSourceAdapter runs the simulation against the host's own apt
// state. apt-get -s never changes the system.
type LocalAptSourceAdapter struct {
	DistUpgrade bool
	Run         CommandRunner
}

func NewLocalAptSourceAdapter(distUpgrade bool) LocalAptSourceAdapter {
	return LocalAptSourceAdapter{DistUpgrade: distUpgrade, Run: ExecCommand}
}

func (a LocalAptSourceAdapter) Name() string {
	return "local"
}

func (a LocalAptSourceAdapter) Capture(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", captureInterrupted(a.Name(), err)
	}
	stdout, stderr, err := a.Run(ctx, "apt-get", shared.SimulateArgs(a.DistUpgrade)...)
	if err != nil {
		return "", commandFailure(ctx, "apt-get", stderr, err)
	}
	return DecodeText(stdout), nil
}

var _ ports.SimulationSourcePort = LocalAptSourceAdapter{}
