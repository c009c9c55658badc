package adapters

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"

	"pkgforecaster/internal/ports"
	"pkgforecaster/internal/shared"
)

const DefaultContainerImage = "ubuntu:24.04"

// ContainerSourceAdapter runs the simulation in a disposable container so
// the host apt state is never consulted. Needs a reachable Docker daemon.
type ContainerSourceAdapter struct {
	Image       string
	DistUpgrade bool
}

func NewContainerSourceAdapter(image string, distUpgrade bool) ContainerSourceAdapter {
	return ContainerSourceAdapter{Image: image, DistUpgrade: distUpgrade}
}

func (a ContainerSourceAdapter) Name() string {
	return "container"
}

func (a ContainerSourceAdapter) Capture(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", captureInterrupted(a.Name(), err)
	}
	image := strings.TrimSpace(a.Image)
	if image == "" {
		image = DefaultContainerImage
	}
	log.Ctx(ctx).Info().Str("image", image).Msg("starting sandbox container")
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: image,
			Cmd:   []string{"sleep", "infinity"},
		},
		Started: true,
	})
	defer func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("failed to terminate sandbox container")
		}
	}()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create sandbox").
			WithCause(err)
	}

	code, reader, err := container.Exec(ctx, []string{"/bin/sh", "-c", containerScript(a.DistUpgrade)}, tcexec.Multiplexed())
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to run simulation in sandbox").
			WithCause(err)
	}
	output, err := io.ReadAll(reader)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read sandbox output").
			WithCause(err)
	}
	if code != 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("apt-get failed in sandbox").
			WithCause(shared.CommandError(output, fmt.Errorf("exit status %d", code)))
	}
	return DecodeText(output), nil
}

// containerScript refreshes the package lists quietly first; a fresh image
// has none and would report nothing to upgrade.
func containerScript(distUpgrade bool) string {
	return "apt-get update -qq >/dev/null && " + shared.SimulateShell(distUpgrade)
}

var _ ports.SimulationSourcePort = ContainerSourceAdapter{}
