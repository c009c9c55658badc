package adapters

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgforecaster/internal/ports"
	"pkgforecaster/internal/shared"
)

const DefaultDebootstrapMirror = "http://archive.ubuntu.com/ubuntu"

// DebootstrapSourceAdapter builds a throwaway minbase root for Release and
// runs the simulation inside it with chroot. Both steps need root.
type DebootstrapSourceAdapter struct {
	Release     string
	Mirror      string
	DistUpgrade bool
	Run         CommandRunner
	MakeTempDir func() (string, error)
	// Euid reports the effective user id; nil skips the root check.
	Euid func() int
}

func NewDebootstrapSourceAdapter(release string, mirror string, distUpgrade bool) DebootstrapSourceAdapter {
	return DebootstrapSourceAdapter{
		Release:     release,
		Mirror:      mirror,
		DistUpgrade: distUpgrade,
		Run:         ExecCommand,
		MakeTempDir: func() (string, error) {
			return os.MkdirTemp("", "pkgforecaster-root-")
		},
		Euid: os.Geteuid,
	}
}

func (a DebootstrapSourceAdapter) Name() string {
	return "debootstrap"
}

func (a DebootstrapSourceAdapter) Capture(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", captureInterrupted(a.Name(), err)
	}
	release := strings.TrimSpace(a.Release)
	if release == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("debootstrap release is empty")
	}
	if a.Euid != nil && a.Euid() != 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("debootstrap source must run as root")
	}
	mirror := strings.TrimSpace(a.Mirror)
	if mirror == "" {
		mirror = DefaultDebootstrapMirror
	}
	root, err := a.MakeTempDir()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create sandbox").
			WithCause(err)
	}
	defer func() {
		if err := os.RemoveAll(root); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("root", root).Msg("failed to remove sandbox root")
		}
	}()

	log.Ctx(ctx).Info().Str("release", release).Str("root", root).Msg("creating debootstrap root")
	if _, stderr, err := a.Run(ctx, "debootstrap", "--variant=minbase", release, root, mirror); err != nil {
		return "", commandFailure(ctx, "debootstrap", stderr, err)
	}
	stdout, stderr, err := a.Run(ctx, "chroot", root, "/bin/sh", "-c", shared.SimulateShell(a.DistUpgrade))
	if err != nil {
		return "", commandFailure(ctx, "chroot apt-get", stderr, err)
	}
	return DecodeText(stdout), nil
}

var _ ports.SimulationSourcePort = DebootstrapSourceAdapter{}
