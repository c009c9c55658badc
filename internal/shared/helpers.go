// Package shared provides common utility functions used across multiple
// packages in the pkgforecaster codebase.
package shared

import (
	"fmt"
	"strings"
)

// SimulateArgs returns the apt-get arguments for a simulated upgrade.
func SimulateArgs(distUpgrade bool) []string {
	if distUpgrade {
		return []string{"-s", "dist-upgrade"}
	}
	return []string{"-s", "upgrade"}
}

// SimulateShell returns SimulateArgs as a single shell command line.
func SimulateShell(distUpgrade bool) string {
	return "apt-get " + strings.Join(SimulateArgs(distUpgrade), " ")
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return err
	}
	return fmt.Errorf("%s: %w", trimmed, err)
}
