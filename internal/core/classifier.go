package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"pkgforecaster/internal/types"
)

const (
	baselineScore = 0.1
	criticalScore = 0.9
	majorScore    = 0.7
	fallbackScore = 0.2

	// fallbackTrigger is checked against the score after the critical and
	// major-version rules ran.
	fallbackTrigger = 0.5

	transitionSeparator = "->"

	majorChangeRisk = "major version change detected"
	fallbackRisk    = "recommended: test before deploy"
)

// criticalPackages are matched as case-sensitive substrings of the name.
var criticalPackages = []string{"openssl", "systemd", "glibc", "libc6", "ld-linux"}

type RiskClassifier struct {
	critical []string
}

func NewRiskClassifier() RiskClassifier {
	return RiskClassifier{critical: criticalPackages}
}

// Classify turns one extracted record into a scored PackageUpdate. Rules
// run in a fixed order and only ever raise the score.
func (c RiskClassifier) Classify(ctx context.Context, record types.UpdateRecord) types.PackageUpdate {
	assert.NotEmpty(ctx, record.Name, "update record name must be set")

	current, next := SplitTransition(record.Transition)
	risks := []string{}
	score := baselineScore

	for _, token := range c.critical {
		if strings.Contains(record.Name, token) {
			risks = append(risks, fmt.Sprintf("%s is critical system package", token))
			score = max(score, criticalScore)
		}
	}

	if isMajorChange(current, next) {
		risks = append(risks, majorChangeRisk)
		score = max(score, majorScore)
	}

	if score < fallbackTrigger {
		risks = append(risks, fallbackRisk)
		score = max(score, fallbackScore)
	}

	return types.PackageUpdate{
		Name:      record.Name,
		Current:   current,
		New:       next,
		Risks:     risks,
		RiskScore: types.ScorePtr(score),
	}
}

// SplitTransition splits "old -> new" on the first separator. Without a
// separator the installed version is unknown and the whole fragment is the
// new version.
func SplitTransition(fragment string) (string, string) {
	before, after, found := strings.Cut(fragment, transitionSeparator)
	if !found {
		return types.UnknownVersion, strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// isMajorChange compares the text before the first '.' of both versions.
// The comparison is textual, "07" and "7" differ.
func isMajorChange(current string, next string) bool {
	if current == types.UnknownVersion || next == types.UnknownVersion {
		return false
	}
	return leadingComponent(current) != leadingComponent(next)
}

func leadingComponent(version string) string {
	head, _, _ := strings.Cut(version, ".")
	return head
}
