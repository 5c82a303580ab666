package temporal

import (
	"fmt"
	"testing"
	"time"

	"github.com/repohist/repohist-go/internal/parse"
)

// historyAt builds a newest-first history with commits at the given day
// offsets before now.
func historyAt(now time.Time, message string, daysAgo ...int) []parse.CommitRecord {
	history := make([]parse.CommitRecord, 0, len(daysAgo))
	for i, days := range daysAgo {
		history = append(history, parse.CommitRecord{
			Hash:      fmt.Sprintf("%040d", i),
			Timestamp: now.Add(-time.Duration(days) * 24 * time.Hour),
			Message:   message,
		})
	}
	return history
}

func TestClassifyLifecycle_VeryActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// 11 commits inside 30 days must classify as the strongest tier,
	// never fall through to a weaker one.
	days := make([]int, 11)
	for i := range days {
		days[i] = i
	}
	history := historyAt(now, "update handler", days...)

	summary := ClassifyLifecycle(history, now)

	if summary.Activity != ActivityVeryActive {
		t.Errorf("expected %q, got %q", ActivityVeryActive, summary.Activity)
	}
}

func TestClassifyLifecycle_Tiers(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		daysAgo  []int
		expected string
	}{
		{"six in 30d is active", []int{1, 2, 3, 4, 5, 6}, ActivityActive},
		{"eleven in 90d is moderately active", []int{40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50}, ActivityModeratelyActive},
		{"eleven in 365d is occasionally modified", []int{100, 110, 120, 130, 140, 150, 160, 170, 180, 190, 200}, ActivityOccasionallyModified},
		{"one in 365d is rarely modified", []int{200}, ActivityRarelyModified},
		{"nothing in 365d is inactive", []int{400, 500}, ActivityInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := historyAt(now, "update handler", tt.daysAgo...)
			summary := ClassifyLifecycle(history, now)
			if summary.Activity != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, summary.Activity)
			}
		})
	}
}

func TestClassifyLifecycle_CreationAndHotspots(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	history := []parse.CommitRecord{
		{Hash: coHashA, Timestamp: now, Message: "fix bug"},
		{Hash: coHashB, Timestamp: now.Add(-5 * 24 * time.Hour), Message: "add feature"},
		{Hash: coHashC, Timestamp: now.Add(-400 * 24 * time.Hour), Message: "initial"},
	}

	summary := ClassifyLifecycle(history, now)

	if !summary.CreatedAt.Equal(history[2].Timestamp) {
		t.Errorf("expected creation at oldest commit %v, got %v", history[2].Timestamp, summary.CreatedAt)
	}
	if !summary.LastModifiedAt.Equal(history[0].Timestamp) {
		t.Errorf("expected last modification at newest commit %v, got %v", history[0].Timestamp, summary.LastModifiedAt)
	}
	if summary.TotalCommits != 3 {
		t.Errorf("expected 3 total commits, got %d", summary.TotalCommits)
	}

	// "fix bug" and "add feature" start with hotspot prefixes; "initial"
	// does not. Hotspots keep newest-first order.
	if len(summary.Hotspots) != 2 {
		t.Fatalf("expected 2 hotspots, got %d", len(summary.Hotspots))
	}
	if summary.Hotspots[0].Message != "fix bug" || summary.Hotspots[1].Message != "add feature" {
		t.Errorf("unexpected hotspots: %q, %q", summary.Hotspots[0].Message, summary.Hotspots[1].Message)
	}

	// Two commits in the trailing 30 days, nothing else within a year.
	if summary.Activity != ActivityRarelyModified {
		t.Errorf("expected %q, got %q", ActivityRarelyModified, summary.Activity)
	}
}

func TestClassifyLifecycle_HotspotCap(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	history := historyAt(now, "fix flaky test", 1, 2, 3, 4, 5, 6, 7)

	summary := ClassifyLifecycle(history, now)

	if len(summary.Hotspots) != maxHotspots {
		t.Errorf("expected hotspots capped at %d, got %d", maxHotspots, len(summary.Hotspots))
	}
}

func TestClassifyLifecycle_CaseInsensitivePrefixes(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	history := []parse.CommitRecord{
		{Hash: coHashA, Timestamp: now, Message: "Refactor gateway"},
		{Hash: coHashB, Timestamp: now.Add(-24 * time.Hour), Message: "IMPLEMENT retries"},
		{Hash: coHashC, Timestamp: now.Add(-48 * time.Hour), Message: "chore: bump deps"},
	}

	summary := ClassifyLifecycle(history, now)

	if len(summary.Hotspots) != 2 {
		t.Fatalf("expected 2 hotspots, got %d", len(summary.Hotspots))
	}
}

func TestClassifyLifecycle_EmptyHistory(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	summary := ClassifyLifecycle(nil, now)

	if !summary.CreatedAt.IsZero() {
		t.Errorf("expected zero creation time, got %v", summary.CreatedAt)
	}
	if summary.Activity != ActivityInactive {
		t.Errorf("expected %q, got %q", ActivityInactive, summary.Activity)
	}
	if summary.Hotspots == nil || len(summary.Hotspots) != 0 {
		t.Errorf("expected empty hotspot list, got %v", summary.Hotspots)
	}
}

func TestClassifyLifecycle_FutureTimestampCountsAsCurrent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	history := []parse.CommitRecord{
		{Hash: coHashA, Timestamp: now.Add(2 * time.Hour), Message: "fix clock skew"},
	}

	summary := ClassifyLifecycle(history, now)

	if summary.Activity != ActivityRarelyModified {
		t.Errorf("expected %q, got %q", ActivityRarelyModified, summary.Activity)
	}
}
