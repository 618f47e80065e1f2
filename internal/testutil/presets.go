package testutil

import "time"

// Standard run GUIDs. The first two share the "aaaa" prefix.
const (
	GUIDDraft   = "aaaa1111-0000-4000-8000-000000000001"
	GUIDRevised = "aaaa2222-0000-4000-8000-000000000002"
	GUIDOther   = "bbbb3333-0000-4000-8000-000000000003"
)

// WithStandardRuns adds three runs a day apart, oldest first:
//
//	draft    "Meet me at the old mill."
//	revised  "Meet me at the new mill, alone."
//	other    "Attack at dawn!" (graphemes, unnamed)
func (b *Builder) WithStandardRuns() *Builder {
	now := time.Now().Truncate(time.Second)

	return b.
		WithRun(GUIDDraft, Name("draft"),
			Message("Meet me at the old mill."),
			CreatedAt(now.Add(-48*time.Hour))).
		WithRun(GUIDRevised, Name("revised"),
			Message("Meet me at the new mill, alone."),
			CreatedAt(now.Add(-24*time.Hour))).
		WithRun(GUIDOther, Unit("graphemes"),
			Message("Attack at dawn!"),
			CreatedAt(now))
}
