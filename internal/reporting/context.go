package reporting

import (
	"context"
	"maps"
	"time"
)

type reportingMetaContextKey struct{}

// ReportingMeta is the scope data attached to every report sent from a
// context: free-form tags and extras, the save slot being played, and when
// the session started.
type ReportingMeta struct {
	tags      map[string]string
	extras    map[string]string
	slotID    string
	startedAt time.Time
}

// MetaFromContext returns a copy of the context's reporting meta. The copy
// owns its maps, so callers can add to it without touching what other
// goroutines see.
func MetaFromContext(ctx context.Context) ReportingMeta {
	meta, ok := ctx.Value(reportingMetaContextKey{}).(ReportingMeta)
	if !ok {
		return ReportingMeta{
			tags:   make(map[string]string),
			extras: make(map[string]string),
		}
	}
	return ReportingMeta{
		tags:      maps.Clone(meta.tags),
		extras:    maps.Clone(meta.extras),
		slotID:    meta.slotID,
		startedAt: meta.startedAt,
	}
}

func addMetaToContext(ctx context.Context, meta ReportingMeta) context.Context {
	return context.WithValue(ctx, reportingMetaContextKey{}, meta)
}

func setStartedAtInContext(ctx context.Context, startedAt time.Time) context.Context {
	meta := MetaFromContext(ctx)
	meta.startedAt = startedAt

	return addMetaToContext(ctx, meta)
}

func AddExtrasToContext(ctx context.Context, extras map[string]string) context.Context {
	meta := MetaFromContext(ctx)

	for key, value := range extras {
		meta.extras[key] = value
	}

	return addMetaToContext(ctx, meta)
}

func AddTagsToContext(ctx context.Context, tags map[string]string) context.Context {
	meta := MetaFromContext(ctx)

	for key, value := range tags {
		meta.tags[key] = value
	}

	return addMetaToContext(ctx, meta)
}

// SetSlotIDInContext records which save slot the session is playing, so
// reports can be grouped per slot.
func SetSlotIDInContext(ctx context.Context, slotID string) context.Context {
	meta := MetaFromContext(ctx)
	meta.slotID = slotID

	return addMetaToContext(ctx, meta)
}
