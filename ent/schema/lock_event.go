package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LockEvent records lock lifecycle transitions (start, expire,
// force-end) for history and stats.
type LockEvent struct {
	ent.Schema
}

func (LockEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LockEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lock_id").
			NotEmpty().
			Comment("UUID of the lock this event belongs to"),
		field.String("action").
			NotEmpty().
			Comment("start, expire, or force_end"),
		field.String("kind").
			NotEmpty().
			Comment("soft or hard"),
		field.Strings("app_ids").
			Comment("Apps targeted by the lock"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Planned duration (on start only)"),
		field.String("trigger").
			Default("manual").
			Comment("manual or schedule (on start only)"),
		field.String("schedule_id").
			Default("").
			Comment("Originating schedule for schedule-triggered locks"),
	}
}

func (LockEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lock_id"),
		index.Fields("action"),
		index.Fields("kind"),
	}
}
