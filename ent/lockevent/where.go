// Code generated by ent, DO NOT EDIT.

package lockevent

import (
	"focuslock/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LockID applies equality check predicate on the "lock_id" field. It's identical to LockIDEQ.
func LockID(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldLockID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldAction, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldKind, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldDurationMs, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldTrigger, v))
}

// ScheduleID applies equality check predicate on the "schedule_id" field. It's identical to ScheduleIDEQ.
func ScheduleID(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldScheduleID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LockIDEQ applies the EQ predicate on the "lock_id" field.
func LockIDEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldLockID, v))
}

// LockIDNEQ applies the NEQ predicate on the "lock_id" field.
func LockIDNEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldLockID, v))
}

// LockIDIn applies the In predicate on the "lock_id" field.
func LockIDIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldLockID, vs...))
}

// LockIDNotIn applies the NotIn predicate on the "lock_id" field.
func LockIDNotIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldLockID, vs...))
}

// LockIDGT applies the GT predicate on the "lock_id" field.
func LockIDGT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldLockID, v))
}

// LockIDGTE applies the GTE predicate on the "lock_id" field.
func LockIDGTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldLockID, v))
}

// LockIDLT applies the LT predicate on the "lock_id" field.
func LockIDLT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldLockID, v))
}

// LockIDLTE applies the LTE predicate on the "lock_id" field.
func LockIDLTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldLockID, v))
}

// LockIDContains applies the Contains predicate on the "lock_id" field.
func LockIDContains(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContains(FieldLockID, v))
}

// LockIDHasPrefix applies the HasPrefix predicate on the "lock_id" field.
func LockIDHasPrefix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasPrefix(FieldLockID, v))
}

// LockIDHasSuffix applies the HasSuffix predicate on the "lock_id" field.
func LockIDHasSuffix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasSuffix(FieldLockID, v))
}

// LockIDEqualFold applies the EqualFold predicate on the "lock_id" field.
func LockIDEqualFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEqualFold(FieldLockID, v))
}

// LockIDContainsFold applies the ContainsFold predicate on the "lock_id" field.
func LockIDContainsFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContainsFold(FieldLockID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContainsFold(FieldAction, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContainsFold(FieldKind, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldDurationMs, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// ScheduleIDEQ applies the EQ predicate on the "schedule_id" field.
func ScheduleIDEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEQ(FieldScheduleID, v))
}

// ScheduleIDNEQ applies the NEQ predicate on the "schedule_id" field.
func ScheduleIDNEQ(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNEQ(FieldScheduleID, v))
}

// ScheduleIDIn applies the In predicate on the "schedule_id" field.
func ScheduleIDIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldIn(FieldScheduleID, vs...))
}

// ScheduleIDNotIn applies the NotIn predicate on the "schedule_id" field.
func ScheduleIDNotIn(vs ...string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldNotIn(FieldScheduleID, vs...))
}

// ScheduleIDGT applies the GT predicate on the "schedule_id" field.
func ScheduleIDGT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGT(FieldScheduleID, v))
}

// ScheduleIDGTE applies the GTE predicate on the "schedule_id" field.
func ScheduleIDGTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldGTE(FieldScheduleID, v))
}

// ScheduleIDLT applies the LT predicate on the "schedule_id" field.
func ScheduleIDLT(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLT(FieldScheduleID, v))
}

// ScheduleIDLTE applies the LTE predicate on the "schedule_id" field.
func ScheduleIDLTE(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldLTE(FieldScheduleID, v))
}

// ScheduleIDContains applies the Contains predicate on the "schedule_id" field.
func ScheduleIDContains(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContains(FieldScheduleID, v))
}

// ScheduleIDHasPrefix applies the HasPrefix predicate on the "schedule_id" field.
func ScheduleIDHasPrefix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasPrefix(FieldScheduleID, v))
}

// ScheduleIDHasSuffix applies the HasSuffix predicate on the "schedule_id" field.
func ScheduleIDHasSuffix(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldHasSuffix(FieldScheduleID, v))
}

// ScheduleIDEqualFold applies the EqualFold predicate on the "schedule_id" field.
func ScheduleIDEqualFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldEqualFold(FieldScheduleID, v))
}

// ScheduleIDContainsFold applies the ContainsFold predicate on the "schedule_id" field.
func ScheduleIDContainsFold(v string) predicate.LockEvent {
	return predicate.LockEvent(sql.FieldContainsFold(FieldScheduleID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LockEvent) predicate.LockEvent {
	return predicate.LockEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LockEvent) predicate.LockEvent {
	return predicate.LockEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LockEvent) predicate.LockEvent {
	return predicate.LockEvent(sql.NotPredicates(p))
}
