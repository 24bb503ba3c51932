// Code generated by ent, DO NOT EDIT.

package ent

import (
	"focuslock/ent/challengeevent"
	"focuslock/ent/llmrequestevent"
	"focuslock/ent/lockevent"
	"focuslock/ent/schema"
	"focuslock/ent/snapshot"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	challengeeventMixin := schema.ChallengeEvent{}.Mixin()
	challengeeventMixinFields0 := challengeeventMixin[0].Fields()
	_ = challengeeventMixinFields0
	challengeeventFields := schema.ChallengeEvent{}.Fields()
	_ = challengeeventFields
	// challengeeventDescTimestamp is the schema descriptor for timestamp field.
	challengeeventDescTimestamp := challengeeventMixinFields0[1].Descriptor()
	// challengeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	challengeevent.DefaultTimestamp = challengeeventDescTimestamp.Default.(func() time.Time)
	// challengeeventDescSessionID is the schema descriptor for session_id field.
	challengeeventDescSessionID := challengeeventFields[0].Descriptor()
	// challengeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	challengeevent.SessionIDValidator = challengeeventDescSessionID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lockeventMixin := schema.LockEvent{}.Mixin()
	lockeventMixinFields0 := lockeventMixin[0].Fields()
	_ = lockeventMixinFields0
	lockeventFields := schema.LockEvent{}.Fields()
	_ = lockeventFields
	// lockeventDescTimestamp is the schema descriptor for timestamp field.
	lockeventDescTimestamp := lockeventMixinFields0[1].Descriptor()
	// lockevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lockevent.DefaultTimestamp = lockeventDescTimestamp.Default.(func() time.Time)
	// lockeventDescLockID is the schema descriptor for lock_id field.
	lockeventDescLockID := lockeventFields[0].Descriptor()
	// lockevent.LockIDValidator is a validator for the "lock_id" field. It is called by the builders before save.
	lockevent.LockIDValidator = lockeventDescLockID.Validators[0].(func(string) error)
	// lockeventDescAction is the schema descriptor for action field.
	lockeventDescAction := lockeventFields[1].Descriptor()
	// lockevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	lockevent.ActionValidator = lockeventDescAction.Validators[0].(func(string) error)
	// lockeventDescKind is the schema descriptor for kind field.
	lockeventDescKind := lockeventFields[2].Descriptor()
	// lockevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	lockevent.KindValidator = lockeventDescKind.Validators[0].(func(string) error)
	// lockeventDescDurationMs is the schema descriptor for duration_ms field.
	lockeventDescDurationMs := lockeventFields[4].Descriptor()
	// lockevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	lockevent.DefaultDurationMs = lockeventDescDurationMs.Default.(int64)
	// lockeventDescTrigger is the schema descriptor for trigger field.
	lockeventDescTrigger := lockeventFields[5].Descriptor()
	// lockevent.DefaultTrigger holds the default value on creation for the trigger field.
	lockevent.DefaultTrigger = lockeventDescTrigger.Default.(string)
	// lockeventDescScheduleID is the schema descriptor for schedule_id field.
	lockeventDescScheduleID := lockeventFields[6].Descriptor()
	// lockevent.DefaultScheduleID holds the default value on creation for the schedule_id field.
	lockevent.DefaultScheduleID = lockeventDescScheduleID.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
