// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"focuslock/ent/lockevent"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// LockEvent is the model entity for the LockEvent schema.
type LockEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the lock this event belongs to
	LockID string `json:"lock_id,omitempty"`
	// start, expire, or force_end
	Action string `json:"action,omitempty"`
	// soft or hard
	Kind string `json:"kind,omitempty"`
	// Apps targeted by the lock
	AppIds []string `json:"app_ids,omitempty"`
	// Planned duration (on start only)
	DurationMs int64 `json:"duration_ms,omitempty"`
	// manual or schedule (on start only)
	Trigger string `json:"trigger,omitempty"`
	// Originating schedule for schedule-triggered locks
	ScheduleID   string `json:"schedule_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LockEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lockevent.FieldAppIds:
			values[i] = new([]byte)
		case lockevent.FieldID, lockevent.FieldSequence, lockevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case lockevent.FieldLockID, lockevent.FieldAction, lockevent.FieldKind, lockevent.FieldTrigger, lockevent.FieldScheduleID:
			values[i] = new(sql.NullString)
		case lockevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LockEvent fields.
func (_m *LockEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lockevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lockevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case lockevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case lockevent.FieldLockID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lock_id", values[i])
			} else if value.Valid {
				_m.LockID = value.String
			}
		case lockevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case lockevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case lockevent.FieldAppIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field app_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AppIds); err != nil {
					return fmt.Errorf("unmarshal field app_ids: %w", err)
				}
			}
		case lockevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case lockevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		case lockevent.FieldScheduleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_id", values[i])
			} else if value.Valid {
				_m.ScheduleID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LockEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LockEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LockEvent.
// Note that you need to call LockEvent.Unwrap() before calling this method if this LockEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LockEvent) Update() *LockEventUpdateOne {
	return NewLockEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LockEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LockEvent) Unwrap() *LockEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LockEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LockEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LockEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("lock_id=")
	builder.WriteString(_m.LockID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("app_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppIds))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteString(", ")
	builder.WriteString("schedule_id=")
	builder.WriteString(_m.ScheduleID)
	builder.WriteByte(')')
	return builder.String()
}

// LockEvents is a parsable slice of LockEvent.
type LockEvents []*LockEvent
