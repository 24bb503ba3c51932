package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full focus state at a point in time. The
// active lock in a snapshot may be stale; the engine re-runs its
// expiry check on load before exposing it.
type SnapshotData struct {
	Version int `json:"version"`

	SelectedAppIDs map[string]bool `json:"selected_app_ids,omitempty"`
	LastDuration   *DurationData   `json:"last_duration,omitempty"`
	DefaultKind    string          `json:"default_kind,omitempty"`

	ActiveLock *ActiveLockData `json:"active_lock,omitempty"`
	Schedules  []ScheduleData  `json:"schedules,omitempty"`
	Difficulty *DifficultyData `json:"difficulty,omitempty"`

	// Display preferences, opaque to the engine core.
	StatsRange string           `json:"stats_range,omitempty"`
	UsageWeek  []UsagePointData `json:"usage_week,omitempty"`
	TopApps    []AppUsageData   `json:"top_apps,omitempty"`

	// LLM-generated questions merged into the bank at load.
	CustomQuestions []QuestionData `json:"custom_questions,omitempty"`
}

// DurationData is a persisted duration preference.
type DurationData struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// ActiveLockData is the persisted form of the active lock.
type ActiveLockData struct {
	ID        string   `json:"id"`
	AppIDs    []string `json:"app_ids"`
	Kind      string   `json:"kind"`
	StartedAt string   `json:"started_at"` // RFC3339
	EndsAt    string   `json:"ends_at"`    // RFC3339
}

// ScheduleData is the persisted form of a schedule.
type ScheduleData struct {
	ID          string   `json:"id"`
	AppIDs      []string `json:"app_ids"`
	StartMinute int      `json:"start_minute"`
	EndMinute   int      `json:"end_minute"`
	Weekdays    []int    `json:"weekdays"` // 0=Sunday..6=Saturday
	Favorite    bool     `json:"favorite"`
}

// DifficultyData is the persisted adaptive-difficulty state.
type DifficultyData struct {
	Level  int `json:"level"`
	Streak int `json:"streak"`
}

// UsagePointData is one bar of the weekly usage series.
type UsagePointData struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// AppUsageData is one entry of the top-apps usage list.
type AppUsageData struct {
	AppID         string `json:"app_id"`
	MinutesPerDay int    `json:"minutes_per_day"`
}

// QuestionData is the persisted form of a custom question.
type QuestionData struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Difficulty  int      `json:"difficulty"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answer_index"`
}

// Snapshot represents a point-in-time capture of focus state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages focus state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LockEventData captures a lock lifecycle transition.
type LockEventData struct {
	LockID     string
	Action     string // start, expire, force_end
	Kind       string // soft or hard
	AppIDs     []string
	DurationMs int64
	Trigger    string // manual or schedule
	ScheduleID string
}

// LockEvent is a stored lock event.
type LockEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LockEventData
}

// ChallengeEventData captures a completed challenge outcome.
type ChallengeEventData struct {
	SessionID       string
	Difficulty      int
	QuestionCount   int
	CorrectCount    int
	Success         bool
	DifficultyAfter int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM usage per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage per model, for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// NextSequence returns the next global sequence number. Snapshots
	// use it to record which events they cover.
	NextSequence(ctx context.Context) (int64, error)

	// AppendLockEvent records a lock lifecycle event.
	AppendLockEvent(ctx context.Context, data LockEventData) error

	// AppendChallengeEvent records a challenge outcome event.
	AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLockEvents returns lock events, newest first.
	QueryLockEvents(ctx context.Context, opts QueryOpts) ([]LockEvent, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// ChallengeStats returns total and successful challenge counts.
	ChallengeStats(ctx context.Context) (total, succeeded int, err error)
}
