package models

// Slot is a contiguous free interval inside the working window.
type Slot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// SplitPart is one fragment of an oversized task: its own start, length
// and date (the date may be the next day on overflow).
type SplitPart struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date"`
}

// SplitProposal is the structured outcome of a split attempt. CanSplit=false
// is a normal result, not an error; Reason says why, and SuggestedSlot is set
// when the task simply fits a single slot as-is.
type SplitProposal struct {
	CanSplit          bool        `json:"canSplit"`
	Reason            string      `json:"reason,omitempty"`
	Parts             []SplitPart `json:"parts,omitempty"`
	OverflowToNextDay bool        `json:"overflowToNextDay"`
	SuggestedSlot     *Slot       `json:"suggestedSlot,omitempty"`
}

// Conflict pairs a fixed-time task with the first event it overlaps.
type Conflict struct {
	Task             Task  `json:"task"`
	ConflictingEvent Event `json:"conflictingEvent"`
}

// Snapshot is the per-(user, date) input the planning algorithms run on.
type Snapshot struct {
	UserID         string          `json:"user"`
	Date           string          `json:"date"`
	Tasks          []Task          `json:"tasks"`
	Events         []Event         `json:"events"`
	TimeBlocks     []TimeBlock     `json:"timeBlocks"`
	RecurringRules []RecurringTask `json:"recurringRules"`
}

// ScheduleItem is one positioned entry in the visible day view.
type ScheduleItem struct {
	Event         Event   `json:"event"`
	TopPercent    float64 `json:"topPercent"`
	HeightPercent float64 `json:"heightPercent"`
}

// ProposalItem is one suggestion in an AI schedule proposal.
type ProposalItem struct {
	TaskID              string  `json:"taskId"`
	SuggestedTime       *string `json:"suggestedTime"`
	DurationMinutes     int     `json:"durationMinutes"`
	CombinedWithEventID *string `json:"combinedWithEventId"`
	Reasoning           string  `json:"reasoning"`
}

// ProposalResponse is a full-day schedule suggestion from the AI service.
type ProposalResponse struct {
	Schedule []ProposalItem `json:"schedule"`
	Warnings []string       `json:"warnings"`
}
