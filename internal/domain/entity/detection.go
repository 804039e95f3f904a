package entity

// Priority is the alert priority attached to a detected object.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityNormal   Priority = "normal"
	PriorityLow      Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityNormal:   3,
	PriorityLow:      4,
}

// Rank returns the sort rank of the priority, lower is more urgent.
// Unknown priorities rank last.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

// BoundingBox is a detected object's rectangle in pixel coordinates.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Detection is one postprocessed detection: deduplicated, clipped to
// frame bounds and tagged with its static traits.
type Detection struct {
	Label          string
	Confidence     float64
	Box            BoundingBox
	StaticPriority Priority
	ColorRelevant  bool
}

// AnalyzedObject is a detection enriched with color analysis and a
// final per-object priority.
type AnalyzedObject struct {
	Label              string      `json:"label"`
	Confidence         float64     `json:"confidence"`
	Box                BoundingBox `json:"bbox"`
	DominantColors     []string    `json:"dominant_colors"`
	IsProblematicColor bool        `json:"is_problematic_color"`
	ColorWarning       string      `json:"color_warning,omitempty"`
	Priority           Priority    `json:"priority"`
	TrafficLightState  string      `json:"traffic_light_state,omitempty"`
}

// DetectionResult is the terminal artifact for one analyzed frame.
type DetectionResult struct {
	Success          bool             `json:"success"`
	Objects          []AnalyzedObject `json:"objects"`
	FrameWidth       int              `json:"frame_width"`
	FrameHeight      int              `json:"frame_height"`
	ProcessingTimeMS float64          `json:"processing_time_ms"`
	AlertMessage     string           `json:"alert_message,omitempty"`
}
