package entity

// COCOClasses lists the 80 class labels in model output order.
var COCOClasses = []string{
	"person", "bicycle", "car", "motorcycle", "airplane", "bus", "train", "truck", "boat",
	"traffic light", "fire hydrant", "stop sign", "parking meter", "bench", "bird", "cat",
	"dog", "horse", "sheep", "cow", "elephant", "bear", "zebra", "giraffe", "backpack",
	"umbrella", "handbag", "tie", "suitcase", "frisbee", "skis", "snowboard", "sports ball",
	"kite", "baseball bat", "baseball glove", "skateboard", "surfboard", "tennis racket",
	"bottle", "wine glass", "cup", "fork", "knife", "spoon", "bowl", "banana", "apple",
	"sandwich", "orange", "broccoli", "carrot", "hot dog", "pizza", "donut", "cake",
	"chair", "couch", "potted plant", "bed", "dining table", "toilet", "tv", "laptop",
	"mouse", "remote", "keyboard", "cell phone", "microwave", "oven", "toaster", "sink",
	"refrigerator", "book", "clock", "vase", "scissors", "teddy bear", "hair drier", "toothbrush",
}

// ObjectTraits are the static priority and color relevance of a label.
type ObjectTraits struct {
	Priority      Priority
	ColorRelevant bool
}

// objectTraits maps labels relevant for colorblind assistance to their
// traits. Labels absent from the map fall back to {low, false}.
var objectTraits = map[string]ObjectTraits{
	"traffic light": {PriorityCritical, true},
	"stop sign":     {PriorityCritical, true},
	"car":           {PriorityHigh, true},
	"truck":         {PriorityHigh, true},
	"bus":           {PriorityHigh, true},
	"motorcycle":    {PriorityHigh, true},
	"bicycle":       {PriorityMedium, false},
	"person":        {PriorityMedium, false},
	"fire hydrant":  {PriorityLow, true},
	"dog":           {PriorityMedium, false},
	"cat":           {PriorityLow, false},
	"bird":          {PriorityLow, false},
	"bench":         {PriorityLow, false},
	"umbrella":      {PriorityLow, true},
	"backpack":      {PriorityLow, false},
	"handbag":       {PriorityLow, false},
	"suitcase":      {PriorityLow, false},
	"bottle":        {PriorityLow, false},
	"chair":         {PriorityLow, false},
	"couch":         {PriorityLow, false},
	"potted plant":  {PriorityLow, true},
	"tv":            {PriorityLow, false},
	"laptop":        {PriorityLow, false},
	"cell phone":    {PriorityLow, false},
	"boat":          {PriorityLow, false},
	"train":         {PriorityMedium, true},
	"airplane":      {PriorityLow, false},
}

// TraitsFor returns the static traits for a label.
func TraitsFor(label string) ObjectTraits {
	if t, ok := objectTraits[label]; ok {
		return t
	}
	return ObjectTraits{Priority: PriorityLow, ColorRelevant: false}
}
