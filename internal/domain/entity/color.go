package entity

// HSV is a color in OpenCV scaling: H in [0,180], S and V in [0,255].
type HSV struct {
	H, S, V uint8
}

// ColorBucket is a named inclusive HSV range with a human-facing
// display name. Several buckets may share a display name (the two red
// hue ranges both display as "red").
type ColorBucket struct {
	Name    string
	Display string
	Lo, Hi  HSV
}

// Contains reports whether c falls inside the bucket's range.
func (b ColorBucket) Contains(c HSV) bool {
	return c.H >= b.Lo.H && c.H <= b.Hi.H &&
		c.S >= b.Lo.S && c.S <= b.Hi.S &&
		c.V >= b.Lo.V && c.V <= b.Hi.V
}

// ColorBuckets is the static bucket catalog. Order matters: it is the
// tie-break and iteration order everywhere breakdowns are scanned.
var ColorBuckets = []ColorBucket{
	{"red_low", "red", HSV{0, 100, 100}, HSV{10, 255, 255}},
	{"red_high", "red", HSV{160, 100, 100}, HSV{180, 255, 255}},
	{"orange", "orange", HSV{10, 100, 100}, HSV{25, 255, 255}},
	{"yellow", "yellow", HSV{25, 100, 100}, HSV{35, 255, 255}},
	{"green", "green", HSV{35, 100, 100}, HSV{85, 255, 255}},
	{"cyan", "cyan", HSV{85, 100, 100}, HSV{100, 255, 255}},
	{"blue", "blue", HSV{100, 100, 100}, HSV{130, 255, 255}},
	{"purple", "purple", HSV{130, 100, 100}, HSV{160, 255, 255}},
	{"white", "white", HSV{0, 0, 200}, HSV{180, 30, 255}},
	{"black", "black", HSV{0, 0, 0}, HSV{180, 255, 50}},
}

// DisplayName maps a bucket name to its display name. Unknown names
// pass through unchanged.
func DisplayName(bucket string) string {
	for _, b := range ColorBuckets {
		if b.Name == bucket {
			return b.Display
		}
	}
	return bucket
}

// ColorBreakdown maps bucket names to the percentage of region pixels
// inside that bucket's range. Only buckets above the retention
// threshold are present.
type ColorBreakdown map[string]float64
