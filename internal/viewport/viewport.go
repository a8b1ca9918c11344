// Package viewport rescales the scene when the window crosses the
// mobile/desktop width threshold.
package viewport

// DefaultThreshold is the width below which the layout is considered mobile.
const DefaultThreshold = 500.0

const (
	// ShrinkRatio applies when entering the mobile layout.
	ShrinkRatio = 3.0 / 5.0
	// GrowRatio applies when leaving it.
	GrowRatio = 5.0 / 3.0
)

// Scaler remembers the last width that triggered a layout change.
type Scaler struct {
	width     float64
	threshold float64
}

func New(width, threshold float64) *Scaler {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Scaler{width: width, threshold: threshold}
}

func (s *Scaler) mobileAt(w float64) bool { return w < s.threshold }

// Resize reports the ratio to apply to stored offsets for a new width.
// changed is false when the width is unchanged or stays on the same side of
// the threshold; the stored width is then left alone.
func (s *Scaler) Resize(width float64) (ratio float64, changed bool) {
	if width == s.width {
		return 1, false
	}
	if s.mobileAt(width) == s.mobileAt(s.width) {
		return 1, false
	}
	s.width = width
	if s.mobileAt(width) {
		return ShrinkRatio, true
	}
	return GrowRatio, true
}

func (s *Scaler) Mobile() bool       { return s.mobileAt(s.width) }
func (s *Scaler) Width() float64     { return s.width }
func (s *Scaler) Threshold() float64 { return s.threshold }
