// Package combo tracks the decaying hit combo of a single run.
package combo

// Listener receives tracker notifications. Calls happen synchronously from
// the tracker method that caused them.
type Listener interface {
	TierChanged(old, new Tier)
	Payout(bonus int, tier Tier)
}

// Points configures how much each event adds to the combo.
type Points struct {
	Hit         int
	Kill        int
	SpecialKill int
}

// DefaultPoints are the standard hit/kill/special-kill increments.
var DefaultPoints = Points{Hit: 1, Kill: 2, SpecialKill: 5}

// Summary is what the persistence collaborator stores at session end.
type Summary struct {
	MaxCombo    int `json:"maxCombo"`
	TotalPoints int `json:"totalPoints"`
}

// Snapshot is a read-only view of the tracker for presentation.
type Snapshot struct {
	Current     int
	Max         int
	Tier        Tier
	Multiplier  float64
	TotalPoints int
	Remaining   float64
}

// Tracker is the combo state of one run. It is not safe for concurrent use;
// the session owns it and advances it from the tick.
type Tracker struct {
	window   float64
	points   Points
	listener Listener

	current   int
	max       int
	remaining float64
	tier      Tier
	total     int
}

type nopListener struct{}

func (nopListener) TierChanged(Tier, Tier) {}
func (nopListener) Payout(int, Tier) {}

// NewTracker creates a zeroed tracker. A nil listener discards notifications.
func NewTracker(window float64, points Points, l Listener) *Tracker {
	if l == nil {
		l = nopListener{}
	}
	return &Tracker{
		window:   window,
		points:   points,
		listener: l,
	}
}

// Reset zeroes everything, including the high-water mark. Used at run start.
func (t *Tracker) Reset() {
	t.current = 0
	t.max = 0
	t.remaining = 0
	t.tier = None
	t.total = 0
}

func (t *Tracker) OnHit() { t.add(t.points.Hit) }
func (t *Tracker) OnKill() { t.add(t.points.Kill) }
func (t *Tracker) OnSpecialKill() { t.add(t.points.SpecialKill) }

// OnReset ends the streak immediately. Fired when the player takes contact
// damage.
func (t *Tracker) OnReset() {
	t.remaining = t.window
	if t.current > 0 {
		t.end()
	}
}

// Update advances the decay countdown by dt and expires the combo when it
// runs out.
func (t *Tracker) Update(dt float64) {
	if t.current == 0 {
		return
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		t.end()
	}
}

func (t *Tracker) add(n int) {
	t.current += n
	if t.current > t.max {
		t.max = t.current
	}
	t.remaining = t.window
	t.setTier(TierFor(t.current))
	t.total += int(float64(t.current) * t.tier.Multiplier())
}

// end closes the streak. The payout is sized by the run's high-water mark,
// not by the streak that just ended.
func (t *Tracker) end() {
	reached := TierFor(t.max)
	t.current = 0
	t.setTier(None)
	t.listener.Payout(reached.Bonus(), reached)
}

func (t *Tracker) setTier(next Tier) {
	if next == t.tier {
		return
	}
	old := t.tier
	t.tier = next
	t.listener.TierChanged(old, next)
}

func (t *Tracker) Current() int { return t.current }
func (t *Tracker) Max() int { return t.max }
func (t *Tracker) Tier() Tier { return t.tier }
func (t *Tracker) Multiplier() float64 { return t.tier.Multiplier() }
func (t *Tracker) TotalPoints() int { return t.total }
func (t *Tracker) Remaining() float64 { return t.remaining }
func (t *Tracker) Summary() Summary { return Summary{MaxCombo: t.max, TotalPoints: t.total} }

func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Current:     t.current,
		Max:         t.max,
		Tier:        t.tier,
		Multiplier:  t.tier.Multiplier(),
		TotalPoints: t.total,
		Remaining:   t.remaining,
	}
}
