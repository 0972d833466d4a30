package antiban

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/dmfreire/zapdispatch/internal/config"
	"github.com/dmfreire/zapdispatch/internal/models"
)

var (
	namePlaceholder  = regexp.MustCompile(`(?i)\{\{(?:name|nome)\}\}`)
	phonePlaceholder = regexp.MustCompile(`(?i)\{\{(?:phone|telefone)\}\}`)
	nonDigits        = regexp.MustCompile(`[^\d]`)
)

// LimitStatus reports hourly/daily counters against their limits.
type LimitStatus struct {
	HourlyExceeded bool `json:"hourly_exceeded"`
	DailyExceeded  bool `json:"daily_exceeded"`
	HourlyCount    int  `json:"hourly_count"`
	DailyCount     int  `json:"daily_count"`
	HourlyLimit    int  `json:"hourly_limit"`
	DailyLimit     int  `json:"daily_limit"`
}

// PauseCheck tells the dispatch loop whether a preventive pause is due.
type PauseCheck struct {
	Needed   bool          `json:"needed"`
	Duration time.Duration `json:"duration"`
	Reason   string        `json:"reason,omitempty"`
}

// InstanceStats is a point-in-time snapshot of one instance's counters.
type InstanceStats struct {
	MessageCount           int           `json:"message_count"`
	DailyCount             int           `json:"daily_count"`
	HourlyCount            int           `json:"hourly_count"`
	LastMessageAt          *time.Time    `json:"last_message_at,omitempty"`
	IsBusinessHours        bool          `json:"is_business_hours"`
	TimeUntilBusinessHours time.Duration `json:"time_until_business_hours"`
}

// Engine tracks per-instance throttle state in process memory. Counters
// are advisory and reset on restart; day and hour buckets roll over on
// calendar boundaries in local time.
type Engine struct {
	cfg config.AntiBanConfig

	mu           sync.Mutex
	totals       map[string]int
	dailyCounts  map[string]int
	hourlyCounts map[string]int
	lastSend     map[string]time.Time

	now  func() time.Time
	rand *rand.Rand
}

func NewEngine(cfg config.AntiBanConfig) *Engine {
	return &Engine{
		cfg:          cfg,
		totals:       make(map[string]int),
		dailyCounts:  make(map[string]int),
		hourlyCounts: make(map[string]int),
		lastSend:     make(map[string]time.Time),
		now:          time.Now,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ComputeDelay draws a randomized inter-message delay. New accounts get
// the slower band. A centered jitter of cfg.JitterRatio of the base draw
// is added so the cadence never repeats exactly.
func (e *Engine) ComputeDelay(isNewAccount bool) time.Duration {
	minDelay := e.cfg.MinDelayMs
	maxDelay := e.cfg.MaxDelayMs
	if isNewAccount {
		minDelay = e.cfg.NewAccountMinDelayMs
		maxDelay = e.cfg.NewAccountMaxDelayMs
	}

	e.mu.Lock()
	base := float64(minDelay) + e.rand.Float64()*float64(maxDelay-minDelay)
	jitter := (e.rand.Float64() - 0.5) * e.cfg.JitterRatio * base
	e.mu.Unlock()

	return time.Duration(base+jitter) * time.Millisecond
}

// IsBusinessHours reports whether sends are allowed at the given moment:
// weekdays between the configured start hour (inclusive) and end hour
// (exclusive).
func (e *Engine) IsBusinessHours(now time.Time) bool {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	hour := now.Hour()
	return hour >= e.cfg.BusinessHoursStart && hour < e.cfg.BusinessHoursEnd
}

// TimeUntilBusinessHours returns how long to wait for the next allowed
// send window. Weekends are skipped entirely, so Friday night, Saturday
// and Sunday all resolve to Monday at the start hour.
func (e *Engine) TimeUntilBusinessHours(now time.Time) time.Duration {
	if e.IsBusinessHours(now) {
		return 0
	}

	next := time.Date(now.Year(), now.Month(), now.Day(),
		e.cfg.BusinessHoursStart, 0, 0, 0, now.Location())
	if !next.After(now) || now.Hour() >= e.cfg.BusinessHoursEnd {
		next = next.AddDate(0, 0, 1)
	}
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}

// CheckLimits compares the instance's current counters to the hourly and
// daily ceilings. The daily ceiling for an instance in warmup is applied
// by the caller, which holds the warmup schedule.
func (e *Engine) CheckLimits(instance string, isNewAccount bool) LimitStatus {
	dailyLimit := e.cfg.MaxPerDay
	if isNewAccount {
		dailyLimit = e.cfg.MaxPerDayNewAccount
	}

	e.mu.Lock()
	daily := e.dailyCounts[e.dailyKey(instance)]
	hourly := e.hourlyCounts[e.hourlyKey(instance)]
	e.mu.Unlock()

	return LimitStatus{
		HourlyExceeded: hourly >= e.cfg.MaxPerHour,
		DailyExceeded:  daily >= dailyLimit,
		HourlyCount:    hourly,
		DailyCount:     daily,
		HourlyLimit:    e.cfg.MaxPerHour,
		DailyLimit:     dailyLimit,
	}
}

// NeedsPreventivePause inserts an idle period after every Nth message so
// long runs never look like a constant burst. The long pause wins when
// both multiples coincide.
func (e *Engine) NeedsPreventivePause(instance string) PauseCheck {
	e.mu.Lock()
	count := e.totals[instance]
	e.mu.Unlock()

	if count <= 0 {
		return PauseCheck{}
	}

	if count%e.cfg.LongPauseEvery == 0 {
		return PauseCheck{
			Needed:   true,
			Duration: time.Duration(e.cfg.LongPauseDurationMs) * time.Millisecond,
			Reason:   "long preventive pause",
		}
	}
	if count%e.cfg.PauseEvery == 0 {
		return PauseCheck{
			Needed:   true,
			Duration: time.Duration(e.cfg.PauseDurationMs) * time.Millisecond,
			Reason:   "preventive pause",
		}
	}

	return PauseCheck{}
}

// RegisterSend records a successful send against the running total and
// the current day and hour buckets. Safe for concurrent campaign loops
// sharing one instance.
func (e *Engine) RegisterSend(instance string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.totals[instance]++
	e.dailyCounts[e.dailyKey(instance)]++
	e.hourlyCounts[e.hourlyKey(instance)]++
	e.lastSend[instance] = e.now()
}

// ResetCounters zeroes the running total for an instance.
func (e *Engine) ResetCounters(instance string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.totals[instance] = 0
}

// Stats snapshots the instance's counters for the metrics surface.
func (e *Engine) Stats(instance string) InstanceStats {
	now := e.now()

	e.mu.Lock()
	stats := InstanceStats{
		MessageCount: e.totals[instance],
		DailyCount:   e.dailyCounts[e.dailyKey(instance)],
		HourlyCount:  e.hourlyCounts[e.hourlyKey(instance)],
	}
	if last, ok := e.lastSend[instance]; ok {
		stats.LastMessageAt = &last
	}
	e.mu.Unlock()

	stats.IsBusinessHours = e.IsBusinessHours(now)
	stats.TimeUntilBusinessHours = e.TimeUntilBusinessHours(now)
	return stats
}

// Personalize substitutes {{name}}/{{nome}} and {{phone}}/{{telefone}}
// placeholders, case-insensitively. Unknown placeholders stay verbatim.
func (e *Engine) Personalize(template string, contact *models.Contact) string {
	out := template
	if contact.Name != "" {
		out = namePlaceholder.ReplaceAllString(out, contact.Name)
	}
	if contact.Phone != "" {
		out = phonePlaceholder.ReplaceAllString(out, contact.Phone)
	}
	return out
}

// NormalizePhone strips everything but digits and rejects destinations
// shorter than 10 digits (area code + number).
func NormalizePhone(raw string) (string, error) {
	cleaned := nonDigits.ReplaceAllString(strings.TrimSpace(raw), "")
	if len(cleaned) < 10 {
		return "", ErrInvalidPhone
	}
	return cleaned, nil
}

func (e *Engine) dailyKey(instance string) string {
	return instance + "_" + e.now().Format("2006-01-02")
}

func (e *Engine) hourlyKey(instance string) string {
	return instance + "_" + e.now().Format("2006-01-02-15")
}
