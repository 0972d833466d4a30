// Package warmup ramps a fresh WhatsApp number up to full sending
// capacity over a fixed 28-day schedule.
package warmup

// ScheduleEntry maps one warmup day to its daily message ceiling.
type ScheduleEntry struct {
	Day         int    `json:"day"`
	MaxMessages int    `json:"max_messages"`
	Description string `json:"description"`
}

// scheduleDays is the total length of the ramp-up.
const scheduleDays = 28

var schedule = []ScheduleEntry{
	// Week 1: very conservative
	{Day: 1, MaxMessages: 10, Description: "Day 1 - very slow start"},
	{Day: 2, MaxMessages: 10, Description: "Day 2 - holding the low pace"},
	{Day: 3, MaxMessages: 15, Description: "Day 3 - slight increase"},
	{Day: 4, MaxMessages: 15, Description: "Day 4 - consolidating"},
	{Day: 5, MaxMessages: 20, Description: "Day 5 - small increase"},
	{Day: 6, MaxMessages: 20, Description: "Day 6 - consolidating"},
	{Day: 7, MaxMessages: 25, Description: "Day 7 - end of week 1"},

	// Week 2: moderate growth
	{Day: 8, MaxMessages: 30, Description: "Day 8 - moderate increase"},
	{Day: 9, MaxMessages: 35, Description: "Day 9 - keeping it up"},
	{Day: 10, MaxMessages: 40, Description: "Day 10 - progressing"},
	{Day: 11, MaxMessages: 50, Description: "Day 11 - bigger step"},
	{Day: 12, MaxMessages: 60, Description: "Day 12 - consolidating"},
	{Day: 13, MaxMessages: 70, Description: "Day 13 - progressing"},
	{Day: 14, MaxMessages: 80, Description: "Day 14 - end of week 2"},

	// Week 3: acceleration
	{Day: 15, MaxMessages: 100, Description: "Day 15 - 100 messages"},
	{Day: 16, MaxMessages: 120, Description: "Day 16 - accelerating"},
	{Day: 17, MaxMessages: 150, Description: "Day 17 - progressing"},
	{Day: 18, MaxMessages: 180, Description: "Day 18 - consolidating"},
	{Day: 19, MaxMessages: 200, Description: "Day 19 - 200 messages"},
	{Day: 20, MaxMessages: 250, Description: "Day 20 - accelerating"},
	{Day: 21, MaxMessages: 300, Description: "Day 21 - end of week 3"},

	// Week 4: full capacity
	{Day: 22, MaxMessages: 350, Description: "Day 22 - almost there"},
	{Day: 23, MaxMessages: 400, Description: "Day 23 - progressing"},
	{Day: 24, MaxMessages: 450, Description: "Day 24 - consolidating"},
	{Day: 25, MaxMessages: 500, Description: "Day 25 - full capacity"},
	{Day: 26, MaxMessages: 500, Description: "Day 26 - maintenance"},
	{Day: 27, MaxMessages: 500, Description: "Day 27 - maintenance"},
	{Day: 28, MaxMessages: 500, Description: "Day 28 - warmup complete"},
}

// Schedule returns the full 28-day ramp-up table.
func Schedule() []ScheduleEntry {
	out := make([]ScheduleEntry, len(schedule))
	copy(out, schedule)
	return out
}

// entryForDay resolves the schedule entry in effect on a given day.
// Days past the end of the table use the day-28 plateau.
func entryForDay(day int) ScheduleEntry {
	if day > scheduleDays {
		return schedule[len(schedule)-1]
	}
	if day < 1 {
		return schedule[0]
	}
	return schedule[day-1]
}
