package constants

import "strings"

// ==========================
// Conference type
// ==========================
const (
	ConferenceICICYTA = "ICICYTA"
	ConferenceICODSA  = "ICODSA"
)

var ConferenceTypes = []string{ConferenceICICYTA, ConferenceICODSA}

// ==========================
// Schedule type
// ==========================
const (
	ScheduleTalk           = "TALK"
	ScheduleBreak          = "BREAK"
	ScheduleOneDayActivity = "ONE_DAY_ACTIVITY"
)

var ScheduleTypes = []string{ScheduleTalk, ScheduleBreak, ScheduleOneDayActivity}

// ==========================
// Room type
// ==========================
const (
	RoomMain     = "MAIN"
	RoomParallel = "PARALLEL"
)

var RoomTypes = []string{RoomMain, RoomParallel}

// ==========================
// Track session mode
// ==========================
const (
	SessionOnline  = "ONLINE"
	SessionOffline = "OFFLINE"
)

var TrackSessionModes = []string{SessionOnline, SessionOffline}

func OneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

func JoinAllowed(allowed []string) string {
	return strings.Join(allowed, ", ")
}
