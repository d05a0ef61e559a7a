package core

import "fmt"

// EventKind enumerates what the simulator reports to presentation.
type EventKind int

const (
	EventCatchNormal EventKind = iota
	EventCatchGolden
	EventCatchRotten
	EventCatchBomb
	EventCatchHeart
	EventCatchClock
	EventCatchStar
	EventCatchChest // Requests an out-of-band chest resolution
	EventMiss
	EventScoreAdded
	EventChestResolved // A chest result was merged into the session
	EventShieldUp      // The kitsune shield switched on
	EventWeatherChanged
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCatchNormal:
		return "CatchNormal"
	case EventCatchGolden:
		return "CatchGolden"
	case EventCatchRotten:
		return "CatchRotten"
	case EventCatchBomb:
		return "CatchBomb"
	case EventCatchHeart:
		return "CatchHeart"
	case EventCatchClock:
		return "CatchClock"
	case EventCatchStar:
		return "CatchStar"
	case EventCatchChest:
		return "CatchChest"
	case EventMiss:
		return "Miss"
	case EventScoreAdded:
		return "ScoreAdded"
	case EventChestResolved:
		return "ChestResolved"
	case EventShieldUp:
		return "ShieldUp"
	case EventWeatherChanged:
		return "WeatherChanged"
	default:
		return "Unknown"
	}
}

// Event is one discrete thing that happened during a tick.
type Event struct {
	Kind    EventKind
	X, Y    float64 // Board position where it happened, if any
	Item    ItemType
	ItemID  uint64
	Amount  int     // ScoreAdded: points awarded
	Blocked bool    // Hazard or miss absorbed by protection
	Reward  Reward  // ChestResolved
	Weather Weather // WeatherChanged: the new weather
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventScoreAdded:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Amount)
	case EventChestResolved:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Reward)
	case EventWeatherChanged:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Weather)
	default:
		if e.Blocked {
			return e.Kind.String() + "(blocked)"
		}
		return e.Kind.String()
	}
}

// catchKind maps an item type to its catch event.
func catchKind(t ItemType) EventKind {
	switch t {
	case ItemGolden:
		return EventCatchGolden
	case ItemRotten:
		return EventCatchRotten
	case ItemBomb:
		return EventCatchBomb
	case ItemHeart:
		return EventCatchHeart
	case ItemClock:
		return EventCatchClock
	case ItemStar:
		return EventCatchStar
	case ItemChest:
		return EventCatchChest
	default:
		return EventCatchNormal
	}
}

// Kinds returns the kinds of a slice of events, in order.
func Kinds(events []Event) []EventKind {
	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}
