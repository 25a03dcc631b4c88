package page

// ActionKind tags a side effect requested during rendering.
type ActionKind uint8

const (
	ActionReset ActionKind = iota + 1
	ActionBootloader
	ActionSaveSettings
	ActionClearSettings
)

func (k ActionKind) String() string {
	switch k {
	case ActionReset:
		return "reset"
	case ActionBootloader:
		return "bootloader"
	case ActionSaveSettings:
		return "save-settings"
	case ActionClearSettings:
		return "clear-settings"
	default:
		return "unknown"
	}
}

// Action is a deferred command executed by the tick driver after the frame
// has been handed to the display.
type Action struct {
	Kind ActionKind
}

const maxActions = 8

// Actions is a fixed-capacity action queue. Duplicate actions queued within
// one tick are coalesced.
type Actions struct {
	n    int
	list [maxActions]Action
}

// Add queues a. It reports false when the queue is full.
func (a *Actions) Add(act Action) bool {
	for _, q := range a.list[:a.n] {
		if q == act {
			return true
		}
	}
	if a.n == maxActions {
		return false
	}
	a.list[a.n] = act
	a.n++
	return true
}

// List returns the queued actions in order.
func (a *Actions) List() []Action { return a.list[:a.n] }

func (a *Actions) Len() int { return a.n }

// Reset empties the queue.
func (a *Actions) Reset() { a.n = 0 }
