package dispatch

// State is the lifecycle stage of a Loop.
type State int

const (
	Idle      State = iota // not started, or a Start attempt failed
	Connected              // the node answered the probe
	Watching               // subscribed, waiting for blocks
	Scanning               // a block scan is in flight
	Stopped                // terminal
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connected:
		return "connected"
	case Watching:
		return "watching"
	case Scanning:
		return "scanning"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
