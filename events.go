package pluribus

// EventType identifies a kind of engine lifecycle event.
type EventType uint8

const (
	EventRebuilt     EventType = iota // particle store replaced; Count = particles
	EventWaveSpawned                  // new wave at radius 0; Count = live waves
	EventWaveRetired                  // waves discarded this tick; Count = how many
	EventRevealed                     // every text particle activated; Count = text particles
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventRebuilt:
		return "rebuilt"
	case EventWaveSpawned:
		return "wave-spawned"
	case EventWaveRetired:
		return "wave-retired"
	case EventRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Event carries lifecycle data from the engine to an EventSink.
type Event struct {
	Type  EventType
	Tick  uint64
	Count int
}

// EventSink is the interface for optional event forwarding, e.g. into an ECS
// world. EmitEvent is called synchronously from inside Tick and Rebuild.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) {
	f(event)
}
