package widget

// EventCode identifies what happened to an object.
type EventCode int

const (
	// EventAll matches every code when used as a callback filter.
	EventAll EventCode = iota
	EventPressed
	EventClicked
	EventDelete
)

func (c EventCode) String() string {
	switch c {
	case EventAll:
		return "all"
	case EventPressed:
		return "pressed"
	case EventClicked:
		return "clicked"
	case EventDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event is passed to callbacks.
type Event struct {
	Code     EventCode
	Target   *Object
	Current  *Object
	UserData any
}

// EventCallback handles an event sent to an object.
type EventCallback func(e *Event)

type eventHandler struct {
	cb       EventCallback
	filter   EventCode
	userData any
}
