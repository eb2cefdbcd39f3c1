// deck/deck.go

// Package deck defines the ordered, observable collection of named cards
// that a stack widget displays. The collection is owned by the host; the
// widget only observes it.
package deck

import "github.com/google/uuid"

// Item is the opaque name of a single card. Items are compared by value;
// two equal Items always resolve to the same image.
type Item string

func (it Item) String() string { return string(it) }

// EventKind identifies what happened to an observed model.
type EventKind uint8

const (
	// ItemsAdded means one or more items were inserted.
	ItemsAdded EventKind = iota
	// ItemsRemoved means one or more items were removed.
	ItemsRemoved
	// ContentsChanged means the contents were replaced wholesale.
	ContentsChanged
)

func (k EventKind) String() string {
	switch k {
	case ItemsAdded:
		return "ItemsAdded"
	case ItemsRemoved:
		return "ItemsRemoved"
	case ContentsChanged:
		return "ContentsChanged"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners on any model change. Observers are
// expected to treat every kind as "something changed" and repaint; the
// kind is informational only.
type Event struct {
	Kind EventKind
}

// Listener receives change events from a Model.
type Listener func(Event)

// Subscription is the handle returned by Subscribe. Holding it is the only
// way to detach a listener again.
type Subscription = uuid.UUID

// Model is an ordered collection of Items. Index 0 is the bottom of the
// stack, the last index the top. Implementations are single-threaded: all
// calls, including mutation, must come from the host's one UI thread.
type Model interface {
	Len() int
	At(i int) Item
	Subscribe(l Listener) Subscription
	Unsubscribe(s Subscription)
}
