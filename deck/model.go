// deck/model.go

package deck

import "github.com/google/uuid"

// SliceModel is the reference Model implementation: a plain slice with
// change notification. Zero value is usable as an empty model.
type SliceModel struct {
	items     []Item
	listeners map[Subscription]Listener
}

// NewSliceModel creates a model seeded with the given items.
func NewSliceModel(items ...Item) *SliceModel {
	m := &SliceModel{}
	m.items = append(m.items, items...)
	return m
}

func (m *SliceModel) Len() int      { return len(m.items) }
func (m *SliceModel) At(i int) Item { return m.items[i] }

// Items returns a copy of the current contents, bottom first.
func (m *SliceModel) Items() []Item { return append([]Item(nil), m.items...) }

// Subscribe registers l and returns the handle needed to detach it.
func (m *SliceModel) Subscribe(l Listener) Subscription {
	if m.listeners == nil {
		m.listeners = make(map[Subscription]Listener)
	}
	s := uuid.New()
	m.listeners[s] = l
	return s
}

// Unsubscribe detaches the listener registered under s. Unknown handles
// are ignored, so releasing a handle twice is harmless.
func (m *SliceModel) Unsubscribe(s Subscription) {
	delete(m.listeners, s)
}

// Append adds items to the top of the stack.
func (m *SliceModel) Append(items ...Item) {
	if len(items) == 0 {
		return
	}
	m.items = append(m.items, items...)
	m.notify(Event{Kind: ItemsAdded})
}

// RemoveAt removes the item at index i.
func (m *SliceModel) RemoveAt(i int) Item {
	it := m.items[i]
	m.items = append(m.items[:i], m.items[i+1:]...)
	m.notify(Event{Kind: ItemsRemoved})
	return it
}

// Set replaces the whole contents.
func (m *SliceModel) Set(items []Item) {
	m.items = append(m.items[:0:0], items...)
	m.notify(Event{Kind: ContentsChanged})
}

func (m *SliceModel) notify(ev Event) {
	for _, l := range m.listeners {
		l(ev)
	}
}
