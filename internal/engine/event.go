package engine

import "slices"

// ListenerID identifies a subscription so it can be removed later.
type ListenerID int

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// EventWithArg is a multi-cast event with one argument.
type EventWithArg[T any] struct {
	nextID    ListenerID
	listeners []listener[T]
}

// AddListener subscribes callback. A nil callback is ignored and gets the
// zero ID.
func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) {
	e.listeners = slices.DeleteFunc(e.listeners, func(l listener[T]) bool {
		return l.id == id
	})
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener subscribed before the call. Listeners may
// subscribe or unsubscribe while being invoked.
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range slices.Clone(e.listeners) {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}

// Event is an EventWithArg without an argument.
type Event struct {
	inner EventWithArg[struct{}]
}

func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.inner.AddListener(func(struct{}) { callback() })
}

func (e *Event) RemoveListener(id ListenerID) {
	e.inner.RemoveListener(id)
}

func (e *Event) RemoveAllListeners() {
	e.inner.RemoveAllListeners()
}

func (e *Event) Invoke() {
	e.inner.Invoke(struct{}{})
}

func (e *Event) GetListenerCount() int {
	return e.inner.GetListenerCount()
}
