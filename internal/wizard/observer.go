package wizard

// Observer receives wizard events. Callbacks run synchronously inside the
// Controller operation that triggered them and must not call back into the
// Controller.
type Observer interface {
	// OnTransition is called after every position change.
	OnTransition(from, to Position)

	// OnFinalize is called once per Finalize call with the assembled snapshot.
	OnFinalize(snapshot Snapshot)
}

// NoopObserver ignores every event.
type NoopObserver struct{}

// OnTransition implements Observer.
func (NoopObserver) OnTransition(Position, Position) {}

// OnFinalize implements Observer.
func (NoopObserver) OnFinalize(Snapshot) {}

// CompositeObserver fans events out to several observers in registration order.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver returns an Observer forwarding to every non-nil
// observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	switch len(filtered) {
	case 0:
		return NoopObserver{}
	case 1:
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

// OnTransition implements Observer.
func (c *CompositeObserver) OnTransition(from, to Position) {
	for _, o := range c.observers {
		o.OnTransition(from, to)
	}
}

// OnFinalize implements Observer.
func (c *CompositeObserver) OnFinalize(snapshot Snapshot) {
	for _, o := range c.observers {
		o.OnFinalize(snapshot)
	}
}
