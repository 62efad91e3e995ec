package ui

// quietPresenter consumes events and records stats but produces no output.
type quietPresenter struct {
	monitors []Monitor
}

func (p *quietPresenter) Run(events <-chan Event) error {
	for ev := range events {
		record(p.monitors, ev)
	}
	return nil
}

func (p *quietPresenter) Summary() string {
	return ""
}
