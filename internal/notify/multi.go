package notify

// Multi fans out every notification to all configured sinks.
type Multi struct {
	sinks []Notifier
}

var _ Notifier = (*Multi)(nil)

func NewMulti(sinks ...Notifier) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) Success(title, description string) {
	for _, s := range m.sinks {
		s.Success(title, description)
	}
}

func (m *Multi) Error(title, description string) {
	for _, s := range m.sinks {
		s.Error(title, description)
	}
}

func (m *Multi) Info(title, description string) {
	for _, s := range m.sinks {
		s.Info(title, description)
	}
}
