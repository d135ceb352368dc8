package feed

// FakePublisher records published lines for tests.
type FakePublisher struct {
	Lines  []string
	Closed bool

	// PublishError, if set, is returned by Publish.
	PublishError error
}

func (f *FakePublisher) Publish(line string) error {
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Lines = append(f.Lines, line)
	return nil
}

func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}
