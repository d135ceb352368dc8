package command

// Queue is a bounded mailbox between the transports (stdin reader, MQTT
// subscriber) and the control loop. Offer never blocks the transports and
// Drain never blocks the loop.
type Queue struct {
	ch chan string
}

func NewQueue(capacity int) *Queue {
	return &Queue{ch: make(chan string, capacity)}
}

// Offer enqueues a line, dropping it when the loop is behind.
func (q *Queue) Offer(line string) bool {
	select {
	case q.ch <- line:
		return true
	default:
		return false
	}
}

// Drain returns up to max pending lines without blocking.
func (q *Queue) Drain(max int) []string {
	var lines []string
	for len(lines) < max {
		select {
		case line := <-q.ch:
			lines = append(lines, line)
		default:
			return lines
		}
	}
	return lines
}
