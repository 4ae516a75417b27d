// file: internals/events/bus.go
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Topic dikunci ke jenis data, bukan nama layar. Kolaborator subscribe
// berdasarkan minat (attendance/roster), bukan identitas screen.
type Topic string

const (
	TopicAttendance Topic = "attendance"
	TopicRoster     Topic = "roster"
)

type Event struct {
	Topic     Topic     `json:"topic"`
	Kind      string    `json:"kind"` // mis. "attendance_recorded", "session_opened"
	AcademyID uuid.UUID `json:"academy_id"`
	Payload   any       `json:"payload,omitempty"`
	At        time.Time `json:"at"`
}

type Bus struct {
	mu   sync.RWMutex
	subs map[Topic]map[int]chan Event
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Topic]map[int]chan Event)}
}

// Default dipakai lintas feature; main boleh mengganti dengan bus sendiri.
var Default = NewBus()

// Subscribe mengembalikan channel ber-buffer dan fungsi cancel.
// Cancel wajib dipanggil; channel ditutup oleh bus.
func (b *Bus) Subscribe(topic Topic, buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan Event)
	}
	id := b.next
	b.next++
	b.subs[topic][id] = ch
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if sub, ok := b.subs[topic][id]; ok {
			delete(b.subs[topic], id)
			close(sub)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish tidak pernah memblokir: subscriber yang penuh dilewati.
func (b *Bus) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs[e.Topic] {
		select {
		case ch <- e:
		default:
		}
	}
}
