package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBusPublishSubscribe(t *testing.T) {
	b := NewBus()
	academyID := uuid.New()

	ch, cancel := b.Subscribe(TopicAttendance, 4)
	defer cancel()

	b.Publish(Event{Topic: TopicAttendance, Kind: "attendance_recorded", AcademyID: academyID})

	select {
	case e := <-ch:
		if e.Kind != "attendance_recorded" {
			t.Errorf("Kind = %q, want %q", e.Kind, "attendance_recorded")
		}
		if e.AcademyID != academyID {
			t.Errorf("AcademyID = %v, want %v", e.AcademyID, academyID)
		}
		if e.At.IsZero() {
			t.Error("At tidak boleh zero")
		}
	case <-time.After(time.Second):
		t.Fatal("event tidak diterima")
	}
}

func TestBusTopicIsolation(t *testing.T) {
	b := NewBus()

	attCh, cancelAtt := b.Subscribe(TopicAttendance, 1)
	defer cancelAtt()
	rosCh, cancelRos := b.Subscribe(TopicRoster, 1)
	defer cancelRos()

	b.Publish(Event{Topic: TopicRoster, Kind: "roster_changed"})

	select {
	case <-rosCh:
	case <-time.After(time.Second):
		t.Fatal("subscriber roster tidak menerima event")
	}

	select {
	case e := <-attCh:
		t.Fatalf("subscriber attendance menerima event topic lain: %+v", e)
	default:
	}
}

func TestBusSlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBus()

	_, cancel := b.Subscribe(TopicAttendance, 1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		// buffer 1: publish kedua dan ketiga harus di-drop, bukan blok
		for i := 0; i < 3; i++ {
			b.Publish(Event{Topic: TopicAttendance, Kind: "attendance_recorded"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish memblokir pada subscriber lambat")
	}
}

func TestBusCancelClosesChannel(t *testing.T) {
	b := NewBus()

	ch, cancel := b.Subscribe(TopicAttendance, 1)
	cancel()

	if _, ok := <-ch; ok {
		t.Error("channel masih terbuka setelah cancel")
	}

	// publish setelah cancel tidak boleh panic
	b.Publish(Event{Topic: TopicAttendance, Kind: "attendance_recorded"})
}
