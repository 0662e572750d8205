package models

import "testing"

func TestValidBookingStatus(t *testing.T) {
	for _, status := range []string{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled} {
		if !ValidBookingStatus(status) {
			t.Errorf("ValidBookingStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"", "Pending", "done", "rejected"} {
		if ValidBookingStatus(status) {
			t.Errorf("ValidBookingStatus(%q) = true, want false", status)
		}
	}
}

func TestCanTransitionBooking(t *testing.T) {
	allowed := map[[2]string]bool{
		{BookingPending, BookingConfirmed}:   true,
		{BookingPending, BookingCancelled}:   true,
		{BookingConfirmed, BookingCompleted}: true,
	}

	statuses := []string{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransitionBooking(from, to); got != want {
				t.Errorf("CanTransitionBooking(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	for _, from := range []string{BookingCompleted, BookingCancelled} {
		for _, to := range []string{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled} {
			if CanTransitionBooking(from, to) {
				t.Errorf("terminal status %q allows transition to %q", from, to)
			}
		}
	}
}
