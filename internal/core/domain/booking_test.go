package domain

import "testing"

func TestBookingStatus_Valid(t *testing.T) {
	valid := []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("%q must be valid", s)
		}
	}
	for _, s := range []BookingStatus{"", "cancelled", "PENDING", "done"} {
		if s.Valid() {
			t.Errorf("%q must not be valid", s)
		}
	}
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusPending, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusCompleted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
