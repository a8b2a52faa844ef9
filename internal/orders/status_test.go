package orders

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusShipped, true},
		{StatusPending, StatusDelivered, true},
		{StatusProcessing, StatusPending, true},
		{StatusShipped, StatusDelivered, true},
		{StatusDelivered, StatusProcessing, true},
		// cancelled is terminal
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusProcessing, false},
		{StatusCancelled, StatusDelivered, false},
		// cancelled is never a generic target
		{StatusPending, StatusCancelled, false},
		{StatusShipped, StatusCancelled, false},
		// unknown values
		{StatusPending, Status("lost"), false},
		{Status("lost"), StatusPending, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if st, ok := ParseStatus("shipped"); !ok || st != StatusShipped {
		t.Errorf("ParseStatus(shipped) = %q, %v", st, ok)
	}
	if _, ok := ParseStatus("SHIPPED"); ok {
		t.Error("ParseStatus should be case sensitive")
	}
	if _, ok := ParseStatus("teleported"); ok {
		t.Error("ParseStatus accepted an unknown status")
	}
}
