package ui

import (
	"testing"
	"time"
)

func TestStatusPreemption(t *testing.T) {
	var s Status

	first := s.Show("Reminder set for 12/25/2025 at 9:0!", time.Millisecond)
	if first == nil {
		t.Fatal("Show should return an expiry command")
	}
	firstMsg := first().(statusExpiredMsg)

	second := s.ShowError("Config error", time.Millisecond)
	secondMsg := second().(statusExpiredMsg)

	if s.Text() != "Config error" || !s.IsError() {
		t.Fatalf("status = %q (error %v)", s.Text(), s.IsError())
	}

	s.expire(firstMsg)
	if s.Text() != "Config error" {
		t.Error("expiry of a replaced message cleared the current one")
	}

	s.expire(secondMsg)
	if s.Text() != "" || s.IsError() {
		t.Errorf("status = %q after expiry", s.Text())
	}
}
