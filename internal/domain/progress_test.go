package domain

import (
	"errors"
	"testing"
)

func TestProgressValidate(t *testing.T) {
	valid := Progress{EnrollmentID: 1, LessonID: 2, ProgressPercent: 50}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := valid
	invalid.EnrollmentID = 0
	if err := invalid.Validate(); !errors.Is(err, ErrProgressEnrollmentIDInvalid) {
		t.Errorf("Expected error %v, got %v", ErrProgressEnrollmentIDInvalid, err)
	}

	invalid = valid
	invalid.LessonID = -1
	if err := invalid.Validate(); !errors.Is(err, ErrProgressLessonIDInvalid) {
		t.Errorf("Expected error %v, got %v", ErrProgressLessonIDInvalid, err)
	}

	invalid = valid
	invalid.ProgressPercent = -0.5
	if err := invalid.Validate(); !errors.Is(err, ErrProgressPercentOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrProgressPercentOutOfRange, err)
	}

	invalid = valid
	invalid.ProgressPercent = 100.5
	if err := invalid.Validate(); !errors.Is(err, ErrProgressPercentOutOfRange) {
		t.Errorf("Expected error %v, got %v", ErrProgressPercentOutOfRange, err)
	}

	// Boundaries are inclusive.
	valid.ProgressPercent = 0
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error at 0, got %v", err)
	}
	valid.ProgressPercent = 100
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error at 100, got %v", err)
	}
}

func TestProgressCompleted(t *testing.T) {
	cases := []struct {
		percent   float64
		completed bool
	}{
		{0, false},
		{99.9, false},
		{100, true},
	}

	for _, tc := range cases {
		p := Progress{EnrollmentID: 1, LessonID: 1, ProgressPercent: tc.percent}
		if p.Completed() != tc.completed {
			t.Errorf("Completed() at %.1f: expected %v", tc.percent, tc.completed)
		}
	}
}
