package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failing assertions can't be observed without mocking *testing.T, so the
// success paths are exercised directly.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e2e4", "e2e4")
	AssertEqual(t, []string{"e3", "e4"}, []string{"e3", "e4"})
	AssertEqual(t, 8, 8, "board has %d rows", 8)
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("illegal")
	AssertErrorIs(t, fmt.Errorf("turn 3: %w", sentinel), sentinel)
	AssertNoError(t, nil)
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "with message")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "Waiting for black\nCHECK!", "CHECK!")
	AssertContains(t, "anything", "")
	AssertNotContains(t, "Waiting for white", "CHECKMATE!", "status")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		args []interface{}
		want string
	}{
		{nil, ""},
		{[]interface{}{"plain"}, "plain"},
		{[]interface{}{"seed %d ply %d", 7, 12}, "seed 7 ply 12"},
		{[]interface{}{42}, "42"},
	}

	for _, tt := range tests {
		if got := formatMessage(tt.args...); got != tt.want {
			t.Errorf("formatMessage(%v) = %q; want %q", tt.args, got, tt.want)
		}
	}
}
