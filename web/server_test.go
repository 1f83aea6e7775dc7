package web

import (
	"testing"
	"time"

	"github.com/Turf-FC/website/model"
)

func TestDateFormatter(t *testing.T) {
	tests := []struct {
		d    time.Time
		want string
	}{
		{d: time.Date(2025, 3, 8, 18, 30, 0, 0, time.UTC), want: "Mar 8, 2025"},
		{d: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), want: "Dec 31, 2024"},
		{d: time.Time{}, want: "TBD"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := dateFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestDatetimeFormatter(t *testing.T) {
	tests := []struct {
		d    time.Time
		want string
	}{
		{d: time.Date(2025, 3, 8, 18, 30, 0, 0, time.UTC), want: "Mar 8, 2025, 06:30 PM"},
		{d: time.Date(2025, 6, 14, 9, 5, 0, 0, time.UTC), want: "Jun 14, 2025, 09:05 AM"},
		{d: time.Time{}, want: "TBD"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := datetimeFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestScoreFormatter(t *testing.T) {
	tests := []struct {
		s    *model.Score
		want string
	}{
		{s: nil, want: "vs"},
		{s: &model.Score{Home: 2, Away: 1}, want: "2 - 1"},
		{s: &model.Score{Home: 0, Away: 0}, want: "0 - 0"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := scoreFormatter(tc.s)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestGoalDiffFormatter(t *testing.T) {
	tests := []struct {
		gd   int
		want string
	}{
		{gd: 3, want: "+3"},
		{gd: 0, want: "0"},
		{gd: -2, want: "-2"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := goalDiffFormatter(tc.gd)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestJoinValues(t *testing.T) {
	tests := map[string]struct {
		values any
		want   string
	}{
		"string slice": {values: []string{"p3", "p1"}, want: "p3,p1"},
		"any slice":    {values: []any{"t1", "t2"}, want: "t1,t2"},
		"single":       {values: []string{"p1"}, want: "p1"},
		"empty":        {values: []string{}, want: ""},
		"nil values":   {values: nil, want: ""},
		"wrong type":   {values: 42, want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := joinValues(tc.values)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestHasValue(t *testing.T) {
	tests := map[string]struct {
		values any
		v      string
		want   bool
	}{
		"string slice hit":  {values: []string{"p1", "p2"}, v: "p2", want: true},
		"string slice miss": {values: []string{"p1", "p2"}, v: "p3", want: false},
		"any slice hit":     {values: []any{"t1", "t2"}, v: "t1", want: true},
		"any slice miss":    {values: []any{"t1"}, v: "t9", want: false},
		"nil values":        {values: nil, v: "t1", want: false},
		"wrong type":        {values: 42, v: "42", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := hasValue(tc.values, tc.v)
			if tc.want != got {
				t.Errorf("expected: %v, got: %v", tc.want, got)
			}
		})
	}
}
