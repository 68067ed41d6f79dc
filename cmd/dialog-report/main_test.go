package main

import (
	"errors"
	"strings"
	"testing"
)

func TestReportPhrasesByStatus(t *testing.T) {
	cases := []struct {
		status int
		result string
		want   string
	}{
		{statusOK, "kernel.old\n", "kernel.old\n"},
		{statusCancel, "ignored", "Cancel pressed.\n"},
		{statusHelp, "item 3", "Help requested: item 3\n"},
		{statusExtra, "item 3", "Extra pressed: item 3\n"},
		{statusItemHelp, "item 3", "Item help requested: item 3\n"},
		{statusEscape, "", "Aborted.\n"},
	}
	for _, tc := range cases {
		var out strings.Builder
		if err := report(tc.status, strings.NewReader(tc.result), &out); err != nil {
			t.Fatalf("status %d: unexpected error %v", tc.status, err)
		}
		if out.String() != tc.want {
			t.Fatalf("status %d: expected %q, got %q", tc.status, tc.want, out.String())
		}
	}
}

func TestReportWithoutResultFile(t *testing.T) {
	var out strings.Builder
	if err := report(statusOK, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "\n" {
		t.Fatalf("expected empty payload line, got %q", out.String())
	}
}

func TestReportRejectsUnknownStatus(t *testing.T) {
	var out strings.Builder
	err := report(42, nil, &out)
	if !errors.Is(err, errUnknownStatus) {
		t.Fatalf("expected unknown status error, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unknown status must not write output, got %q", out.String())
	}
}
