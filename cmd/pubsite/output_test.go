package main

import (
	"strings"
	"testing"

	"pubsite/internal/publication"
)

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Errorf("truncateString(short) = %q", got)
	}
	long := strings.Repeat("x", 80)
	got := truncateString(long, 70)
	if len(got) != 70 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncateString(long) = %q (len %d)", got, len(got))
	}
}

func TestFormatRecordLine(t *testing.T) {
	rec := publication.Record{
		Citation: `Doe J., "A Paper", 2023.`,
		Date:     publication.Date{Year: 2023},
	}
	line := formatRecordLine(rec)
	if !strings.Contains(line, "2023") || !strings.Contains(line, "A Paper") {
		t.Errorf("formatRecordLine = %q", line)
	}

	undated := publication.Record{Citation: "no date"}
	if got := formatRecordLine(undated); !strings.Contains(got, "----") {
		t.Errorf("formatRecordLine (undated) = %q", got)
	}
}
