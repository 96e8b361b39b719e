package commands

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/kyle-bartlett/analysis-dashboards/sheets"
)

func TestWriteTSV(t *testing.T) {
	table := sheets.Table{
		{"Part", "Week 1", "Week 2"},
		{"A2543", "12"},
		{"A2663", "40", "35"},
	}

	expected := "Part\tWeek 1\tWeek 2\nA2543\t12\nA2663\t40\t35\n"

	var b bytes.Buffer

	if err := writeTSV(&b, table); err != nil {
		t.Fatalf("Unexpected error returned from writeTSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, b.String())
	}
}

func TestReadTSV(t *testing.T) {
	expected := sheets.Table{
		{"Part", "Week 1", "Week 2"},
		{"A2543", "12"},
		{"A2663", "40", "35"},
	}

	table, err := readTSV(strings.NewReader("Part\tWeek 1\tWeek 2\nA2543\t12\nA2663\t40\t35\n"))
	if err != nil {
		t.Fatalf("Unexpected error returned from readTSV (%v)", err)
	}

	if !reflect.DeepEqual(table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, table)
	}
}

func TestReadTSVWithEmptyFile(t *testing.T) {
	if _, err := readTSV(strings.NewReader("")); err == nil {
		t.Errorf("Expected error for empty TSV file, got none")
	}
}

func TestWriteTSVRoundTrip(t *testing.T) {
	table := sheets.Table{
		{"Part", "Week 1", "Week 2", "Week 3"},
		{"A3102", "7", "", "19"},
		{"A3110"},
	}

	var b bytes.Buffer

	if err := writeTSV(&b, table); err != nil {
		t.Fatalf("Unexpected error returned from writeTSV (%v)", err)
	}

	round, err := readTSV(&b)
	if err != nil {
		t.Fatalf("Unexpected error returned from readTSV (%v)", err)
	}

	if !reflect.DeepEqual(round, table) {
		t.Errorf("Incorrect round-tripped table\n   expected: %v\n   got:      %v\n", table, round)
	}
}
