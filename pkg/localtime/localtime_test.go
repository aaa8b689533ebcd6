package localtime

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stamp/pkg/timestamp"
)

func TestConvert_FixedZoneOffset(t *testing.T) {
	converter := In(time.FixedZone("UTC+2", 2*60*60))

	got := converter.Convert(timestamp.Timestamp{
		Year: 2021, Month: 5, Day: 1, Hours: 11, Minutes: 58, Seconds: 27.239,
	})

	want := timestamp.Timestamp{
		Year: 2021, Month: 5, Day: 1, Hours: 13, Minutes: 58, Seconds: 27.239,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("converted timestamp mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_RollsIntoNextDay(t *testing.T) {
	converter := In(time.FixedZone("UTC+2", 2*60*60))

	got := converter.Convert(timestamp.Timestamp{
		Year: 2021, Month: 5, Day: 1, Hours: 23, Minutes: 30,
	})

	want := timestamp.Timestamp{Year: 2021, Month: 5, Day: 2, Hours: 1, Minutes: 30}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("converted timestamp mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_NegativeOffsetCrossesMonth(t *testing.T) {
	converter := In(time.FixedZone("UTC-5", -5*60*60))

	got := converter.Convert(timestamp.Timestamp{
		Year: 2021, Month: 5, Day: 1, Hours: 0, Minutes: 30,
	})

	want := timestamp.Timestamp{Year: 2021, Month: 4, Day: 30, Hours: 19, Minutes: 30}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("converted timestamp mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_HalfHourZonePreservesFraction(t *testing.T) {
	converter := In(time.FixedZone("UTC+5:30", 5*60*60+30*60))

	got := converter.Convert(timestamp.Timestamp{
		Year: 2021, Month: 5, Day: 1, Hours: 11, Minutes: 58, Seconds: 2.234,
	})

	want := timestamp.Timestamp{
		Year: 2021, Month: 5, Day: 1, Hours: 17, Minutes: 28, Seconds: 2.234,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("converted timestamp mismatch (-want +got):\n%s", diff)
	}
}

func TestIn_NilLocationFallsBackToUTC(t *testing.T) {
	converter := In(nil)

	ts := timestamp.Timestamp{Year: 2021, Month: 5, Day: 1, Hours: 11, Minutes: 58, Seconds: 27.239}
	if diff := cmp.Diff(ts, converter.Convert(ts)); diff != "" {
		t.Fatalf("UTC conversion should be identity (-want +got):\n%s", diff)
	}
}

func TestDevice_BindsHostZone(t *testing.T) {
	converter := Device()
	if converter.Location() != time.Local {
		t.Fatalf("expected device converter to bind time.Local")
	}
}
