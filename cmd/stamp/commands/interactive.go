package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goliatone/go-stamp/pkg/prompt"
	"github.com/goliatone/go-stamp/pkg/timestamp"
)

// promptTimestamp gathers the six timestamp fields through the driver,
// validating each answer before moving to the next prompt.
func promptTimestamp(ctx context.Context, driver prompt.Driver) (timestamp.Timestamp, error) {
	var ts timestamp.Timestamp

	fields := []struct {
		message string
		def     string
		assign  func(string) error
	}{
		{"Year", "1970", intField(&ts.Year, -999999, 999999)},
		{"Month (1-12)", "1", intField(&ts.Month, 1, 12)},
		{"Day (1-31)", "1", intField(&ts.Day, 1, 31)},
		{"Hours (0-23)", "0", intField(&ts.Hours, 0, 23)},
		{"Minutes (0-59)", "0", intField(&ts.Minutes, 0, 59)},
		{"Seconds (fractional ok)", "0", secondsField(&ts.Seconds)},
	}

	for _, field := range fields {
		assign := field.assign
		answer, err := driver.Input(ctx, prompt.InputConfig{
			Message:   field.message,
			Default:   field.def,
			Validator: func(value string) error { return assign(value) },
		})
		if err != nil {
			return timestamp.Timestamp{}, err
		}
		if err := assign(answer); err != nil {
			return timestamp.Timestamp{}, err
		}
	}

	return ts, nil
}

// promptTemplate lets the user pick among the available template names.
func promptTemplate(ctx context.Context, driver prompt.Driver, names []string) (string, error) {
	index, err := driver.Select(ctx, prompt.SelectConfig{
		Message: "Template",
		Options: names,
	})
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(names) {
		return "", fmt.Errorf("no template selected")
	}
	return names[index], nil
}

func intField(target *int, min, max int) func(string) error {
	return func(value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("not a whole number: %q", value)
		}
		if n < min || n > max {
			return fmt.Errorf("%d outside %d..%d", n, min, max)
		}
		*target = n
		return nil
	}
}

func secondsField(target *float64) func(string) error {
	return func(value string) error {
		s, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", value)
		}
		if s < 0 || s >= 60 {
			return fmt.Errorf("%v outside [0, 60)", s)
		}
		*target = s
		return nil
	}
}
