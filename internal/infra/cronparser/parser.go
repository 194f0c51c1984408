package cronparser

import (
	"fmt"
	"strings"
	"time"

	cron "github.com/netresearch/go-cron"
)

// Standard five-field specs plus descriptors such as @daily.
var _parser = cron.MustNewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Parser computes restart times from cron specs.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// NextAfter returns the next occurrence strictly after `after`.
// A CRON_TZ=/TZ= prefix in spec wins over tz; with neither, UTC is used.
func (p *Parser) NextAfter(
	spec,
	tz string,
	after time.Time,
) (time.Time, error) {
	schedule, err := parse(spec, tz)
	if err != nil {
		return time.Time{}, err
	}

	return schedule.Next(after), nil
}

// Validate reports whether spec and tz form a usable schedule.
func Validate(spec, tz string) error {
	_, err := parse(spec, tz)

	return err
}

func parse(spec, tz string) (cron.Schedule, error) {
	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("cron timezone %q: %w", tz, err)
		}
	}

	schedule, err := _parser.Parse(buildSpec(spec, tz))
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	return schedule, nil
}

func buildSpec(spec, tz string) string {
	spec = strings.TrimSpace(spec)

	if strings.HasPrefix(spec, "CRON_TZ=") || strings.HasPrefix(spec, "TZ=") {
		return spec
	}

	if tz == "" {
		tz = "UTC"
	}

	return "CRON_TZ=" + tz + " " + spec
}
