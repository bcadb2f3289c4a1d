package trip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/christopherklint97/jetlagr/internal/clock"
)

// Validate reports every problem that would stop a plan from being built,
// joined into one error. Leg continuity is deliberately not checked: a
// trip's legs are taken in the order given.
func (t Trip) Validate() error {
	var errs []error

	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, errors.New("trip name is required"))
	}
	if _, err := clock.Parse(t.UsualSleepStart); err != nil {
		errs = append(errs, fmt.Errorf("usual sleep start: %w", err))
	}
	if _, err := clock.Parse(t.UsualSleepEnd); err != nil {
		errs = append(errs, fmt.Errorf("usual sleep end: %w", err))
	}
	if !t.Sensitivity.Valid() {
		errs = append(errs, fmt.Errorf("unknown sensitivity %q", t.Sensitivity))
	}
	if !t.CaffeineHabits.Valid() {
		errs = append(errs, fmt.Errorf("unknown caffeine habits %q", t.CaffeineHabits))
	}
	if !t.CabinType.Valid() {
		errs = append(errs, fmt.Errorf("unknown cabin type %q", t.CabinType))
	}
	if len(t.Legs) == 0 {
		errs = append(errs, errors.New("at least one leg is required"))
	}
	for i, leg := range t.Legs {
		if err := leg.validate(); err != nil {
			errs = append(errs, fmt.Errorf("leg %d: %w", i+1, err))
		}
	}

	return errors.Join(errs...)
}

func (l Leg) validate() error {
	var errs []error
	if strings.TrimSpace(l.OriginCity) == "" && strings.TrimSpace(l.OriginCode) == "" {
		errs = append(errs, errors.New("origin is required"))
	}
	if strings.TrimSpace(l.DestCity) == "" && strings.TrimSpace(l.DestCode) == "" {
		errs = append(errs, errors.New("destination is required"))
	}

	depart, derr := ParseLocal(l.DepartLocal, l.OriginTZ)
	if derr != nil {
		errs = append(errs, fmt.Errorf("departure: %w", derr))
	}
	arrive, aerr := ParseLocal(l.ArriveLocal, l.DestTZ)
	if aerr != nil {
		errs = append(errs, fmt.Errorf("arrival: %w", aerr))
	}
	if derr == nil && aerr == nil && arrive.Before(depart) {
		errs = append(errs, fmt.Errorf("arrival %s is before departure %s", l.ArriveLocal, l.DepartLocal))
	}
	return errors.Join(errs...)
}
