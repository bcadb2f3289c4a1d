// Package library keeps generated plans alongside the trips they came from.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/store"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

var ErrNotFound = errors.New("saved trip not found")

type SavedTrip struct {
	Trip    trip.Trip       `json:"trip"`
	Plan    *optimizer.Plan `json:"plan"`
	SavedAt time.Time       `json:"saved_at"`
}

type Library struct {
	kv     store.KV
	now    func() time.Time
	logger zerolog.Logger
}

func New(kv store.KV, logger zerolog.Logger) *Library {
	return &Library{kv: kv, now: time.Now, logger: logger}
}

// Save stores the trip and its plan under the trip id. Saving an id that
// already exists replaces it without changing its position in List.
func (l *Library) Save(t trip.Trip, plan *optimizer.Plan) (*SavedTrip, error) {
	if t.ID == "" {
		return nil, fmt.Errorf("saving trip: id is required")
	}
	if plan == nil {
		return nil, fmt.Errorf("saving trip %s: plan is required", t.ID)
	}
	if plan.TripID != t.ID {
		return nil, fmt.Errorf("saving trip %s: plan belongs to trip %q", t.ID, plan.TripID)
	}

	st := &SavedTrip{Trip: t, Plan: plan, SavedAt: l.now().UTC()}
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encoding trip %s: %w", t.ID, err)
	}
	if err := l.kv.Upsert(t.ID, data); err != nil {
		return nil, fmt.Errorf("saving trip %s: %w", t.ID, err)
	}

	l.logger.Debug().Str("trip_id", t.ID).Msg("saved trip")
	return st, nil
}

func (l *Library) Get(id string) (*SavedTrip, error) {
	data, ok, err := l.kv.Get(id)
	if err != nil {
		return nil, fmt.Errorf("loading trip %s: %w", id, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	st, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding trip %s: %w", id, err)
	}
	return st, nil
}

func decode(data []byte) (*SavedTrip, error) {
	var st SavedTrip
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	if st.Plan == nil {
		return nil, fmt.Errorf("no plan stored")
	}
	if err := st.Plan.Check(); err != nil {
		return nil, err
	}
	return &st, nil
}

// List returns saved trips in the order they were first saved. Entries
// that no longer decode are skipped and logged.
func (l *Library) List() ([]SavedTrip, error) {
	records, err := l.kv.List()
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}

	out := make([]SavedTrip, 0, len(records))
	for _, r := range records {
		st, err := decode(r.Value)
		if err != nil {
			l.logger.Warn().Err(err).Str("trip_id", r.Key).Msg("skipping unreadable saved trip")
			continue
		}
		out = append(out, *st)
	}
	return out, nil
}

func (l *Library) Delete(id string) error {
	deleted, err := l.kv.Delete(id)
	if err != nil {
		return fmt.Errorf("deleting trip %s: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	l.logger.Debug().Str("trip_id", id).Msg("deleted trip")
	return nil
}

func (l *Library) IsSaved(id string) (bool, error) {
	_, ok, err := l.kv.Get(id)
	if err != nil {
		return false, fmt.Errorf("loading trip %s: %w", id, err)
	}
	return ok, nil
}
