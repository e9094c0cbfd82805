package location

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/models"
)

// FailureCode mirrors the error codes of the browser geolocation API.
type FailureCode int

const (
	PermissionDenied    FailureCode = 1
	PositionUnavailable FailureCode = 2
	Timeout             FailureCode = 3
)

func (c FailureCode) Message() string {
	switch c {
	case PermissionDenied:
		return "Location access was denied. Please allow location access or enter your address manually."
	case PositionUnavailable:
		return "Your location is unavailable right now. Please try again or enter your address manually."
	case Timeout:
		return "Finding your location took too long. Please try again."
	default:
		return "We couldn't get your location. Please enter your address manually."
	}
}

// ErrSuperseded is returned when a newer resolution started for the same
// session before this one could be written.
var ErrSuperseded = errors.New("location resolution superseded")

// Fix is what the device reported.
type Fix struct {
	Coordinates *models.Coordinates
	Failure     FailureCode
}

type Resolution struct {
	Coordinates models.Coordinates
	Details     models.LocationDetails
	Error       string
}

type Geocoder interface {
	Reverse(ctx context.Context, coords models.Coordinates) (models.LocationDetails, error)
}

type ticket struct {
	mu      sync.Mutex
	gen     uint64
	pending int // guarded by Tracker.mu
}

// Tracker hands out generation numbers per key so that only the latest
// resolution for a session gets written. A key is only tracked while a
// resolution for it is in flight.
type Tracker struct {
	mu      sync.Mutex
	tickets map[string]*ticket
}

func NewTracker() *Tracker {
	return &Tracker{tickets: make(map[string]*ticket)}
}

func (t *Tracker) acquire(key string, create bool) *ticket {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.tickets[key]
	if !ok {
		if !create {
			return nil
		}
		e = &ticket{}
		t.tickets[key] = e
	}
	e.pending++
	return e
}

func (t *Tracker) release(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.tickets[key]
	if !ok {
		return
	}
	e.pending--
	if e.pending <= 0 {
		delete(t.tickets, key)
	}
}

// Begin supersedes every resolution already in flight for key. Every Begin
// must be paired with a Done once the resolution has finished.
func (t *Tracker) Begin(key string) uint64 {
	e := t.acquire(key, true)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.gen++
	return e.gen
}

func (t *Tracker) Done(key string) {
	t.release(key)
}

// Supersede invalidates the resolutions in flight for key, if any.
func (t *Tracker) Supersede(key string) {
	e := t.acquire(key, false)
	if e == nil {
		return
	}
	defer t.release(key)

	e.mu.Lock()
	e.gen++
	e.mu.Unlock()
}

// CommitIf runs write only while gen is still the newest generation for key.
// Begin for the same key waits until write returns.
func (t *Tracker) CommitIf(key string, gen uint64, write func() error) error {
	e := t.acquire(key, false)
	if e == nil {
		return ErrSuperseded
	}
	defer t.release(key)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gen != gen {
		return ErrSuperseded
	}
	return write()
}

// Len reports how many keys have a resolution in flight.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.tickets)
}

type Resolver struct {
	geocoder Geocoder
	tracker  *Tracker
}

func NewResolver(geocoder Geocoder, tracker *Tracker) *Resolver {
	return &Resolver{geocoder: geocoder, tracker: tracker}
}

// ResolveCurrentLocation turns a device fix into a Resolution and hands it to
// commit, unless a newer resolution for the same key started meanwhile.
// Device failures become a Resolution carrying a user-facing message.
func (r *Resolver) ResolveCurrentLocation(ctx context.Context, key string, fix Fix, commit func(Resolution) error) (Resolution, error) {
	gen := r.tracker.Begin(key)
	defer r.tracker.Done(key)

	var res Resolution

	switch {
	case fix.Coordinates == nil:
		failure := fix.Failure
		if failure == 0 {
			failure = PositionUnavailable
		}
		res = Resolution{Error: failure.Message()}
	default:
		details, err := r.geocoder.Reverse(ctx, *fix.Coordinates)
		if err != nil {
			return Resolution{}, fmt.Errorf("reverse geocoding: %w", err)
		}
		res = Resolution{Coordinates: *fix.Coordinates, Details: details}
	}

	if err := r.tracker.CommitIf(key, gen, func() error { return commit(res) }); err != nil {
		return Resolution{}, err
	}

	return res, nil
}

// Supersede invalidates in-flight resolutions, e.g. when the user types an
// address by hand.
func (r *Resolver) Supersede(key string) {
	r.tracker.Supersede(key)
}
