package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/tbruun/voyage-log/backend/internal/cache"
	"github.com/tbruun/voyage-log/backend/internal/domain"
)

// ErrSubmitInFlight is returned by Submit when a previous submission has not
// yet resolved. The submitting state is exclusive: a second trigger is
// rejected without touching the draft or the network.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// State is the submission flow's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

// String returns the lowercase state name, for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Notifier receives submission failures as non-blocking, form-level
// notifications (a toast in the UI). Field validation errors never pass
// through here — they are returned to the caller for inline rendering.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// createRequest is the wire body for POST /api/voyage/create.
type createRequest struct {
	Departure       string   `json:"departure"`
	Arrival         string   `json:"arrival"`
	PortOfLoading   string   `json:"portOfLoading"`
	PortOfDischarge string   `json:"portOfDischarge"`
	Vessel          string   `json:"vessel"`
	UnitTypes       []string `json:"unitTypes"`
}

// Submitter drives a draft through Idle → Validating → Submitting →
// (Succeeded | Failed). Validation strictly precedes normalization, which
// strictly precedes the single network call. A failed attempt leaves the
// draft intact so the user can correct and resubmit.
type Submitter struct {
	client    *http.Client
	baseURL   string
	lists     *cache.Cache
	notifier  Notifier
	log       *slog.Logger
	onSuccess func(domain.Voyage)

	mu    sync.Mutex
	state State
}

// NewSubmitter constructs a Submitter posting to baseURL. lists is the shared
// resource cache whose "voyages" entry is invalidated on success. notifier
// receives failure notifications; pass a no-op for headless use.
func NewSubmitter(client *http.Client, baseURL string, lists *cache.Cache, notifier Notifier, log *slog.Logger) *Submitter {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}
	return &Submitter{
		client:   client,
		baseURL:  baseURL,
		lists:    lists,
		notifier: notifier,
		log:      log,
		state:    StateIdle,
	}
}

// OnSuccess registers the completion callback, invoked exactly once per
// successful submission with the created voyage. The caller uses it to close
// the creation surface and refresh the voyage list.
func (s *Submitter) OnSuccess(fn func(domain.Voyage)) {
	s.onSuccess = fn
}

// State returns the current state of the submission flow.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit validates d (after re-syncing it from sel), normalizes its
// timestamps, and issues exactly one create call. It returns the created
// voyage on success, a *domain.ValidationError when field rules fail (no
// network call is made), ErrSubmitInFlight when called concurrently, or a
// transport/server error after notifying the failure side-channel.
func (s *Submitter) Submit(ctx context.Context, d *Draft, sel *Selection) (domain.Voyage, error) {
	if !s.begin() {
		return domain.Voyage{}, ErrSubmitInFlight
	}

	// Defensive re-sync: selection state is authoritative for vessel, ports,
	// and unit types, regardless of what the draft currently holds.
	if sel != nil {
		sel.Apply(d)
	}

	if fe := Validate(*d); len(fe) > 0 {
		// Back to interactive: the attempt is over but the form is not.
		s.setState(StateIdle)
		return domain.Voyage{}, domain.NewValidationError(fe)
	}

	// Validation guarantees both timestamps parse.
	dep, err := ParseInputTime(d.Departure)
	if err != nil {
		s.setState(StateIdle)
		return domain.Voyage{}, fmt.Errorf("draft.Submitter.Submit: departure: %w", err)
	}
	arr, err := ParseInputTime(d.Arrival)
	if err != nil {
		s.setState(StateIdle)
		return domain.Voyage{}, fmt.Errorf("draft.Submitter.Submit: arrival: %w", err)
	}

	payload := createRequest{
		Departure:       dep.Format(time.RFC3339),
		Arrival:         arr.Format(time.RFC3339),
		PortOfLoading:   d.PortOfLoading,
		PortOfDischarge: d.PortOfDischarge,
		Vessel:          d.VesselID,
		UnitTypes:       d.UnitTypeIDs,
	}

	s.setState(StateSubmitting)

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Voyage{}, s.fail("Failed to create voyage", fmt.Errorf("draft.Submitter.Submit: marshal: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/voyage/create", bytes.NewReader(body))
	if err != nil {
		return domain.Voyage{}, s.fail("Failed to create voyage", fmt.Errorf("draft.Submitter.Submit: build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Voyage{}, s.fail("Failed to create voyage", fmt.Errorf("draft.Submitter.Submit: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(resp)
		return domain.Voyage{}, s.fail("Failed to create voyage: "+msg, fmt.Errorf("draft.Submitter.Submit: server returned %s: %s", resp.Status, msg))
	}

	var created domain.Voyage
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		// The server may already have persisted the voyage; the submission
		// still counts as failed and the user may retry.
		return domain.Voyage{}, s.fail("Failed to create voyage", fmt.Errorf("draft.Submitter.Submit: decode response: %w", err))
	}

	s.setState(StateSucceeded)
	if s.lists != nil {
		s.lists.Invalidate(cache.KeyVoyages)
	}
	if s.onSuccess != nil {
		s.onSuccess(created)
	}
	return created, nil
}

// begin transitions Idle/Succeeded/Failed → Validating, refusing when a
// submission is mid-flight.
func (s *Submitter) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateValidating || s.state == StateSubmitting {
		return false
	}
	s.state = StateValidating
	return true
}

func (s *Submitter) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// fail records the failure, notifies the side-channel, and returns err.
func (s *Submitter) fail(notice string, err error) error {
	s.setState(StateFailed)
	s.log.Error("voyage submission failed", "error", err)
	if s.notifier != nil {
		s.notifier.Notify(notice)
	}
	return err
}

// errorMessage extracts the server's error field from a failure body.
// The body may be empty, non-JSON, or JSON without an error field (the
// classic unguarded `.message` access); fall back to the HTTP status text.
func errorMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return resp.Status
}
