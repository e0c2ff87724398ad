// Package scheduler turns pointer drag-and-drop gestures into
// deterministic itinerary commands.
//
// The gesture is modeled as an explicit three-message protocol
// (BeginDrag, UpdateDragPosition, then Drop or Cancel) decoupled from
// any platform gesture API. Drop classifies the captured payload: an
// id already present in the trip is a reschedule, anything else is an
// insert.
package scheduler

import (
	"time"

	"github.com/wanderplan/wanderplan/pkg/geometry"
	"github.com/wanderplan/wanderplan/pkg/itinerary"
	"github.com/wanderplan/wanderplan/pkg/types"
)

// State of a drag gesture.
type State int

const (
	// Idle means no drag is in progress.
	Idle State = iota
	// Dragging means a payload has been captured and not yet dropped
	// or cancelled.
	Dragging
)

// DragPayload is the serializable capture of a drag source: either a
// catalog experience or an existing itinerary item. Exactly one of the
// two should be set.
type DragPayload struct {
	Experience *types.Experience    `json:"experience,omitempty"`
	Item       *types.ItineraryItem `json:"item,omitempty"`
}

// Empty reports whether the payload carries no source at all.
func (p DragPayload) Empty() bool {
	return p.Experience == nil && p.Item == nil
}

// DropResult describes the outcome of a completed drop.
type DropResult struct {
	// NoOp is true when no payload was retrievable: the drop did
	// nothing, and that is not an error.
	NoOp bool
	// Rescheduled is true when the drop moved an existing item rather
	// than inserting a new one.
	Rescheduled bool
	// Item is the inserted or rescheduled item as stored.
	Item types.ItineraryItem
	// TimeSlot is the coarse display label for the drop time
	// (morning, afternoon, evening, night).
	TimeSlot string
}

// Scheduler drives the drag state machine against one itinerary store.
type Scheduler struct {
	store     *itinerary.Store
	pxPerHour float64

	state State
	// current is the payload of the in-flight drag; last is the most
	// recent capture, kept as the fallback when the transferable
	// payload is lost at drop time.
	current DragPayload
	last    DragPayload
	// previewY is transient visual state only; cleared on drop/cancel.
	previewY float64
}

// New returns a scheduler bound to the store. Pass pxPerHour <= 0 for
// the default render scale.
func New(store *itinerary.Store, pxPerHour float64) *Scheduler {
	if pxPerHour <= 0 {
		pxPerHour = geometry.DefaultPxPerHour
	}
	return &Scheduler{store: store, pxPerHour: pxPerHour}
}

// State returns the current gesture state.
func (s *Scheduler) State() State {
	return s.state
}

// BeginDrag captures the drag source and enters Dragging. The payload
// is sanitized on capture so media image lists survive serialization
// as plain string arrays.
func (s *Scheduler) BeginDrag(payload DragPayload) {
	if payload.Experience != nil {
		exp := *payload.Experience
		exp.Media.Sanitize()
		payload.Experience = &exp
	}
	if payload.Item != nil {
		it := *payload.Item
		it.Media.Sanitize()
		payload.Item = &it
	}
	s.current = payload
	if !payload.Empty() {
		s.last = payload
	}
	s.state = Dragging
}

// UpdateDragPosition records the transient pointer position while
// dragging. It has no effect on the store.
func (s *Scheduler) UpdateDragPosition(y float64) {
	if s.state == Dragging {
		s.previewY = y
	}
}

// Cancel ends the drag without a drop. No store mutation; transient
// preview state is cleared.
func (s *Scheduler) Cancel() {
	s.state = Idle
	s.current = DragPayload{}
	s.previewY = 0
}

// Drop completes the gesture over a day column at vertical coordinate
// y. The drop time is derived from y; an existing item id becomes a
// reschedule preserving the item's current duration, anything else an
// insert. With no retrievable payload the drop is a no-op.
func (s *Scheduler) Drop(day time.Time, y float64) (DropResult, error) {
	payload := s.current
	if payload.Empty() {
		// Transferable payload lost; fall back to the last capture.
		payload = s.last
	}

	s.state = Idle
	s.current = DragPayload{}
	s.previewY = 0

	if payload.Empty() {
		return DropResult{NoOp: true}, nil
	}

	dropTime := geometry.PositionToTime(y, s.pxPerHour)
	slot := geometry.TimeSlotLabel(dropTime)

	if payload.Item != nil && s.store.HasItem(payload.Item.ID) {
		duration := payload.Item.DurationHours()
		start := dropTime
		end := dropTime + duration
		d := day
		updated, err := s.store.UpdateItem(payload.Item.ID, itinerary.ItemPatch{
			Day:       &d,
			StartTime: &start,
			EndTime:   &end,
		})
		if err != nil {
			return DropResult{}, err
		}
		return DropResult{Rescheduled: true, Item: updated, TimeSlot: slot}, nil
	}

	candidate := s.candidateFrom(payload)
	candidate.Day = day
	candidate.StartTime = dropTime
	candidate.EndTime = 0 // recomputed from duration by the store
	added, err := s.store.AddItem(candidate)
	if err != nil {
		return DropResult{}, err
	}
	return DropResult{Item: added, TimeSlot: slot}, nil
}

// candidateFrom converts a payload into an itinerary item candidate.
func (s *Scheduler) candidateFrom(payload DragPayload) types.ItineraryItem {
	if payload.Item != nil {
		return *payload.Item
	}

	exp := payload.Experience
	return types.ItineraryItem{
		ExperienceID:   exp.ID,
		ExperienceName: exp.Name,
		Price:          exp.Price,
		Duration:       exp.Duration,
		Category:       exp.Category,
		Media:          exp.Media,
		Location:       exp.Location,
	}
}
