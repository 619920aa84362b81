package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flowbook/models"
	"flowbook/services/flow"
)

// memoryFlowService keeps flow states in a map, standing in for the
// Redis-backed session service.
type memoryFlowService struct {
	states map[string]models.FlowState
}

func (m *memoryFlowService) StartSession(_ context.Context, _ string, _ models.PreselectionInput) (string, *models.FlowState, error) {
	return "", nil, errors.New("not implemented")
}

func (m *memoryFlowService) GetState(_ context.Context, sessionID string) (*models.FlowState, error) {
	state, ok := m.states[sessionID]
	if !ok {
		return nil, flow.ErrSessionNotFound
	}
	return &state, nil
}

func (m *memoryFlowService) Dispatch(_ context.Context, sessionID string, action flow.Action) (*models.FlowState, error) {
	state, ok := m.states[sessionID]
	if !ok {
		return nil, flow.ErrSessionNotFound
	}
	state = flow.Reduce(state, action)
	m.states[sessionID] = state
	return &state, nil
}

func (m *memoryFlowService) Advance(_ context.Context, _ string) (*models.FlowState, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryFlowService) Back(_ context.Context, _ string) (*models.FlowState, error) {
	return nil, errors.New("not implemented")
}

func (m *memoryFlowService) CancelSession(_ context.Context, sessionID string) error {
	delete(m.states, sessionID)
	return nil
}

type stubAvailability struct {
	slot  *models.TimeSlot
	slots []models.TimeSlot
	err   error
}

func (s *stubAvailability) GetSlots(_ context.Context, _ string, _ int64, from, to string) ([]models.TimeSlot, error) {
	matched := make([]models.TimeSlot, 0, len(s.slots))
	for _, slot := range s.slots {
		if slot.Date >= from && slot.Date <= to {
			matched = append(matched, slot)
		}
	}
	return matched, nil
}

func (s *stubAvailability) GetSlot(_ context.Context, _ string, _ int64, _ string) (*models.TimeSlot, error) {
	return s.slot, s.err
}

type memoryBookingRepo struct {
	bookings map[string]models.Booking
	inserted []models.Booking
}

func (r *memoryBookingRepo) Insert(_ context.Context, booking models.Booking) error {
	if r.bookings == nil {
		r.bookings = make(map[string]models.Booking)
	}
	r.bookings[booking.BookingReference] = booking
	r.inserted = append(r.inserted, booking)
	return nil
}

func (r *memoryBookingRepo) GetByReference(_ context.Context, reference string) (*models.Booking, error) {
	booking, ok := r.bookings[reference]
	if !ok {
		return nil, errors.New("not found")
	}
	return &booking, nil
}

func (r *memoryBookingRepo) CountBookedSpots(_ context.Context, _ string, _ int64, _ string) (int, error) {
	return 0, nil
}

func (r *memoryBookingRepo) UpdateSchedule(_ context.Context, reference string, slot models.TimeSlot) error {
	booking, ok := r.bookings[reference]
	if !ok {
		return errors.New("not found")
	}
	booking.SessionID = slot.SessionID
	booking.Date = slot.Date
	booking.StartTime = slot.StartTime
	booking.EndTime = slot.EndTime
	r.bookings[reference] = booking
	return nil
}

func (r *memoryBookingRepo) MarkCancelled(_ context.Context, reference, reason string) error {
	booking, ok := r.bookings[reference]
	if !ok {
		return errors.New("not found")
	}
	booking.Status = models.BookingStatusCancelled
	booking.CancelReason = reason
	r.bookings[reference] = booking
	return nil
}

type stubBusinessRepo struct {
	business *models.BusinessInfo
}

func (r *stubBusinessRepo) GetBySlug(_ context.Context, _ string) (*models.BusinessInfo, error) {
	return r.business, nil
}

func (r *stubBusinessRepo) GetByID(_ context.Context, _ string) (*models.BusinessInfo, error) {
	return r.business, nil
}

type recordingNotifier struct {
	payloads []models.BookingNotificationPayload
	err      error
}

func (n *recordingNotifier) EnqueueBookingEmail(_ context.Context, payload models.BookingNotificationPayload) error {
	if n.err != nil {
		return n.err
	}
	n.payloads = append(n.payloads, payload)
	return nil
}

func testBusiness() models.BusinessInfo {
	return models.BusinessInfo{
		ID:       "biz-1",
		Slug:     "acme",
		Name:     "Acme Fitness",
		Timezone: "Europe/London",
		BookingSettings: models.BookingSettings{
			SendConfirmationEmails: true,
		},
	}
}

func readySession(biz models.BusinessInfo) models.FlowState {
	state := flow.Initial()
	state = flow.Reduce(state, flow.SetBusinessInfo{Info: biz})
	state = flow.Reduce(state, flow.SelectService{Service: models.Service{
		ID: 5, Name: "Yoga Class", BasePrice: 25, DefaultDuration: 60,
	}})
	state = flow.Reduce(state, flow.SelectTimeSlot{Date: "2026-09-01", Slot: models.TimeSlot{
		Date:           "2026-09-01",
		StartTime:      "10:00",
		EndTime:        "11:00",
		SessionID:      77,
		CapacityStatus: models.CapacityAvailable,
		AvailableSpots: 8,
		TotalSpots:     10,
	}})
	state = flow.Reduce(state, flow.UpdateFormData{Partial: completeForm()})
	state = flow.Reduce(state, flow.SetStep{Step: models.StepDetails})
	return state
}

type testDeps struct {
	flowSvc  *memoryFlowService
	repo     *memoryBookingRepo
	notifier *recordingNotifier
	svc      *DefaultBookingService
}

func newTestBookingService(biz models.BusinessInfo, state models.FlowState) testDeps {
	flowSvc := &memoryFlowService{states: map[string]models.FlowState{"sess-1": state}}
	repo := &memoryBookingRepo{}
	notifier := &recordingNotifier{}
	svc := &DefaultBookingService{
		FlowSvc:         flowSvc,
		AvailabilitySvc: &stubAvailability{err: errors.New("no live data")},
		Repo:            repo,
		BusinessRepo:    &stubBusinessRepo{business: &biz},
		NotificationSvc: notifier,
		Logger:          zap.NewNop(),
	}
	return testDeps{flowSvc: flowSvc, repo: repo, notifier: notifier, svc: svc}
}

func TestSubmitConfirmsBooking(t *testing.T) {
	biz := testBusiness()
	deps := newTestBookingService(biz, readySession(biz))

	state, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, state)

	assert.Equal(t, models.StepConfirmation, state.CurrentStep)
	require.NotNil(t, state.BookingConfirmation)
	assert.Equal(t, models.BookingStatusConfirmed, state.BookingConfirmation.Status)
	assert.Regexp(t, `^BK-[0-9A-F]{8}$`, state.BookingConfirmation.BookingReference)
	assert.Equal(t, "Yoga Class", state.BookingConfirmation.SessionDetails.ServiceName)

	require.Len(t, deps.repo.inserted, 1)
	booking := deps.repo.inserted[0]
	assert.Equal(t, "biz-1", booking.BusinessID)
	assert.Equal(t, int64(77), booking.SessionID)
	assert.Equal(t, "2026-09-01", booking.Date)
	assert.Equal(t, "jane@example.com", booking.ClientEmail)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

	require.Len(t, deps.notifier.payloads, 1)
	assert.Equal(t, models.NotificationBookingConfirmation, deps.notifier.payloads[0].Kind)
	assert.Equal(t, booking.BookingReference, deps.notifier.payloads[0].BookingReference)
}

func TestSubmitPendingWhenApprovalRequired(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.RequiresApproval = true
	deps := newTestBookingService(biz, readySession(biz))

	state, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	require.NotNil(t, state.BookingConfirmation)
	assert.Equal(t, models.BookingStatusPending, state.BookingConfirmation.Status)
	assert.Contains(t, state.BookingConfirmation.Message, "awaiting approval")
}

func TestSubmitInvalidDetailsLeavesStateUntouched(t *testing.T) {
	biz := testBusiness()
	state := readySession(biz)
	state = flow.Reduce(state, flow.UpdateFormData{Partial: models.FormData{
		models.FieldClientEmail: "",
	}})
	deps := newTestBookingService(biz, state)

	_, err := deps.svc.Submit(context.Background(), "sess-1")

	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, models.FieldClientEmail)
	assert.Empty(t, deps.repo.inserted)

	after, err := deps.flowSvc.GetState(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Nil(t, after.BookingConfirmation)
	assert.Equal(t, models.StepDetails, after.CurrentStep)
}

func TestSubmitFixedModeRequiresSlot(t *testing.T) {
	biz := testBusiness()
	state := flow.Initial()
	state = flow.Reduce(state, flow.SetBusinessInfo{Info: biz})
	state = flow.Reduce(state, flow.SelectService{Service: models.Service{ID: 5, Name: "Yoga Class"}})
	state = flow.Reduce(state, flow.UpdateFormData{Partial: completeForm()})
	deps := newTestBookingService(biz, state)

	_, err := deps.svc.Submit(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrNoSlotSelected)
	assert.Empty(t, deps.repo.inserted)
}

func TestSubmitFlexibleModeBooksWithoutSlot(t *testing.T) {
	biz := testBusiness()
	cat := models.Category{ID: 1, Name: "Massage", Subcategories: []models.Subcategory{
		{ID: 9, Name: "Deep Tissue", IsService: true, BasePrice: 80, DefaultDuration: 45},
	}}
	state := flow.Initial()
	state = flow.Reduce(state, flow.SetBusinessInfo{Info: biz})
	state = flow.Reduce(state, flow.SelectServiceCategory{Category: cat})
	state = flow.Reduce(state, flow.SelectServiceSubcategory{Subcategory: cat.Subcategories[0]})
	state = flow.Reduce(state, flow.SelectDate{Date: "2026-09-03"})
	state = flow.Reduce(state, flow.UpdateFormData{Partial: completeForm()})
	deps := newTestBookingService(biz, state)

	result, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	require.Len(t, deps.repo.inserted, 1)
	booking := deps.repo.inserted[0]
	assert.Equal(t, int64(9), booking.ServiceID)
	assert.Equal(t, "2026-09-03", booking.Date)
	assert.Empty(t, booking.StartTime)
	assert.Equal(t, "Deep Tissue", result.BookingConfirmation.SessionDetails.ServiceName)
}

func TestSubmitRejectsOverCapacity(t *testing.T) {
	biz := testBusiness()
	state := readySession(biz)
	state = flow.Reduce(state, flow.UpdateFormData{Partial: models.FormData{
		models.FieldQuantity: 3,
	}})
	deps := newTestBookingService(biz, state)
	// Live capacity dropped to 2 since the slot was shown.
	deps.svc.AvailabilitySvc = &stubAvailability{slot: &models.TimeSlot{
		SessionID:      77,
		Date:           "2026-09-01",
		AvailableSpots: 2,
		TotalSpots:     10,
	}}

	_, err := deps.svc.Submit(context.Background(), "sess-1")

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 3, capErr.Requested)
	assert.Equal(t, 2, capErr.Available)
	assert.Empty(t, deps.repo.inserted)
}

func TestSubmitFallsBackToSlotCapacityWhenLiveLookupFails(t *testing.T) {
	biz := testBusiness()
	deps := newTestBookingService(biz, readySession(biz))
	// Availability stub already errors; the slot's recorded 8 spots apply.

	_, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)
}

func TestSubmitEmailFailureDoesNotFailBooking(t *testing.T) {
	biz := testBusiness()
	deps := newTestBookingService(biz, readySession(biz))
	deps.svc.NotificationSvc = &recordingNotifier{err: errors.New("queue down")}

	state, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, state.BookingConfirmation)
	require.Len(t, deps.repo.inserted, 1)
}

func TestSubmitUnknownSession(t *testing.T) {
	biz := testBusiness()
	deps := newTestBookingService(biz, readySession(biz))

	_, err := deps.svc.Submit(context.Background(), "nope")
	assert.ErrorIs(t, err, flow.ErrSessionNotFound)
}

func TestGetByReferenceVerifiesEmail(t *testing.T) {
	biz := testBusiness()
	deps := newTestBookingService(biz, readySession(biz))

	state, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)
	ref := state.BookingConfirmation.BookingReference

	booking, err := deps.svc.GetByReference(context.Background(), ref, "Jane@Example.com")
	require.NoError(t, err)
	assert.Equal(t, ref, booking.BookingReference)

	_, err = deps.svc.GetByReference(context.Background(), ref, "other@example.com")
	assert.ErrorIs(t, err, ErrEmailMismatch)

	_, err = deps.svc.GetByReference(context.Background(), "BK-UNKNOWN1", "jane@example.com")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelByReferenceHonorsPolicy(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientCancellation = true
	deps := newTestBookingService(biz, readySession(biz))

	state, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)
	ref := state.BookingConfirmation.BookingReference

	booking, err := deps.svc.CancelByReference(context.Background(), ref, "jane@example.com", "schedule conflict")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, booking.Status)
	assert.Equal(t, "schedule conflict", booking.CancelReason)

	_, err = deps.svc.CancelByReference(context.Background(), ref, "jane@example.com", "again")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelByReferenceDisabledByBusiness(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientCancellation = false
	deps := newTestBookingService(biz, readySession(biz))

	state, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	_, err = deps.svc.CancelByReference(context.Background(), state.BookingConfirmation.BookingReference, "jane@example.com", "")
	assert.ErrorIs(t, err, ErrCancellationDisabled)
}

func submittedBooking(t *testing.T, deps testDeps) string {
	t.Helper()
	state, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)
	return state.BookingConfirmation.BookingReference
}

func futureSlot() models.TimeSlot {
	return models.TimeSlot{
		Date:           "2099-01-15",
		StartTime:      "14:00",
		EndTime:        "15:00",
		SessionID:      88,
		CapacityStatus: models.CapacityAvailable,
		AvailableSpots: 5,
		TotalSpots:     10,
	}
}

func TestRescheduleMovesBooking(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientReschedule = true
	deps := newTestBookingService(biz, readySession(biz))
	ref := submittedBooking(t, deps)
	deps.svc.AvailabilitySvc = &stubAvailability{slots: []models.TimeSlot{futureSlot()}}

	booking, err := deps.svc.Reschedule(context.Background(), ref, "jane@example.com", "2099-01-15", 88)
	require.NoError(t, err)
	assert.Equal(t, "2099-01-15", booking.Date)
	assert.Equal(t, "14:00", booking.StartTime)
	assert.Equal(t, int64(88), booking.SessionID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

	stored, err := deps.repo.GetByReference(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "2099-01-15", stored.Date)
	assert.Equal(t, int64(88), stored.SessionID)

	// Submission email plus the reschedule notice.
	require.Len(t, deps.notifier.payloads, 2)
	assert.Equal(t, models.NotificationBookingReschedule, deps.notifier.payloads[1].Kind)
	assert.Equal(t, "2099-01-15", deps.notifier.payloads[1].Date)
}

func TestRescheduleOptionsFilterCurrentAndFullSlots(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientReschedule = true
	deps := newTestBookingService(biz, readySession(biz))
	ref := submittedBooking(t, deps)

	current := models.TimeSlot{Date: "2026-09-01", StartTime: "10:00", SessionID: 77, AvailableSpots: 8, TotalSpots: 10}
	full := models.TimeSlot{Date: "2099-01-16", StartTime: "10:00", SessionID: 89, AvailableSpots: 0, TotalSpots: 10}
	deps.svc.AvailabilitySvc = &stubAvailability{slots: []models.TimeSlot{current, full, futureSlot()}}

	options, err := deps.svc.RescheduleOptions(context.Background(), ref, "jane@example.com", "2026-09-01", "2099-12-31")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, int64(88), options[0].SessionID)
}

func TestRescheduleDisabledByBusiness(t *testing.T) {
	biz := testBusiness()
	deps := newTestBookingService(biz, readySession(biz))
	ref := submittedBooking(t, deps)

	_, err := deps.svc.RescheduleOptions(context.Background(), ref, "jane@example.com", "", "")
	assert.ErrorIs(t, err, ErrRescheduleDisabled)

	_, err = deps.svc.Reschedule(context.Background(), ref, "jane@example.com", "2099-01-15", 88)
	assert.ErrorIs(t, err, ErrRescheduleDisabled)
}

func TestRescheduleDeadlinePassed(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientReschedule = true
	biz.BookingSettings.RescheduleDeadlineHours = 24
	state := readySession(biz)
	state = flow.Reduce(state, flow.SelectTimeSlot{Date: "2020-01-01", Slot: models.TimeSlot{
		Date:           "2020-01-01",
		StartTime:      "10:00",
		EndTime:        "11:00",
		SessionID:      77,
		AvailableSpots: 8,
		TotalSpots:     10,
	}})
	deps := newTestBookingService(biz, state)
	ref := submittedBooking(t, deps)

	_, err := deps.svc.Reschedule(context.Background(), ref, "jane@example.com", "2099-01-15", 88)
	assert.ErrorIs(t, err, ErrRescheduleDeadline)
}

func TestRescheduleRejectsUnknownSlot(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientReschedule = true
	deps := newTestBookingService(biz, readySession(biz))
	ref := submittedBooking(t, deps)
	deps.svc.AvailabilitySvc = &stubAvailability{slots: []models.TimeSlot{futureSlot()}}

	// Session 99 is not among the service's slots on that date.
	_, err := deps.svc.Reschedule(context.Background(), ref, "jane@example.com", "2099-01-15", 99)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	stored, err := deps.repo.GetByReference(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", stored.Date)
}

func TestRescheduleRejectsOverCapacityTarget(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientReschedule = true
	state := readySession(biz)
	state = flow.Reduce(state, flow.UpdateFormData{Partial: models.FormData{
		models.FieldQuantity: 6,
	}})
	deps := newTestBookingService(biz, state)
	ref := submittedBooking(t, deps)
	deps.svc.AvailabilitySvc = &stubAvailability{slots: []models.TimeSlot{futureSlot()}}

	_, err := deps.svc.Reschedule(context.Background(), ref, "jane@example.com", "2099-01-15", 88)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 6, capErr.Requested)
	assert.Equal(t, 5, capErr.Available)
}

func TestRescheduleCancelledBooking(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientReschedule = true
	biz.BookingSettings.AllowClientCancellation = true
	deps := newTestBookingService(biz, readySession(biz))
	ref := submittedBooking(t, deps)

	_, err := deps.svc.CancelByReference(context.Background(), ref, "jane@example.com", "")
	require.NoError(t, err)

	_, err = deps.svc.Reschedule(context.Background(), ref, "jane@example.com", "2099-01-15", 88)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelByReferenceDeadlinePassed(t *testing.T) {
	biz := testBusiness()
	biz.BookingSettings.AllowClientCancellation = true
	biz.BookingSettings.CancellationDeadlineHours = 24
	state := readySession(biz)
	// Re-book onto a long-past slot so the deadline has certainly passed.
	state = flow.Reduce(state, flow.SelectTimeSlot{Date: "2020-01-01", Slot: models.TimeSlot{
		Date:           "2020-01-01",
		StartTime:      "10:00",
		EndTime:        "11:00",
		SessionID:      77,
		AvailableSpots: 8,
		TotalSpots:     10,
	}})
	deps := newTestBookingService(biz, state)

	submitted, err := deps.svc.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	_, err = deps.svc.CancelByReference(context.Background(), submitted.BookingConfirmation.BookingReference, "jane@example.com", "")
	assert.ErrorIs(t, err, ErrCancellationDeadline)
}
