package booking

import (
	"errors"
	"fmt"
	"testing"
	"time"

	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
)

// fakeBookingRepo is an in-memory BookingRepository with the same conditional
// update semantics as the Mongo implementation.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	seq      int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) NextReference() (string, error) {
	r.seq++
	return fmt.Sprintf("VY-%d", 100000+r.seq), nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return fmt.Errorf("booking with id %s: %w", b.ID, bookingRepo.ErrNotFound)
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("booking with id %s: %w", id, bookingRepo.ErrNotFound)
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with id %s: %w", id, bookingRepo.ErrNotFound)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetByReference(reference string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.Reference == reference {
			cp := *b
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("booking with reference %s not found", reference)
}

func (r *fakeBookingRepo) GetByIDs(ids []string) ([]models.Booking, error) {
	var out []models.Booking
	for _, id := range ids {
		if b, ok := r.bookings[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByFleet(fleetID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.FleetID == fleetID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByDriver(driverID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.DriverID == driverID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListUninvoiced(invoiceType, entityID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) UpdateStatus(id, from, to string) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s: %w", id, bookingRepo.ErrNotFound)
	}
	if b.Status != from {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) ApplyPricing(id string, update bookingRepo.PricingUpdate) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s: %w", id, bookingRepo.ErrNotFound)
	}
	if update.Extras == nil {
		update.Extras = []models.BookingExtra{}
	}
	b.CustomerPrice = update.CustomerPrice
	b.DriverPrice = update.DriverPrice
	b.Extras = update.Extras
	b.ExtrasTotal = update.ExtrasTotal
	b.Profit = update.Profit
	if update.SetFleetID != nil {
		b.FleetID = *update.SetFleetID
	}
	if update.SetDriverID != nil {
		b.DriverID = *update.SetDriverID
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) MarkInvoiced(id, invoiceType, invoiceID string) error {
	return nil
}

func (r *fakeBookingRepo) ClearInvoiceRef(id, invoiceType string) error {
	return nil
}

// fakeFleetRepo holds operators in memory.
type fakeFleetRepo struct {
	fleets  map[string]*models.Fleet
	drivers map[string]*models.Driver
}

func (r *fakeFleetRepo) CreateFleet(f *models.Fleet) error   { r.fleets[f.ID] = f; return nil }
func (r *fakeFleetRepo) UpdateFleet(f *models.Fleet) error   { r.fleets[f.ID] = f; return nil }
func (r *fakeFleetRepo) DeleteFleet(id string) error         { delete(r.fleets, id); return nil }
func (r *fakeFleetRepo) CreateDriver(d *models.Driver) error { r.drivers[d.ID] = d; return nil }
func (r *fakeFleetRepo) UpdateDriver(d *models.Driver) error { r.drivers[d.ID] = d; return nil }
func (r *fakeFleetRepo) DeleteDriver(id string) error        { delete(r.drivers, id); return nil }

func (r *fakeFleetRepo) GetFleetByID(id string) (*models.Fleet, error) {
	f, ok := r.fleets[id]
	if !ok {
		return nil, fmt.Errorf("fleet with id %s not found", id)
	}
	return f, nil
}

func (r *fakeFleetRepo) ListFleets(activeOnly bool) ([]models.Fleet, error) {
	var out []models.Fleet
	for _, f := range r.fleets {
		out = append(out, *f)
	}
	return out, nil
}

func (r *fakeFleetRepo) GetDriverByID(id string) (*models.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return nil, fmt.Errorf("driver with id %s not found", id)
	}
	return d, nil
}

func (r *fakeFleetRepo) ListDrivers(fleetID string, activeOnly bool) ([]models.Driver, error) {
	var out []models.Driver
	for _, d := range r.drivers {
		out = append(out, *d)
	}
	return out, nil
}

// fakeQuoteService returns a canned quote list.
type fakeQuoteService struct {
	quotes []models.Quote
	err    error
}

func (f *fakeQuoteService) Quote(req models.QuoteRequest) ([]models.Quote, error) {
	return f.quotes, f.err
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeFleetRepo) {
	repo := newFakeBookingRepo()
	fleets := &fakeFleetRepo{
		fleets: map[string]*models.Fleet{
			"fleet-1": {ID: "fleet-1", Name: "Crown Cars", Active: true},
		},
		drivers: map[string]*models.Driver{
			"drv-1": {ID: "drv-1", Name: "Pat Lee", Active: true},
		},
	}
	return &DefaultBookingService{Repo: repo, Fleets: fleets}, repo, fleets
}

func fptr(v float64) *float64 { return &v }

func validInput() models.BookingInput {
	return models.BookingInput{
		CustomerID:      "cust-1",
		PickupLocation:  "Gatwick Airport",
		DropoffLocation: "Brighton",
		DistanceKm:      37,
		VehicleClassID:  "saloon",
		PickupAt:        time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC),
		Passengers:      2,
		CustomerPrice:   fptr(85),
		DriverPrice:     fptr(50),
	}
}

func TestCreate_WithExplicitPrices(t *testing.T) {
	svc, _, _ := newTestService()

	bk, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if bk.Status != models.BookingStatusPending {
		t.Errorf("status = %s, want pending", bk.Status)
	}
	if bk.Reference != "VY-100001" {
		t.Errorf("reference = %s, want VY-100001", bk.Reference)
	}
	if bk.Profit != 35 {
		t.Errorf("profit = %f, want 35", bk.Profit)
	}
	if bk.Currency != "GBP" {
		t.Errorf("currency = %s, want GBP", bk.Currency)
	}
	if bk.Extras == nil {
		t.Error("extras = nil, want explicit empty slice")
	}
}

func TestCreate_PricedFromQuote(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Quotes = &fakeQuoteService{quotes: []models.Quote{
		{VehicleClassID: "mpv", Price: 95, Currency: "GBP", Source: models.QuoteSourceRateCard},
		{VehicleClassID: "saloon", Price: 72.5, Currency: "GBP", Source: models.QuoteSourceScheme},
	}}

	input := validInput()
	input.CustomerPrice = nil
	input.DriverPrice = nil

	bk, err := svc.Create(input)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if bk.CustomerPrice != 72.5 {
		t.Errorf("customerPrice = %f, want quoted 72.50", bk.CustomerPrice)
	}
	if bk.QuoteSource != models.QuoteSourceScheme {
		t.Errorf("quoteSource = %s, want scheme", bk.QuoteSource)
	}
	if bk.DriverPrice != 0 || bk.Profit != 72.5 {
		t.Errorf("payout not defaulted: driverPrice=%f profit=%f", bk.DriverPrice, bk.Profit)
	}
}

func TestCreate_ClassNotQuotable(t *testing.T) {
	svc, _, _ := newTestService()
	svc.Quotes = &fakeQuoteService{quotes: []models.Quote{
		{VehicleClassID: "mpv", Price: 95, Currency: "GBP", Source: models.QuoteSourceDefault},
	}}

	input := validInput()
	input.CustomerPrice = nil

	_, err := svc.Create(input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for unquotable class, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *models.BookingInput)
	}{
		{"missing customer", func(in *models.BookingInput) { in.CustomerID = "" }},
		{"missing pickup", func(in *models.BookingInput) { in.PickupLocation = " " }},
		{"missing dropoff", func(in *models.BookingInput) { in.DropoffLocation = "" }},
		{"missing vehicle class", func(in *models.BookingInput) { in.VehicleClassID = "" }},
		{"no passengers", func(in *models.BookingInput) { in.Passengers = 0 }},
		{"no pickup time", func(in *models.BookingInput) { in.PickupAt = time.Time{} }},
		{"negative distance", func(in *models.BookingInput) { in.DistanceKm = -4 }},
	}

	svc, _, _ := newTestService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdatePricing_RecomputesProfit(t *testing.T) {
	svc, repo, _ := newTestService()
	bk, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if bk.Profit != 35 {
		t.Fatalf("initial profit = %f, want 35", bk.Profit)
	}

	// Renegotiating the payout from 50 to 45 must move stored profit to 40.
	updated, err := svc.UpdatePricing(bk.ID, 85, 45, nil)
	if err != nil {
		t.Fatalf("UpdatePricing() error: %v", err)
	}
	if updated.Profit != 40 {
		t.Errorf("profit = %f, want 40", updated.Profit)
	}

	stored, _ := repo.GetByID(bk.ID)
	if stored.Profit != 40 || stored.DriverPrice != 45 {
		t.Errorf("stored state = profit %f payout %f, want 40 and 45", stored.Profit, stored.DriverPrice)
	}
}

func TestAssign_OperatorsAreExclusive(t *testing.T) {
	svc, _, _ := newTestService()
	bk, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	withDriver, err := svc.AssignDriver(bk.ID, "drv-1", fptr(45))
	if err != nil {
		t.Fatalf("AssignDriver() error: %v", err)
	}
	if withDriver.DriverID != "drv-1" || withDriver.FleetID != "" {
		t.Fatalf("after driver assignment: driverId=%q fleetId=%q", withDriver.DriverID, withDriver.FleetID)
	}
	if withDriver.Profit != 40 {
		t.Errorf("profit after payout change = %f, want 40", withDriver.Profit)
	}

	withFleet, err := svc.AssignFleet(bk.ID, "fleet-1", nil)
	if err != nil {
		t.Fatalf("AssignFleet() error: %v", err)
	}
	if withFleet.FleetID != "fleet-1" || withFleet.DriverID != "" {
		t.Fatalf("after fleet assignment: fleetId=%q driverId=%q", withFleet.FleetID, withFleet.DriverID)
	}
	// Nil payout keeps the previous one.
	if withFleet.DriverPrice != 45 || withFleet.Profit != 40 {
		t.Errorf("payout = %f profit = %f, want 45 and 40", withFleet.DriverPrice, withFleet.Profit)
	}
}

func TestAssignFleet_UnknownFleet(t *testing.T) {
	svc, _, _ := newTestService()
	bk, _ := svc.Create(validInput())

	if _, err := svc.AssignFleet(bk.ID, "fleet-missing", nil); err == nil {
		t.Fatal("expected error for unknown fleet")
	}
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	bk, _ := svc.Create(validInput())

	confirmed, err := svc.UpdateStatus(bk.ID, models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %s, want confirmed", confirmed.Status)
	}

	// Confirmed bookings cannot go back to pending.
	_, err = svc.UpdateStatus(bk.ID, models.BookingStatusPending)
	var terr *TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected transition error, got %v", err)
	}

	completed, err := svc.UpdateStatus(bk.ID, models.BookingStatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != models.BookingStatusCompleted {
		t.Fatalf("status = %s, want completed", completed.Status)
	}
}

func TestDelete_InvoicedBookingRefused(t *testing.T) {
	svc, repo, _ := newTestService()
	bk, _ := svc.Create(validInput())

	repo.bookings[bk.ID].CustomerInvoiceID = "inv-1"
	var verr *ValidationError
	if err := svc.Delete(bk.ID); !errors.As(err, &verr) {
		t.Fatalf("expected validation error deleting invoiced booking, got %v", err)
	}

	repo.bookings[bk.ID].CustomerInvoiceID = ""
	if err := svc.Delete(bk.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := repo.GetByID(bk.ID); err == nil {
		t.Fatal("booking still present after delete")
	}
}
