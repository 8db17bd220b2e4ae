package invoice

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"voyago/config"
	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
)

// fakeInvoiceRepo is an in-memory InvoiceRepository mirroring the Mongo
// implementation's conditional-update semantics.
type fakeInvoiceRepo struct {
	invoices map[string]*models.Invoice
	seq      int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*models.Invoice{}}
}

func (r *fakeInvoiceRepo) NextNumber(year int) (string, error) {
	r.seq++
	return fmt.Sprintf("INV-%d-%06d", year, r.seq), nil
}

func (r *fakeInvoiceRepo) Create(inv *models.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s not found", id)
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByNumber(number string) (*models.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.Number == number {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("invoice %s not found", number)
}

func (r *fakeInvoiceRepo) ListByEntity(entityID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.EntityID == entityID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByType(invoiceType string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range r.invoices {
		if inv.Type == invoiceType {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(id, from, to string, extra map[string]interface{}) error {
	inv, ok := r.invoices[id]
	if !ok || inv.Status != from {
		return fmt.Errorf("invoice %s is not in status %q", id, from)
	}
	inv.Status = to
	for key, value := range extra {
		switch key {
		case "issuedAt":
			t := value.(time.Time)
			inv.IssuedAt = &t
		case "dueAt":
			t := value.(time.Time)
			inv.DueAt = &t
		case "supersededBy":
			inv.SupersededBy = value.(string)
		}
	}
	return nil
}

func (r *fakeInvoiceRepo) SetPaymentIntent(id, paymentIntentID string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return fmt.Errorf("invoice %s not found", id)
	}
	inv.PaymentIntentID = paymentIntentID
	return nil
}

func (r *fakeInvoiceRepo) SetDocumentID(id, documentID string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return fmt.Errorf("invoice %s not found", id)
	}
	inv.DocumentID = documentID
	return nil
}

// fakeInvBookingRepo backs the claim lifecycle; the booking CRUD the invoice
// service never touches is stubbed out.
type fakeInvBookingRepo struct {
	bookings map[string]*models.Booking

	// failMarkFor forces MarkInvoiced to report a lost claim race for the
	// named bookings even though the loaded copies look unclaimed.
	failMarkFor map[string]bool
}

func newFakeInvBookingRepo(bookings ...models.Booking) *fakeInvBookingRepo {
	r := &fakeInvBookingRepo{bookings: map[string]*models.Booking{}}
	for i := range bookings {
		cp := bookings[i]
		r.bookings[cp.ID] = &cp
	}
	return r
}

func (r *fakeInvBookingRepo) GetByIDs(ids []string) ([]models.Booking, error) {
	var out []models.Booking
	for _, id := range ids {
		if bk, ok := r.bookings[id]; ok {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (r *fakeInvBookingRepo) ListUninvoiced(invoiceType, entityID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.Status != models.BookingStatusCompleted {
			continue
		}
		if billable(*bk, invoiceType, entityID) != nil {
			continue
		}
		out = append(out, *bk)
	}
	return out, nil
}

func (r *fakeInvBookingRepo) MarkInvoiced(id, invoiceType, invoiceID string) error {
	bk, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	if r.failMarkFor[id] || invoiceRef(*bk, invoiceType) != "" {
		return bookingRepo.ErrAlreadyInvoiced
	}
	switch invoiceType {
	case models.InvoiceTypeCustomer:
		bk.CustomerInvoiceID = invoiceID
	case models.InvoiceTypeFleet:
		bk.FleetInvoiceID = invoiceID
	case models.InvoiceTypeDriver:
		bk.DriverInvoiceID = invoiceID
	}
	return nil
}

func (r *fakeInvBookingRepo) ClearInvoiceRef(id, invoiceType string) error {
	bk, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	switch invoiceType {
	case models.InvoiceTypeCustomer:
		bk.CustomerInvoiceID = ""
	case models.InvoiceTypeFleet:
		bk.FleetInvoiceID = ""
	case models.InvoiceTypeDriver:
		bk.DriverInvoiceID = ""
	}
	return nil
}

func (r *fakeInvBookingRepo) NextReference() (string, error) {
	return "", errors.New("not implemented")
}

func (r *fakeInvBookingRepo) Create(*models.Booking) error {
	return errors.New("not implemented")
}

func (r *fakeInvBookingRepo) Update(*models.Booking) error {
	return errors.New("not implemented")
}

func (r *fakeInvBookingRepo) Delete(string) error {
	return errors.New("not implemented")
}

func (r *fakeInvBookingRepo) GetByID(string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeInvBookingRepo) GetByReference(string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeInvBookingRepo) ListByCustomer(string) ([]models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeInvBookingRepo) ListByFleet(string) ([]models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeInvBookingRepo) ListByDriver(string) ([]models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeInvBookingRepo) UpdateStatus(string, string, string) error {
	return errors.New("not implemented")
}

func (r *fakeInvBookingRepo) ApplyPricing(string, bookingRepo.PricingUpdate) error {
	return errors.New("not implemented")
}

type fakeInvFleetRepo struct {
	fleets  map[string]*models.Fleet
	drivers map[string]*models.Driver
}

func (r *fakeInvFleetRepo) GetFleetByID(id string) (*models.Fleet, error) {
	fleet, ok := r.fleets[id]
	if !ok {
		return nil, fmt.Errorf("fleet %s not found", id)
	}
	return fleet, nil
}

func (r *fakeInvFleetRepo) GetDriverByID(id string) (*models.Driver, error) {
	driver, ok := r.drivers[id]
	if !ok {
		return nil, fmt.Errorf("driver %s not found", id)
	}
	return driver, nil
}

func (r *fakeInvFleetRepo) CreateFleet(*models.Fleet) error {
	return errors.New("not implemented")
}

func (r *fakeInvFleetRepo) UpdateFleet(*models.Fleet) error {
	return errors.New("not implemented")
}

func (r *fakeInvFleetRepo) DeleteFleet(string) error {
	return errors.New("not implemented")
}

func (r *fakeInvFleetRepo) ListFleets(bool) ([]models.Fleet, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeInvFleetRepo) CreateDriver(*models.Driver) error {
	return errors.New("not implemented")
}

func (r *fakeInvFleetRepo) UpdateDriver(*models.Driver) error {
	return errors.New("not implemented")
}

func (r *fakeInvFleetRepo) DeleteDriver(string) error {
	return errors.New("not implemented")
}

func (r *fakeInvFleetRepo) ListDrivers(string, bool) ([]models.Driver, error) {
	return nil, errors.New("not implemented")
}

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
}

func (r *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s not found", id)
	}
	return customer, nil
}

func (r *fakeCustomerRepo) Create(*models.Customer) error {
	return errors.New("not implemented")
}

func (r *fakeCustomerRepo) Update(*models.Customer) error {
	return errors.New("not implemented")
}

func (r *fakeCustomerRepo) Delete(string) error {
	return errors.New("not implemented")
}

func (r *fakeCustomerRepo) GetByEmail(string) (*models.Customer, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeCustomerRepo) List(bool) ([]models.Customer, error) {
	return nil, errors.New("not implemented")
}

func fleetBooking(id string, driverPrice float64) models.Booking {
	bk := completedBooking(id, driverPrice+30, driverPrice)
	return bk
}

func newTestInvoiceService(bookings ...models.Booking) (*DefaultInvoiceService, *fakeInvBookingRepo, *fakeInvoiceRepo) {
	bookingsRepo := newFakeInvBookingRepo(bookings...)
	invoices := newFakeInvoiceRepo()
	svc := &DefaultInvoiceService{
		Repo:     invoices,
		Bookings: bookingsRepo,
		Fleets: &fakeInvFleetRepo{
			fleets: map[string]*models.Fleet{
				"flt-1": {
					ID:   "flt-1",
					Name: "Crown Cars",
					Commission: models.CommissionConfig{
						Type:  models.CommissionTypePercentage,
						Value: 15,
					},
				},
			},
			drivers: map[string]*models.Driver{
				"drv-1": {ID: "drv-1", Name: "Pat Lee"},
			},
		},
		Customers: &fakeCustomerRepo{
			customers: map[string]*models.Customer{
				"cus-1": {ID: "cus-1", Name: "Acme Travel"},
				"cus-2": {ID: "cus-2", Name: "Relief Aid", TaxExempt: true},
			},
		},
	}
	return svc, bookingsRepo, invoices
}

func zero() *float64 {
	v := 0.0
	return &v
}

func TestGenerate_FleetInvoiceClaimsBookings(t *testing.T) {
	svc, bookings, _ := newTestInvoiceService(
		fleetBooking("b1", 40),
		fleetBooking("b2", 60),
	)

	inv, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeFleet,
		EntityID:   "flt-1",
		BookingIDs: []string{"b1", "b2"},
		TaxRatePct: zero(),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if inv.Number != fmt.Sprintf("INV-%d-000001", time.Now().Year()) {
		t.Errorf("number = %q", inv.Number)
	}
	if inv.Status != models.InvoiceStatusDraft {
		t.Errorf("status = %q, want draft", inv.Status)
	}
	if inv.Total != 85 {
		t.Errorf("total = %v, want 100 - 15%% commission = 85", inv.Total)
	}
	for _, id := range []string{"b1", "b2"} {
		if got := bookings.bookings[id].FleetInvoiceID; got != inv.ID {
			t.Errorf("booking %s fleet invoice ref = %q, want %q", id, got, inv.ID)
		}
	}
}

func TestGenerate_SweepsUninvoicedWhenNoIDsGiven(t *testing.T) {
	pending := fleetBooking("b3", 50)
	pending.Status = models.BookingStatusPending
	svc, _, _ := newTestInvoiceService(
		fleetBooking("b1", 40),
		fleetBooking("b2", 60),
		pending,
	)

	inv, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeFleet,
		EntityID:   "flt-1",
		TaxRatePct: zero(),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(inv.LineItems) != 2 {
		t.Errorf("swept %d bookings, want 2 (pending excluded)", len(inv.LineItems))
	}

	// Everything billable is now claimed; a second sweep finds nothing.
	if _, err := svc.Generate(GenerateInput{Type: models.InvoiceTypeFleet, EntityID: "flt-1"}); !errors.Is(err, ErrNoBookings) {
		t.Errorf("second sweep: err = %v, want ErrNoBookings", err)
	}
}

func TestGenerate_EligibilityChecks(t *testing.T) {
	pending := fleetBooking("b2", 50)
	pending.Status = models.BookingStatusPending
	other := fleetBooking("b3", 50)
	other.FleetID = "flt-9"
	svc, _, _ := newTestInvoiceService(fleetBooking("b1", 40), pending, other)

	cases := []struct {
		name string
		ids  []string
	}{
		{"not completed", []string{"b1", "b2"}},
		{"wrong entity", []string{"b1", "b3"}},
		{"missing booking", []string{"b1", "b9"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Generate(GenerateInput{
				Type:       models.InvoiceTypeFleet,
				EntityID:   "flt-1",
				BookingIDs: tc.ids,
			})
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}

	var eligibility *EligibilityError
	_, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeFleet,
		EntityID:   "flt-1",
		BookingIDs: []string{"b2"},
	})
	if !errors.As(err, &eligibility) || eligibility.BookingID != "b2" {
		t.Errorf("err = %v, want EligibilityError for b2", err)
	}
}

func TestGenerate_LostClaimRaceReleasesEarlierClaims(t *testing.T) {
	svc, bookings, invoices := newTestInvoiceService(
		fleetBooking("b1", 40),
		fleetBooking("b2", 60),
	)
	bookings.failMarkFor = map[string]bool{"b2": true}

	_, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeFleet,
		EntityID:   "flt-1",
		BookingIDs: []string{"b1", "b2"},
	})
	if !errors.Is(err, bookingRepo.ErrAlreadyInvoiced) {
		t.Fatalf("err = %v, want ErrAlreadyInvoiced", err)
	}

	if got := bookings.bookings["b1"].FleetInvoiceID; got != "" {
		t.Errorf("b1 claim not released, ref = %q", got)
	}
	if len(invoices.invoices) != 0 {
		t.Errorf("no invoice should be written after a lost claim race")
	}
}

func TestGenerate_SecondInvoiceOfSameTypeRefused(t *testing.T) {
	svc, _, _ := newTestInvoiceService(fleetBooking("b1", 40))

	if _, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeFleet,
		EntityID:   "flt-1",
		BookingIDs: []string{"b1"},
	}); err != nil {
		t.Fatalf("first Generate: %v", err)
	}

	var eligibility *EligibilityError
	_, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeFleet,
		EntityID:   "flt-1",
		BookingIDs: []string{"b1"},
	})
	if !errors.As(err, &eligibility) || !strings.Contains(eligibility.Reason, "already invoiced") {
		t.Errorf("err = %v, want already-invoiced EligibilityError", err)
	}
}

func TestGenerate_CustomerAndFleetInvoicesCoexist(t *testing.T) {
	bk := fleetBooking("b1", 40)
	bk.CustomerID = "cus-1"
	svc, bookings, _ := newTestInvoiceService(bk)

	fleetInv, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeFleet,
		EntityID:   "flt-1",
		BookingIDs: []string{"b1"},
	})
	if err != nil {
		t.Fatalf("fleet Generate: %v", err)
	}
	customerInv, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeCustomer,
		EntityID:   "cus-1",
		BookingIDs: []string{"b1"},
	})
	if err != nil {
		t.Fatalf("customer Generate: %v", err)
	}

	got := bookings.bookings["b1"]
	if got.FleetInvoiceID != fleetInv.ID || got.CustomerInvoiceID != customerInv.ID {
		t.Errorf("refs = fleet %q customer %q, want both set independently",
			got.FleetInvoiceID, got.CustomerInvoiceID)
	}
}

func TestGenerate_TaxExemptCustomerPaysNoTax(t *testing.T) {
	saved := config.AppConfig
	t.Cleanup(func() { config.AppConfig = saved })
	config.AppConfig.DefaultTaxRatePct = 20

	bk := fleetBooking("b1", 40)
	bk.CustomerID = "cus-2"
	svc, _, _ := newTestInvoiceService(bk)

	inv, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeCustomer,
		EntityID:   "cus-2",
		BookingIDs: []string{"b1"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if inv.Tax != 0 || inv.TaxRatePct != 0 {
		t.Errorf("tax-exempt customer: tax = %v at %v%%, want 0", inv.Tax, inv.TaxRatePct)
	}
	if inv.Total != inv.Subtotal {
		t.Errorf("total = %v, want subtotal %v", inv.Total, inv.Subtotal)
	}
}

func TestGenerateCustom_NoClaims(t *testing.T) {
	svc, bookings, _ := newTestInvoiceService(fleetBooking("b1", 40))

	inv, err := svc.GenerateCustom(CustomInput{
		EntityName: "Harbour Hotel",
		LineItems:  []models.InvoiceLineItem{{Route: "Event shuttle retainer", Amount: 250}},
		TaxRatePct: zero(),
		Currency:   "GBP",
	})
	if err != nil {
		t.Fatalf("GenerateCustom: %v", err)
	}
	if inv.Type != models.InvoiceTypeCustom || inv.Total != 250 {
		t.Errorf("invoice = %q/%v, want custom/250", inv.Type, inv.Total)
	}
	if bookings.bookings["b1"].FleetInvoiceID != "" {
		t.Error("custom invoices must not claim bookings")
	}

	if _, err := svc.GenerateCustom(CustomInput{LineItems: []models.InvoiceLineItem{{Amount: 1}}}); err == nil {
		t.Error("missing entityName should be rejected")
	}
}

func TestIssue_StampsDatesFromPaymentTerms(t *testing.T) {
	svc, _, _ := newTestInvoiceService(fleetBooking("b1", 40))

	inv, err := svc.Generate(GenerateInput{
		Type:         models.InvoiceTypeFleet,
		EntityID:     "flt-1",
		BookingIDs:   []string{"b1"},
		PaymentTerms: "30 days",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	issued, err := svc.Issue(inv.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if issued.Status != models.InvoiceStatusIssued {
		t.Errorf("status = %q, want issued", issued.Status)
	}
	if issued.IssuedAt == nil || issued.DueAt == nil {
		t.Fatal("issuedAt and dueAt must be stamped")
	}
	if got := issued.DueAt.Sub(*issued.IssuedAt); got != 30*24*time.Hour {
		t.Errorf("due in %v, want 720h", got)
	}

	// Issuing twice trips the conditional update.
	var state *StateError
	if _, err := svc.Issue(inv.ID); !errors.As(err, &state) {
		t.Errorf("second issue: err = %v, want StateError", err)
	}
}

func TestPaymentTermsDays(t *testing.T) {
	cases := []struct {
		terms string
		want  int
	}{
		{"30 days", 30},
		{"7", 7},
		{"", 14},
		{"on receipt", 14},
		{"-3 days", 14},
	}
	for _, tc := range cases {
		if got := paymentTermsDays(tc.terms); got != tc.want {
			t.Errorf("paymentTermsDays(%q) = %d, want %d", tc.terms, got, tc.want)
		}
	}
}

func TestMarkPaid_RequiresIssued(t *testing.T) {
	svc, _, _ := newTestInvoiceService(fleetBooking("b1", 40))
	inv, _ := svc.Generate(GenerateInput{
		Type: models.InvoiceTypeFleet, EntityID: "flt-1", BookingIDs: []string{"b1"},
	})

	var state *StateError
	if _, err := svc.MarkPaid(inv.ID); !errors.As(err, &state) {
		t.Fatalf("paying a draft: err = %v, want StateError", err)
	}

	if _, err := svc.Issue(inv.ID); err != nil {
		t.Fatalf("Issue: %v", err)
	}
	paid, err := svc.MarkPaid(inv.ID)
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if paid.Status != models.InvoiceStatusPaid {
		t.Errorf("status = %q, want paid", paid.Status)
	}
}

func TestVoid_ReleasesBookings(t *testing.T) {
	svc, bookings, _ := newTestInvoiceService(fleetBooking("b1", 40))
	inv, _ := svc.Generate(GenerateInput{
		Type: models.InvoiceTypeFleet, EntityID: "flt-1", BookingIDs: []string{"b1"},
	})

	voided, err := svc.Void(inv.ID)
	if err != nil {
		t.Fatalf("Void: %v", err)
	}
	if voided.Status != models.InvoiceStatusVoid {
		t.Errorf("status = %q, want void", voided.Status)
	}
	if got := bookings.bookings["b1"].FleetInvoiceID; got != "" {
		t.Errorf("booking still claimed by %q after void", got)
	}

	// The released booking is billable again.
	if _, err := svc.Generate(GenerateInput{
		Type: models.InvoiceTypeFleet, EntityID: "flt-1", BookingIDs: []string{"b1"},
	}); err != nil {
		t.Errorf("re-invoicing a released booking: %v", err)
	}
}

func TestVoid_PaidInvoiceRefused(t *testing.T) {
	svc, _, _ := newTestInvoiceService(fleetBooking("b1", 40))
	inv, _ := svc.Generate(GenerateInput{
		Type: models.InvoiceTypeFleet, EntityID: "flt-1", BookingIDs: []string{"b1"},
	})
	if _, err := svc.Issue(inv.ID); err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.MarkPaid(inv.ID); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}

	var state *StateError
	if _, err := svc.Void(inv.ID); !errors.As(err, &state) {
		t.Errorf("voiding a paid invoice: err = %v, want StateError", err)
	}
}

func TestAmend_SupersedesAndRebills(t *testing.T) {
	svc, bookings, invoices := newTestInvoiceService(
		fleetBooking("b1", 40),
		fleetBooking("b2", 60),
	)
	original, err := svc.Generate(GenerateInput{
		Type:       models.InvoiceTypeFleet,
		EntityID:   "flt-1",
		BookingIDs: []string{"b1", "b2"},
		TaxRatePct: zero(),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := svc.Issue(original.ID); err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// A payout correction lands after issue.
	bookings.bookings["b1"].DriverPrice = 50

	replacement, err := svc.Amend(original.ID, zero())
	if err != nil {
		t.Fatalf("Amend: %v", err)
	}

	if replacement.Amends != original.ID {
		t.Errorf("amends = %q, want %q", replacement.Amends, original.ID)
	}
	if replacement.Status != models.InvoiceStatusDraft {
		t.Errorf("replacement status = %q, want draft", replacement.Status)
	}
	if replacement.Subtotal != 110 {
		t.Errorf("subtotal = %v, want re-snapshot 110", replacement.Subtotal)
	}
	if replacement.Total != 93.5 {
		t.Errorf("total = %v, want 110 - 16.5 commission = 93.5", replacement.Total)
	}

	superseded, err := invoices.GetByID(original.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if superseded.Status != models.InvoiceStatusSuperseded {
		t.Errorf("original status = %q, want superseded", superseded.Status)
	}
	if superseded.SupersededBy != replacement.ID {
		t.Errorf("supersededBy = %q, want %q", superseded.SupersededBy, replacement.ID)
	}

	for _, id := range []string{"b1", "b2"} {
		if got := bookings.bookings[id].FleetInvoiceID; got != replacement.ID {
			t.Errorf("booking %s claim = %q, want moved to %q", id, got, replacement.ID)
		}
	}
}

func TestAmend_RequiresIssued(t *testing.T) {
	svc, _, _ := newTestInvoiceService(fleetBooking("b1", 40))
	inv, _ := svc.Generate(GenerateInput{
		Type: models.InvoiceTypeFleet, EntityID: "flt-1", BookingIDs: []string{"b1"},
	})

	var state *StateError
	if _, err := svc.Amend(inv.ID, nil); !errors.As(err, &state) {
		t.Errorf("amending a draft: err = %v, want StateError", err)
	}
}

func TestOpenPaymentIntent_StatusGate(t *testing.T) {
	svc, _, invoices := newTestInvoiceService(fleetBooking("b1", 40))
	inv, _ := svc.Generate(GenerateInput{
		Type: models.InvoiceTypeFleet, EntityID: "flt-1", BookingIDs: []string{"b1"},
	})

	var state *StateError
	if _, err := svc.OpenPaymentIntent(inv.ID); !errors.As(err, &state) {
		t.Fatalf("draft invoice: err = %v, want StateError", err)
	}

	if _, err := svc.Issue(inv.ID); err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// An intent opened earlier is reused, no second Stripe call.
	if err := invoices.SetPaymentIntent(inv.ID, "pi_existing"); err != nil {
		t.Fatalf("SetPaymentIntent: %v", err)
	}
	got, err := svc.OpenPaymentIntent(inv.ID)
	if err != nil {
		t.Fatalf("OpenPaymentIntent: %v", err)
	}
	if got.PaymentIntentID != "pi_existing" {
		t.Errorf("paymentIntentId = %q, want pi_existing", got.PaymentIntentID)
	}
}
