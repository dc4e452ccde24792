package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
	roomRepo "github.com/hoteleiro/HFD-ReservationService/internal/infra/storage/room"
	"github.com/hoteleiro/HFD-ReservationService/pkg/ptr"
	"github.com/hoteleiro/HFD-ReservationService/pkg/types"
)

// UseCase creates a reservation from a completed board range selection.
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	guestClient     GuestRegistryClient
	cnpjClient      CnpjClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger

	nightlyRate      float64
	allowOverbooking bool
}

// NewUseCase creates a new use case instance
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	guestClient GuestRegistryClient,
	cnpjClient CnpjClient,
	txManager TransactionManager,
	nightlyRate float64,
	allowOverbooking bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		roomRepo:         roomRepo,
		guestClient:      guestClient,
		cnpjClient:       cnpjClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
		nightlyRate:      nightlyRate,
		allowOverbooking: allowOverbooking,
	}
}

// WithTimeProvider replaces the time source. Test hook.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs the reservation creation flow. Uses a serializable
// transaction so the conflict check and the insert see a stable window.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%d, checkin=%s, checkout=%s, people=%d",
		req.RoomID, req.Checkin, req.Checkout, req.People)

	// 1. Structural validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Normalize the date range against today
	today := types.NewDateString(uc.timeProvider.Now())
	checkout, err := normalizeRange(req.Checkin, req.Checkout, today)
	if err != nil {
		uc.logger.Warn("CreateReservation: range rejected: %v", err)
		return nil, err
	}
	if checkout != req.Checkout {
		uc.logger.Info("CreateReservation: checkout bumped from %s to %s", req.Checkout, checkout)
	}

	// 3. Target room must exist
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Resolve the display title through the registries
	title := uc.resolveTitle(ctx, req)

	// 5. Pricing summary
	nights, err := req.Checkin.DaysUntil(checkout)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to compute nights: %v", err)
		return nil, fmt.Errorf("%w: failed to compute nights: %v", ErrInternal, err)
	}
	if nights < domain.MinNights {
		nights = domain.MinNights
	}

	nightlyRate := uc.nightlyRate
	total := float64(nights) * nightlyRate
	if req.RatePerPerson != nil {
		total = float64(nights) * *req.RatePerPerson * float64(req.People)
	}

	guests := make([]domain.Guest, 0, len(req.Guests))
	for _, g := range req.Guests {
		guests = append(guests, domain.Guest{
			RegistryID: g.RegistryID,
			Name:       g.Name,
			Titular:    g.Titular,
		})
	}

	var result *domain.Reservation

	// 6. Conflict check and insert under a serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if !uc.allowOverbooking {
			existing, err := uc.reservationRepo.ListByWindow(txCtx, domain.WindowFilter{
				RoomIDs: []int64{req.RoomID},
				From:    req.Checkin,
				To:      checkout,
			})
			if err != nil {
				uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
				return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
			}

			if conflict := findOverlap(existing, req.RoomID, req.Checkin, checkout); conflict != nil {
				uc.logger.Warn("CreateReservation: room id=%d occupied by reservation id=%d",
					req.RoomID, conflict.ID)
				return ErrRoomConflict
			}
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			RoomID:        req.RoomID,
			Start:         req.Checkin,
			End:           checkout,
			Title:         title,
			Status:        domain.StatusReserved,
			People:        req.People,
			NightlyRate:   nightlyRate,
			RatePerPerson: req.RatePerPerson,
			Notes:         req.Notes,
			Guests:        guests,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return buildResponse(result, nights, total), nil
}

// resolveTitle picks the display label for the board bar. A company payer
// resolves through the tax-id lookup, a registered titular guest through
// the people registry; both fall back to the request data when the lookup
// degrades, so a registry outage never blocks creation.
func (uc *UseCase) resolveTitle(ctx context.Context, req *Request) string {
	fallback := ptr.Deref(req.Title, "")

	if req.PayerCnpj != nil && *req.PayerCnpj != "" {
		company, err := uc.cnpjClient.GetCompanyWithGracefulDegradation(ctx, *req.PayerCnpj)
		if err != nil {
			uc.logger.Warn("CreateReservation: cnpj lookup failed, keeping supplied title: %v", err)
		} else if company != nil {
			return company.DisplayName()
		}
	}

	for _, g := range req.Guests {
		if !g.Titular {
			continue
		}
		if g.RegistryID != nil {
			guest, err := uc.guestClient.GetGuestWithGracefulDegradation(ctx, *g.RegistryID)
			if err != nil {
				uc.logger.Warn("CreateReservation: registry lookup failed for guest id=%d: %v",
					*g.RegistryID, err)
			} else if guest != nil {
				return guest.Name
			}
		}
		if fallback == "" && g.Name != "" {
			return g.Name
		}
		break
	}

	return fallback
}
