package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if name := strings.TrimSpace(req.Customer.Name); name == "" || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.PartySize <= 0 || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between 1 and %d", ErrInvalidInput, domain.MaxPartySize)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if len(req.TableIDs) == 0 || len(req.TableIDs) > domain.MaxTablesPerReservation {
		return fmt.Errorf("%w: tableIds must contain 1..%d tables", ErrInvalidInput, domain.MaxTablesPerReservation)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests is longer than %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}
