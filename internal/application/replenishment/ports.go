package replenishment

import (
	"context"

	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// RequestPDFGenerator puerto de generación del impreso de una solicitud.
type RequestPDFGenerator interface {
	GenerateRequestPDF(ctx context.Context, req *entity.ReplenishmentRequest) ([]byte, error)
}
