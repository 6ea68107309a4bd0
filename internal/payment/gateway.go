package payment

import (
	"context"
	"net/http"

	"github.com/skedra/marketplace-backend/internal/pkg/apperror"
)

var ErrRefundFailed = apperror.New(http.StatusBadGateway, "refund could not be executed")

// RefundResult is the processor's confirmation of an executed refund.
type RefundResult struct {
	RefundID string
	Status   string
}

// Gateway executes money movements against the payment processor. Amounts
// are in the currency's minor unit (cents).
type Gateway interface {
	ExecuteRefund(ctx context.Context, paymentReference string, amountCents int64, reason string) (*RefundResult, error)
}
