package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"

	"github.com/skedra/marketplace-backend/internal/pkg/logger"
)

type stripeGateway struct{}

// NewStripeGateway returns a Gateway backed by Stripe. The API key is set
// globally via stripe.Key at startup.
func NewStripeGateway() Gateway {
	return &stripeGateway{}
}

func (g *stripeGateway) ExecuteRefund(ctx context.Context, paymentReference string, amountCents int64, reason string) (*RefundResult, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentReference),
		Amount:        stripe.Int64(amountCents),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	params.Context = ctx
	params.AddMetadata("reason", reason)

	r, err := refund.New(params)
	if err != nil {
		logger.Get().Error("stripe refund failed",
			zap.String("payment_reference", paymentReference),
			zap.Int64("amount_cents", amountCents),
			zap.Error(err),
		)
		return nil, ErrRefundFailed
	}

	return &RefundResult{
		RefundID: r.ID,
		Status:   string(r.Status),
	}, nil
}
