// File: services/booking/payment.go
package booking

import (
	"fmt"
	"math"

	"tidyops/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates payment intents for confirmed bookings. The
// intent is created at confirmation time; capture happens client-side.
type PaymentService interface {
	CreateDepositIntent(job *models.Job) (string, error)
	RefundStatus(job *models.Job) models.PaymentStatus
}

// StripePaymentService implements PaymentService on Stripe
// PaymentIntents. The global stripe.Key is set at startup.
type StripePaymentService struct {
	Logger *zap.Logger
}

// NewStripePaymentService returns a Stripe-backed payment service.
func NewStripePaymentService(logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{Logger: logger}
}

// CreateDepositIntent creates a payment intent for the job's final
// price and returns the intent ID for later reconciliation.
func (p *StripePaymentService) CreateDepositIntent(job *models.Job) (string, error) {
	amountCents := int64(math.Round(job.Pricing.FinalPrice * 100))
	if amountCents <= 0 {
		return "", fmt.Errorf("invalid payment amount for job %s: %.2f", job.ID, job.Pricing.FinalPrice)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("jobId", job.ID)
	params.AddMetadata("companyId", job.CompanyID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	p.Logger.Info("Created payment intent",
		zap.String("jobID", job.ID),
		zap.String("intentID", intent.ID),
		zap.Int64("amountCents", amountCents))
	return intent.ID, nil
}

// RefundStatus maps a cancelled job's payment state to the status the
// record should carry after cancellation.
func (p *StripePaymentService) RefundStatus(job *models.Job) models.PaymentStatus {
	if job.Payment.Status == models.PaymentStatusPaid {
		return models.PaymentStatusRefunded
	}
	return job.Payment.Status
}
