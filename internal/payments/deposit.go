package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/uprisingink/studio-api/internal/models"
)

// DepositCheckout creates hosted checkout links for appointment deposits.
type DepositCheckout struct {
	prefs      preference.Client
	studioName string
}

// Checkout is what the client app needs to send the customer to the
// payment page.
type Checkout struct {
	PreferenceID string  `json:"preference_id"`
	InitPoint    string  `json:"init_point"`
	Amount       float64 `json:"amount"`
}

func NewDepositCheckout(accessToken, studioName string) (*DepositCheckout, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &DepositCheckout{
		prefs:      preference.NewClient(cfg),
		studioName: studioName,
	}, nil
}

// CreateForAppointment builds a single-item preference covering the
// appointment's deposit. The appointment id rides along as the external
// reference so webhook reconciliation can find the row.
func (d *DepositCheckout) CreateForAppointment(
	ctx context.Context,
	ap *models.Appointment,
) (*Checkout, error) {

	if ap.DepositAmount <= 0 {
		return nil, fmt.Errorf("appointment %s has no deposit amount", ap.ID)
	}

	req := preference.Request{
		ExternalReference: ap.ID,
		Items: []preference.ItemRequest{
			{
				ID:         ap.ID,
				Title:      fmt.Sprintf("%s tattoo deposit", d.studioName),
				Quantity:   1,
				UnitPrice:  ap.DepositAmount,
				CurrencyID: "USD",
			},
		},
	}

	resp, err := d.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &Checkout{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
		Amount:       ap.DepositAmount,
	}, nil
}
