package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates accepted payment methods
type PaymentMethod string

const (
	MethodCredit PaymentMethod = "credit"
	MethodDebit  PaymentMethod = "debit"
	MethodUPI    PaymentMethod = "upi"
)

// ValidPaymentMethod reports whether m is an accepted method
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCredit, MethodDebit, MethodUPI:
		return true
	}
	return false
}

// Payment is an append-only billing record. Card fields stay empty for
// non-card methods.
type Payment struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         *uint           `json:"user_id"`
	User           *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Reference      string          `json:"reference" gorm:"uniqueIndex;not null"`
	FirstName      string          `json:"first_name" gorm:"not null"`
	LastName       string          `json:"last_name" gorm:"not null"`
	Address        string          `json:"address" gorm:"not null"`
	Country        string          `json:"country" gorm:"not null"`
	State          string          `json:"state" gorm:"not null"`
	PinCode        string          `json:"pin_code" gorm:"not null"`
	Method         PaymentMethod   `json:"payment_method" gorm:"not null"`
	NameOnCard     string          `json:"name_on_card,omitempty"`
	CardNumber     string          `json:"-"`
	ExpirationDate string          `json:"-"`
	CVV            string          `json:"-"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CheckoutIntent records what the user agreed to pay between the checkout
// confirmation and the payment submission. One unconsumed intent at a time
// is payable; paying consumes it, so a fresh checkout is needed to pay again.
type CheckoutIntent struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	OrderIDs        string          `json:"-" gorm:"type:text"`
	GalleryOrderIDs string          `json:"-" gorm:"type:text"`
	Consumed        bool            `json:"consumed" gorm:"not null;default:false"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SetSnapshot stores the pending order IDs covered by this intent.
func (ci *CheckoutIntent) SetSnapshot(orderIDs, galleryOrderIDs []uint) error {
	o, err := json.Marshal(orderIDs)
	if err != nil {
		return err
	}
	g, err := json.Marshal(galleryOrderIDs)
	if err != nil {
		return err
	}
	ci.OrderIDs = string(o)
	ci.GalleryOrderIDs = string(g)
	return nil
}

// Snapshot returns the order IDs captured at checkout time.
func (ci *CheckoutIntent) Snapshot() (orderIDs, galleryOrderIDs []uint, err error) {
	if ci.OrderIDs != "" {
		if err = json.Unmarshal([]byte(ci.OrderIDs), &orderIDs); err != nil {
			return nil, nil, err
		}
	}
	if ci.GalleryOrderIDs != "" {
		if err = json.Unmarshal([]byte(ci.GalleryOrderIDs), &galleryOrderIDs); err != nil {
			return nil, nil, err
		}
	}
	return orderIDs, galleryOrderIDs, nil
}
