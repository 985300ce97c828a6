package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fitpulse/gymadmin/pkg/types"
)

// Payment is a recorded payment by a member. Payments are immutable once
// created; corrections are handled administratively.
type Payment struct {
	ID       string `gorm:"column:id;type:uuid;primary_key;index:idx_member_id_id,priority:2,sort:desc" json:"id"`
	MemberID string `gorm:"column:member_id;type:uuid;not null;index:idx_member_id_id,priority:1" json:"member_id"`
	Amount   decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	PaymentType types.PaymentType `gorm:"column:payment_type;type:varchar(16);not null" json:"payment_type"`
	// PaymentDate defaults to submission time when the caller omits it.
	PaymentDate time.Time `gorm:"column:payment_date;not null;index" json:"payment_date"`
	Description *string   `gorm:"column:description;type:varchar(512);default:null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Payment) TableName() string {
	return "payment"
}

// Qualifying reports whether this payment renews the membership.
func (p *Payment) Qualifying() bool {
	if p == nil {
		return false
	}
	return p.PaymentType.Qualifying()
}
