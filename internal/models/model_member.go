package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fitpulse/gymadmin/pkg/types"
)

// Member is a gym member. Document is the natural key (national ID);
// NextPaymentDate is derived from the last qualifying payment (or the
// registration date) plus one membership interval and is never edited
// directly.
type Member struct {
	ID        string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	FirstName string `gorm:"column:first_name;type:varchar(128);not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:varchar(128);not null" json:"last_name"`
	Document  string `gorm:"column:document;type:varchar(64);not null;uniqueIndex" json:"document"`
	Email     *string `gorm:"column:email;type:varchar(256);default:null" json:"email"`
	Phone     *string `gorm:"column:phone;type:varchar(64);default:null" json:"phone"`
	Address   *string `gorm:"column:address;type:varchar(512);default:null" json:"address"`
	BirthDate *time.Time `gorm:"column:birth_date;default:null" json:"birth_date"`
	// RegistrationDate is when the member joined; the initial next payment
	// date is computed from it.
	RegistrationDate time.Time            `gorm:"column:registration_date;not null" json:"registration_date"`
	MembershipType   types.MembershipType `gorm:"column:membership_type;type:varchar(16);not null" json:"membership_type"`
	MonthlyFee       decimal.Decimal      `gorm:"column:monthly_fee;type:numeric(12,2);not null" json:"monthly_fee"`
	LastPaymentDate  *time.Time           `gorm:"column:last_payment_date;default:null" json:"last_payment_date"`
	NextPaymentDate  *time.Time           `gorm:"column:next_payment_date;default:null;index" json:"next_payment_date"`
	IsActive         bool                 `gorm:"column:is_active;not null;default:true" json:"is_active"`
	Notes            *string              `gorm:"column:notes;type:text;default:null" json:"notes"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func (Member) TableName() string {
	return "member"
}

func (m *Member) FullName() string {
	if m == nil {
		return ""
	}
	return m.FirstName + " " + m.LastName
}
