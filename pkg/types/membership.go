package types

type MembershipType string

const (
	MembershipTypeMonthly MembershipType = "MONTHLY"
	MembershipTypeAnnual  MembershipType = "ANNUAL"
)

func (t MembershipType) Valid() bool {
	return t == MembershipTypeMonthly || t == MembershipTypeAnnual
}

type PaymentType string

const (
	PaymentTypeMonthly      PaymentType = "MONTHLY"
	PaymentTypeAnnual       PaymentType = "ANNUAL"
	PaymentTypeRegistration PaymentType = "REGISTRATION"
	PaymentTypePenalty      PaymentType = "PENALTY"
	PaymentTypeOther        PaymentType = "OTHER"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeMonthly, PaymentTypeAnnual, PaymentTypeRegistration, PaymentTypePenalty, PaymentTypeOther:
		return true
	}
	return false
}

// Qualifying reports whether a payment of this type renews the membership.
// Only MONTHLY and ANNUAL payments move the member's next payment date;
// registration fees, penalties and misc charges are recorded only.
func (t PaymentType) Qualifying() bool {
	return t == PaymentTypeMonthly || t == PaymentTypeAnnual
}

// MembershipInterval maps a qualifying payment type to the membership
// interval it pays for. Returns false for non-qualifying types.
func (t PaymentType) MembershipInterval() (MembershipType, bool) {
	switch t {
	case PaymentTypeMonthly:
		return MembershipTypeMonthly, true
	case PaymentTypeAnnual:
		return MembershipTypeAnnual, true
	}
	return "", false
}

type MemberChangeReason string

const (
	MemberChangeReasonCreate     MemberChangeReason = "create"
	MemberChangeReasonEdit       MemberChangeReason = "edit"
	MemberChangeReasonPayment    MemberChangeReason = "payment"
	MemberChangeReasonDeactivate MemberChangeReason = "deactivate"
)
