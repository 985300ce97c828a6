package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/fitpulse/gymadmin/pkg/types"
)

// MemberLog records changes to members.
// Use case: troubleshooting.
type MemberLog struct {
	ID       string `gorm:"column:id;type:uuid;primary_key"`
	MemberID string `gorm:"column:member_id;type:uuid;index:idx_member_id_log,priority:1;not null"`
	// Reason is the change reason.
	Reason types.MemberChangeReason `gorm:"column:reason;type:varchar(64);not null"`
	// Before stores member data before the change in JSON format.
	Before datatypes.JSONType[*Member] `gorm:"column:before;type:jsonb;default:'null'"`
	// After stores member data after the change in JSON format.
	After datatypes.JSONType[*Member] `gorm:"column:after;type:jsonb;default:'null'"`
	// Extra stores additional context such as the triggering payment id.
	Extra     datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'"`
	CreatedAt time.Time
}

func (MemberLog) TableName() string {
	return "member_log"
}
