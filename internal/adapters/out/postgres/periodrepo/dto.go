// Package periodrepo provides persistence for the award period anchor of a
// contracting process stage. The anchor is a single write-once row per
// (contracting process, stage) pair.
package periodrepo

import "time"

// AwardPeriodDTO represents the database structure for the period anchor.
// The composite primary key makes concurrent first writes collide on the
// constraint instead of producing two anchors.
type AwardPeriodDTO struct {
	CpID  string `gorm:"primaryKey"`
	Stage string `gorm:"primaryKey"`

	StartDate time.Time
}

// TableName specifies the database table name for period anchors.
// Overrides GORM's default naming convention to use "award_periods".
func (AwardPeriodDTO) TableName() string {
	return "award_periods"
}
