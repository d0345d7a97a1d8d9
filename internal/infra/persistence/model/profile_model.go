// Package model contains the GORM structs that mirror the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProfileRecord is implemented by every role profile model.
type ProfileRecord interface {
	TableName() string
	Base() *ProfileBase
}

// ProfileBase holds the columns shared by every role profile table.
type ProfileBase struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	Headline    string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(120);index"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Base returns the shared columns.
func (b *ProfileBase) Base() *ProfileBase {
	return b
}

// FreelancerProfileModel is the GORM-specific struct for the 'freelancer_profiles' table.
type FreelancerProfileModel struct {
	ProfileBase
	Skills     pq.StringArray `gorm:"type:text[]"`
	HourlyRate *float64       `gorm:"type:decimal(10,2)"`
}

// TableName explicitly sets the table name for GORM.
func (FreelancerProfileModel) TableName() string {
	return "freelancer_profiles"
}

// InvestorProfileModel is the GORM-specific struct for the 'investor_profiles' table.
type InvestorProfileModel struct {
	ProfileBase
	Sectors   pq.StringArray `gorm:"type:text[]"`
	Stages    pq.StringArray `gorm:"type:text[]"`
	TicketMin *int64
	TicketMax *int64
}

// TableName explicitly sets the table name for GORM.
func (InvestorProfileModel) TableName() string {
	return "investor_profiles"
}

// StartupProfileModel is the GORM-specific struct for the 'startup_profiles' table.
type StartupProfileModel struct {
	ProfileBase
	CompanyName string `gorm:"type:varchar(255)"`
	Industry    string `gorm:"type:varchar(120)"`
	Stage       string `gorm:"type:varchar(60)"`
	TeamSize    int
}

// TableName explicitly sets the table name for GORM.
func (StartupProfileModel) TableName() string {
	return "startup_profiles"
}

// ProviderProfileModel is the GORM-specific struct for the 'provider_profiles' table.
// Space providers live here.
type ProviderProfileModel struct {
	ProfileBase
	SpaceName string         `gorm:"type:varchar(255)"`
	Category  string         `gorm:"type:varchar(120)"`
	Capacity  int
	Amenities pq.StringArray `gorm:"type:text[]"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderProfileModel) TableName() string {
	return "provider_profiles"
}
