// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// MessageKind identifies the payload type a campaign sends.
type MessageKind string

const (
	KindText     MessageKind = "text"
	KindImage    MessageKind = "image"
	KindVideo    MessageKind = "video"
	KindAudio    MessageKind = "audio"
	KindSticker  MessageKind = "sticker"
	KindButtons  MessageKind = "buttons"
	KindList     MessageKind = "list"
	KindPoll     MessageKind = "poll"
	KindLocation MessageKind = "location"
	KindContact  MessageKind = "contact"
)

// DispatchStatus tracks a single delivery attempt.
type DispatchStatus string

const (
	DispatchStatusPending DispatchStatus = "pending"
	DispatchStatusSent    DispatchStatus = "sent"
	DispatchStatusError   DispatchStatus = "error"
)

// WarmupStatus is the lifecycle state of a warmup record.
type WarmupStatus string

const (
	WarmupStatusActive    WarmupStatus = "active"
	WarmupStatusCompleted WarmupStatus = "completed"
	WarmupStatusPaused    WarmupStatus = "paused"
)

// Campaign represents a campaign row.
type Campaign struct {
	ID              int64           `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	Kind            MessageKind     `db:"kind" json:"kind"`
	Message         string          `db:"message" json:"message"`
	MediaURL        sql.NullString  `db:"media_url" json:"media_url,omitempty"`
	MediaFilename   sql.NullString  `db:"media_filename" json:"media_filename,omitempty"`
	Mimetype        sql.NullString  `db:"mimetype" json:"mimetype,omitempty"`
	InteractiveData json.RawMessage `db:"interactive_data" json:"interactive_data,omitempty"`
	SendDelayMs     int             `db:"send_delay_ms" json:"send_delay_ms"`
	InstanceName    string          `db:"instance_name" json:"instance_name"`
	Status          CampaignStatus  `db:"status" json:"status"`
	TotalContacts   int             `db:"total_contacts" json:"total_contacts"`
	TotalSent       int             `db:"total_sent" json:"total_sent"`
	TotalErrors     int             `db:"total_errors" json:"total_errors"`
	StartedAt       sql.NullTime    `db:"started_at" json:"started_at,omitempty"`
	FinishedAt      sql.NullTime    `db:"finished_at" json:"finished_at,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// Contact belongs to exactly one campaign.
type Contact struct {
	ID         int64     `db:"id" json:"id"`
	CampaignID int64     `db:"campaign_id" json:"campaign_id"`
	Name       string    `db:"name" json:"name"`
	Phone      string    `db:"phone" json:"phone"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Dispatch is the per-(campaign, contact) delivery record. At most one
// row exists per pair, enforced by a unique index.
type Dispatch struct {
	ID           int64           `db:"id" json:"id"`
	CampaignID   int64           `db:"campaign_id" json:"campaign_id"`
	ContactID    int64           `db:"contact_id" json:"contact_id"`
	Phone        string          `db:"phone" json:"phone"`
	Status       DispatchStatus  `db:"status" json:"status"`
	Attempts     int             `db:"attempts" json:"attempts"`
	MessageID    sql.NullString  `db:"message_id" json:"message_id,omitempty"`
	APIResponse  json.RawMessage `db:"api_response" json:"api_response,omitempty"`
	ErrorMessage sql.NullString  `db:"error_message" json:"error_message,omitempty"`
	SentAt       sql.NullTime    `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// WarmupRecord tracks the progressive ramp-up of a fresh number.
type WarmupRecord struct {
	ID           int64        `db:"id" json:"id"`
	InstanceName string       `db:"instance_name" json:"instance_name"`
	StartDate    time.Time    `db:"start_date" json:"start_date"`
	Status       WarmupStatus `db:"status" json:"status"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}
