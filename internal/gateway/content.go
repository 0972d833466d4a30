package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/dmfreire/zapdispatch/internal/models"
)

// Content is the typed payload a campaign sends. Each variant knows the
// Evolution API endpoint it posts to and the body fields it carries; the
// campaign's interactive data is decoded once, at campaign start, not
// per contact.
type Content interface {
	Kind() models.MessageKind
	endpoint() string
	fields(out Outbound) map[string]interface{}
}

type TextContent struct{}

func (TextContent) Kind() models.MessageKind { return models.KindText }
func (TextContent) endpoint() string         { return "sendText" }
func (TextContent) fields(out Outbound) map[string]interface{} {
	return map[string]interface{}{
		"text":        out.Text,
		"linkPreview": false,
	}
}

// MediaContent covers images and videos; the personalized message
// becomes the caption.
type MediaContent struct {
	MediaType string
	Mimetype  string
	MediaURL  string
	FileName  string
}

func (m MediaContent) Kind() models.MessageKind {
	if m.MediaType == "video" {
		return models.KindVideo
	}
	return models.KindImage
}
func (MediaContent) endpoint() string { return "sendMedia" }
func (m MediaContent) fields(out Outbound) map[string]interface{} {
	return map[string]interface{}{
		"mediatype": m.MediaType,
		"mimetype":  m.Mimetype,
		"media":     m.MediaURL,
		"fileName":  m.FileName,
		"caption":   out.Text,
	}
}

type AudioContent struct {
	AudioURL string
}

func (AudioContent) Kind() models.MessageKind { return models.KindAudio }
func (AudioContent) endpoint() string         { return "sendAudio" }
func (a AudioContent) fields(Outbound) map[string]interface{} {
	return map[string]interface{}{"audio": a.AudioURL}
}

type StickerContent struct {
	StickerURL string
}

func (StickerContent) Kind() models.MessageKind { return models.KindSticker }
func (StickerContent) endpoint() string         { return "sendSticker" }
func (s StickerContent) fields(Outbound) map[string]interface{} {
	return map[string]interface{}{"sticker": s.StickerURL}
}

type ButtonsContent struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Footer      string            `json:"footer"`
	Buttons     []json.RawMessage `json:"buttons"`
}

func (ButtonsContent) Kind() models.MessageKind { return models.KindButtons }
func (ButtonsContent) endpoint() string         { return "sendButton" }
func (b ButtonsContent) fields(Outbound) map[string]interface{} {
	return map[string]interface{}{
		"title":       b.Title,
		"description": b.Description,
		"footer":      b.Footer,
		"buttons":     b.Buttons,
	}
}

type ListContent struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ButtonText  string            `json:"buttonText"`
	FooterText  string            `json:"footerText"`
	Values      []json.RawMessage `json:"values"`
}

func (ListContent) Kind() models.MessageKind { return models.KindList }
func (ListContent) endpoint() string         { return "sendList" }
func (l ListContent) fields(Outbound) map[string]interface{} {
	return map[string]interface{}{
		"title":       l.Title,
		"description": l.Description,
		"buttonText":  l.ButtonText,
		"footerText":  l.FooterText,
		"values":      l.Values,
	}
}

type PollContent struct {
	Name            string   `json:"name"`
	SelectableCount int      `json:"selectableCount"`
	Values          []string `json:"values"`
}

func (PollContent) Kind() models.MessageKind { return models.KindPoll }
func (PollContent) endpoint() string         { return "sendPoll" }
func (p PollContent) fields(Outbound) map[string]interface{} {
	count := p.SelectableCount
	if count < 1 {
		count = 1
	}
	return map[string]interface{}{
		"name":            p.Name,
		"selectableCount": count,
		"values":          p.Values,
	}
}

type LocationContent struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (LocationContent) Kind() models.MessageKind { return models.KindLocation }
func (LocationContent) endpoint() string         { return "sendLocation" }
func (l LocationContent) fields(Outbound) map[string]interface{} {
	return map[string]interface{}{
		"name":      l.Name,
		"address":   l.Address,
		"latitude":  l.Latitude,
		"longitude": l.Longitude,
	}
}

// ContactContent forwards a contact card payload as stored.
type ContactContent struct {
	Card json.RawMessage
}

func (ContactContent) Kind() models.MessageKind { return models.KindContact }
func (ContactContent) endpoint() string         { return "sendContact" }
func (c ContactContent) fields(Outbound) map[string]interface{} {
	return map[string]interface{}{"contact": c.Card}
}

// BuildContent decodes a campaign's message definition into its typed
// content variant. Unknown kinds fall back to plain text, matching the
// provider's most forgiving endpoint.
func BuildContent(campaign *models.Campaign) (Content, error) {
	switch campaign.Kind {
	case models.KindImage, models.KindVideo:
		return MediaContent{
			MediaType: string(campaign.Kind),
			Mimetype:  campaign.Mimetype.String,
			MediaURL:  campaign.MediaURL.String,
			FileName:  campaign.MediaFilename.String,
		}, nil

	case models.KindAudio:
		return AudioContent{AudioURL: campaign.MediaURL.String}, nil

	case models.KindSticker:
		return StickerContent{StickerURL: campaign.MediaURL.String}, nil

	case models.KindButtons:
		var content ButtonsContent
		if err := decodeInteractive(campaign, &content); err != nil {
			return nil, err
		}
		return content, nil

	case models.KindList:
		var content ListContent
		if err := decodeInteractive(campaign, &content); err != nil {
			return nil, err
		}
		return content, nil

	case models.KindPoll:
		var content PollContent
		if err := decodeInteractive(campaign, &content); err != nil {
			return nil, err
		}
		return content, nil

	case models.KindLocation:
		var content LocationContent
		if err := decodeInteractive(campaign, &content); err != nil {
			return nil, err
		}
		return content, nil

	case models.KindContact:
		if len(campaign.InteractiveData) == 0 {
			return nil, fmt.Errorf("campaign %d: %s kind requires interactive data", campaign.ID, campaign.Kind)
		}
		return ContactContent{Card: campaign.InteractiveData}, nil

	default:
		return TextContent{}, nil
	}
}

func decodeInteractive(campaign *models.Campaign, target interface{}) error {
	if len(campaign.InteractiveData) == 0 {
		return fmt.Errorf("campaign %d: %s kind requires interactive data", campaign.ID, campaign.Kind)
	}
	if err := json.Unmarshal(campaign.InteractiveData, target); err != nil {
		return fmt.Errorf("campaign %d: failed to decode %s payload: %w", campaign.ID, campaign.Kind, err)
	}
	return nil
}
