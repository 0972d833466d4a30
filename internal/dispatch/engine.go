package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/dmfreire/zapdispatch/internal/antiban"
	"github.com/dmfreire/zapdispatch/internal/gateway"
	"github.com/dmfreire/zapdispatch/internal/models"
	"github.com/dmfreire/zapdispatch/internal/repository"
	"github.com/dmfreire/zapdispatch/internal/warmup"
)

// Gateway transmits one outbound message through a WhatsApp instance.
type Gateway interface {
	Send(ctx context.Context, instance string, out gateway.Outbound) (*gateway.SendResult, error)
}

// WarmupAdvisor reports the warmup ceiling in effect for an instance.
type WarmupAdvisor interface {
	Status(instance string) (*warmup.Status, error)
}

// Engine runs one dispatch loop goroutine per active campaign and owns
// the campaign lifecycle transitions around those loops. Run state
// lives only in process memory; dispatch rows in the store are what
// make a restart resumable.
type Engine struct {
	repo     repository.Repository
	gateway  Gateway
	policy   *antiban.Engine
	warmup   WarmupAdvisor
	registry *Registry
	clock    Clock
	redis    *redis.Client
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEngine(
	repo repository.Repository,
	gw Gateway,
	policy *antiban.Engine,
	warmupAdvisor WarmupAdvisor,
	clock Clock,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Engine {
	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		repo:     repo,
		gateway:  gw,
		policy:   policy,
		warmup:   warmupAdvisor,
		registry: NewRegistry(),
		clock:    clock,
		redis:    redisClient,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start kicks off the dispatch loop for a campaign. It returns once the
// loop goroutine is launched; a campaign with nothing left to send is
// marked completed without starting a loop. Contacts whose dispatch is
// already sent are excluded by the pending query, so restarting is
// idempotent.
func (e *Engine) Start(campaignID int64) error {
	campaign, err := e.repo.Campaign().GetByID(campaignID)
	if err != nil {
		return fmt.Errorf("failed to load campaign: %w", err)
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}
	if campaign.InstanceName == "" {
		return ErrMissingInstance
	}

	if !e.registry.Track(campaignID) {
		return ErrAlreadyRunning
	}

	contacts, err := e.repo.Contact().ListPending(campaignID)
	if err != nil {
		e.registry.Remove(campaignID)
		return fmt.Errorf("failed to load pending contacts: %w", err)
	}

	if len(contacts) == 0 {
		e.registry.Remove(campaignID)
		if err := e.repo.Campaign().MarkCompleted(campaignID); err != nil {
			return fmt.Errorf("failed to complete campaign: %w", err)
		}
		e.logger.Info("Campaign has no pending contacts, marking completed",
			zap.Int64("campaign_id", campaignID))
		return nil
	}

	content, err := gateway.BuildContent(campaign)
	if err != nil {
		e.registry.Remove(campaignID)
		return fmt.Errorf("failed to build message content: %w", err)
	}

	if err := e.repo.Campaign().MarkSending(campaignID, len(contacts)); err != nil {
		e.registry.Remove(campaignID)
		return fmt.Errorf("failed to mark campaign sending: %w", err)
	}

	e.wg.Add(1)
	go e.run(campaign, content, contacts)

	return nil
}

// Pause asks the campaign's loop to stop at its next checkpoint. A send
// already in flight is allowed to finish.
func (e *Engine) Pause(campaignID int64) error {
	campaign, err := e.repo.Campaign().GetByID(campaignID)
	if err != nil {
		return fmt.Errorf("failed to load campaign: %w", err)
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	e.registry.SetPaused(campaignID, true)
	if err := e.repo.Campaign().UpdateStatus(campaignID, models.CampaignStatusPaused); err != nil {
		return fmt.Errorf("failed to persist paused status: %w", err)
	}

	e.logger.Info("Campaign paused", zap.Int64("campaign_id", campaignID))
	return nil
}

// Resume clears the pause flag when the loop is still alive; when it is
// not (daily-limit exit, process restart), it starts a fresh loop over
// whatever is still pending.
func (e *Engine) Resume(campaignID int64) error {
	if e.registry.Tracked(campaignID) {
		e.registry.SetPaused(campaignID, false)
		if err := e.repo.Campaign().UpdateStatus(campaignID, models.CampaignStatusSending); err != nil {
			return fmt.Errorf("failed to persist sending status: %w", err)
		}
		e.logger.Info("Campaign resumed", zap.Int64("campaign_id", campaignID))
		return nil
	}

	return e.Start(campaignID)
}

// Running reports whether a dispatch loop is alive for the campaign.
func (e *Engine) Running(campaignID int64) bool {
	return e.registry.Tracked(campaignID)
}

// ActiveCampaigns returns the number of live dispatch loops.
func (e *Engine) ActiveCampaigns() int {
	return e.registry.ActiveCount()
}

// Shutdown cancels every loop at its next checkpoint and waits for all
// of them to exit.
func (e *Engine) Shutdown() {
	e.cancel()
	e.wg.Wait()
}

func (e *Engine) run(campaign *models.Campaign, content gateway.Content, contacts []*models.Contact) {
	defer e.wg.Done()

	campaignID := campaign.ID
	instance := campaign.InstanceName
	defer e.registry.Remove(campaignID)

	log := e.logger.With(
		zap.Int64("campaign_id", campaignID),
		zap.String("instance", instance))
	log.Info("Dispatch loop started", zap.Int("pending_contacts", len(contacts)))

	sent := 0
	failed := 0
	exhausted := true

	i := 0
	for i < len(contacts) {
		if e.ctx.Err() != nil {
			exhausted = false
			break
		}
		if e.registry.Paused(campaignID) {
			log.Info("Pause flag observed, stopping loop")
			exhausted = false
			break
		}

		now := e.clock.Now()
		if !e.policy.IsBusinessHours(now) {
			wait := e.policy.TimeUntilBusinessHours(now)
			log.Info("Outside business hours, waiting", zap.Duration("wait", wait))
			e.updateStatus(campaignID, models.CampaignStatusPaused, log)
			if err := e.clock.Sleep(e.ctx, wait); err != nil {
				exhausted = false
				break
			}
			// A pause issued during the wait already persisted paused;
			// the top-of-loop check exits without overwriting it.
			if !e.registry.Paused(campaignID) {
				e.updateStatus(campaignID, models.CampaignStatusSending, log)
			}
			continue
		}

		limits := e.policy.CheckLimits(instance, false)
		if ws, err := e.warmup.Status(instance); err != nil {
			log.Error("Failed to check warmup status", zap.Error(err))
		} else if ws.IsWarmingUp {
			// The warmup ceiling replaces the warmed-account daily limit.
			limits.DailyLimit = ws.MaxMessagesPerDay
			limits.DailyExceeded = limits.DailyCount >= limits.DailyLimit
		}

		if limits.HourlyExceeded {
			log.Warn("Hourly limit reached, waiting for the next hour",
				zap.Int("count", limits.HourlyCount),
				zap.Int("limit", limits.HourlyLimit))
			if err := e.clock.Sleep(e.ctx, time.Hour); err != nil {
				exhausted = false
				break
			}
			continue
		}

		if limits.DailyExceeded {
			log.Warn("Daily limit reached, pausing campaign",
				zap.Int("count", limits.DailyCount),
				zap.Int("limit", limits.DailyLimit))
			e.updateStatus(campaignID, models.CampaignStatusPaused, log)
			exhausted = false
			break
		}

		contact := contacts[i]
		i++

		record, err := e.repo.Dispatch().CreateOrFetch(campaignID, contact.ID, contact.Phone)
		if err != nil {
			// Leave the row as-is for a future retry, move on.
			log.Error("Failed to create dispatch record",
				zap.Int64("contact_id", contact.ID),
				zap.Error(err))
			continue
		}
		if record.Status == models.DispatchStatusSent {
			continue
		}

		phone, err := antiban.NormalizePhone(contact.Phone)
		if err != nil {
			log.Warn("Skipping contact with unusable phone",
				zap.Int64("contact_id", contact.ID),
				zap.String("phone", contact.Phone))
			e.recordFailure(campaignID, record.ID, err.Error(), nil, log)
			failed++
			continue
		}

		text := e.policy.Personalize(campaign.Message, contact)
		delay := e.policy.ComputeDelay(false)

		// Checked only ahead of a real send attempt: contacts skipped as
		// already sent do not advance the counter, so re-checking for
		// them would repeat the same pause.
		if pause := e.policy.NeedsPreventivePause(instance); pause.Needed {
			log.Info("Preventive pause",
				zap.String("reason", pause.Reason),
				zap.Duration("duration", pause.Duration))
			if err := e.clock.Sleep(e.ctx, pause.Duration); err != nil {
				exhausted = false
				break
			}
		}

		result, err := e.gateway.Send(e.ctx, instance, gateway.Outbound{
			Number:      phone,
			Text:        text,
			DelayMillis: int(delay.Milliseconds()),
			Content:     content,
		})
		if err != nil {
			var apiErr *gateway.APIError
			var raw json.RawMessage
			if errors.As(err, &apiErr) {
				raw = apiErr.Body
			}
			log.Warn("Gateway send failed",
				zap.Int64("contact_id", contact.ID),
				zap.Error(err))
			e.recordFailure(campaignID, record.ID, err.Error(), raw, log)
			failed++
		} else {
			if markErr := e.repo.Dispatch().MarkSent(record.ID, result.MessageID, result.Raw); markErr != nil {
				log.Error("Failed to mark dispatch sent", zap.Error(markErr))
			} else {
				if incErr := e.repo.Campaign().IncrementSent(campaignID); incErr != nil {
					log.Error("Failed to increment sent counter", zap.Error(incErr))
				}
				e.policy.RegisterSend(instance)
				e.cacheMessageID(campaignID, contact.ID, result.MessageID, log)
				sent++
				log.Info("Message sent",
					zap.Int64("contact_id", contact.ID),
					zap.String("message_id", result.MessageID),
					zap.Int("progress", sent+failed),
					zap.Int("total", len(contacts)))
			}
		}

		// The spacing between messages: this sleep, not the provider's
		// delay hint, is what paces the campaign.
		if err := e.clock.Sleep(e.ctx, delay); err != nil {
			exhausted = false
			break
		}
	}

	if exhausted {
		if err := e.repo.Campaign().MarkCompleted(campaignID); err != nil {
			log.Error("Failed to mark campaign completed", zap.Error(err))
		}
	}

	stats := e.policy.Stats(instance)
	log.Info("Dispatch loop finished",
		zap.Int("sent", sent),
		zap.Int("errors", failed),
		zap.Bool("completed", exhausted),
		zap.Int("daily_count", stats.DailyCount),
		zap.Int("hourly_count", stats.HourlyCount))
}

func (e *Engine) recordFailure(campaignID, dispatchID int64, message string, raw json.RawMessage, log *zap.Logger) {
	if err := e.repo.Dispatch().MarkError(dispatchID, message, raw); err != nil {
		log.Error("Failed to mark dispatch error", zap.Error(err))
	}
	if err := e.repo.Campaign().IncrementErrors(campaignID); err != nil {
		log.Error("Failed to increment error counter", zap.Error(err))
	}
}

func (e *Engine) updateStatus(campaignID int64, status models.CampaignStatus, log *zap.Logger) {
	if err := e.repo.Campaign().UpdateStatus(campaignID, status); err != nil {
		log.Error("Failed to update campaign status",
			zap.String("status", string(status)),
			zap.Error(err))
	}
}

func (e *Engine) cacheMessageID(campaignID, contactID int64, messageID string, log *zap.Logger) {
	if e.redis == nil || messageID == "" {
		return
	}

	key := fmt.Sprintf("dispatch:%d:%d", campaignID, contactID)
	if err := e.redis.Set(context.Background(), key, messageID, 24*time.Hour).Err(); err != nil {
		log.Warn("Failed to cache message id in Redis",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
