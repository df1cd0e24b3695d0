package publish

// Telegram chart publisher
// Sends rendered PNG charts to a chat as photos
// Rate limiter keeps sends under Telegram flood limits
// Circuit breaker stops hammering the API after repeated failures
// Retries 429/5xx responses with backoff via infra/retry

import (
	"context"
	"fmt"
	"time"

	"simple-charts/internal/infra/config"
	"simple-charts/internal/infra/fs"
	logging "simple-charts/internal/infra/log"
	"simple-charts/internal/infra/retry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Sender is the part of tgbotapi.BotAPI the publisher uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Publisher struct {
	sender         Sender
	chatID         int64
	rateLimiter    *rate.Limiter
	circuitBreaker *gobreaker.CircuitBreaker
	retryOpts      retry.Options
	fileWait       time.Duration
}

// New creates a publisher for the configured chat.
func New(sender Sender, cfg config.TelegramConfig) *Publisher {
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "TelegramPublish",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.LogWarn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Publisher{
		sender:         sender,
		chatID:         cfg.ChatID,
		rateLimiter:    rate.NewLimiter(limit, burst),
		circuitBreaker: circuitBreaker,
		retryOpts: retry.Options{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  500 * time.Millisecond,
			MaxDelay:   30 * time.Second,
		},
		fileWait: 5 * time.Second,
	}
}

// NewBot connects to the Bot API with the configured token.
func NewBot(cfg config.TelegramConfig) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	logging.LogInfo("Telegram bot authorized", zap.String("username", bot.Self.UserName))
	return bot, nil
}

// PublishPhoto waits for the chart file to appear and sends it with caption.
func (p *Publisher) PublishPhoto(ctx context.Context, path, caption string) (int, error) {
	if err := fs.WaitForFile(ctx, path, p.fileWait); err != nil {
		return 0, fmt.Errorf("chart file not ready: %w", err)
	}

	photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FilePath(path))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML

	var sent tgbotapi.Message
	err := retry.Do(ctx, p.retryOpts, func() error {
		if err := p.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait failed: %w", err)
		}
		_, err := p.circuitBreaker.Execute(func() (interface{}, error) {
			msg, err := p.sender.Send(photo)
			if err != nil {
				return nil, err
			}
			sent = msg
			return msg, nil
		})
		return err
	})
	if err != nil {
		logging.LogError("Failed to publish chart",
			zap.String("path", path),
			zap.Int64("chatID", p.chatID),
			zap.Error(err))
		return 0, err
	}

	logging.LogSuccess("Chart published",
		zap.String("path", path),
		zap.Int64("chatID", p.chatID),
		zap.Int("messageID", sent.MessageID))
	return sent.MessageID, nil
}
