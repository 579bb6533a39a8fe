package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

type retryItem struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus so that a failing subscriber never fails the caller.
// Failed events are retried in the background with exponential backoff and finally
// written to the dead-letter file.
type ResilientPublisher struct {
	inner      Bus
	config     ResilientConfig
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	done     chan struct{}
	wg       sync.WaitGroup
	shutdown sync.Once
}

// NewResilientPublisher starts the retry loop. deadLetter may be nil, in which case
// exhausted events are only logged.
func NewResilientPublisher(inner Bus, config ResilientConfig, deadLetter *DeadLetterWriter) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	p := &ResilientPublisher{
		inner:      inner,
		config:     config,
		deadLetter: deadLetter,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		done:       make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryLoop()
	return p
}

// Publish delivers the event once. On failure it queues a retry and returns nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	select {
	case <-p.done:
		logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", event.Type)
		p.toDeadLetter(retryItem{event: event, attempts: 1, lastErr: err})
	case p.queue <- retryItem{event: event, attempts: 1, lastErr: err}:
	default:
		logger.FromContext(ctx).Error(LogMsgRetryQueueFull, "event_type", event.Type)
		p.toDeadLetter(retryItem{event: event, attempts: 1, lastErr: err})
	}
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops the retry loop. Queued events that were not retried go to the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdown.Do(func() { close(p.done) })

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (p *ResilientPublisher) retryLoop() {
	defer p.wg.Done()
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for {
		select {
		case <-p.done:
			p.drain()
			return
		case item := <-p.queue:
			timer := time.NewTimer(CalculateRetryDelay(p.config.RetryDelay, item.attempts))
			select {
			case <-p.done:
				timer.Stop()
				p.toDeadLetter(item)
				p.drain()
				return
			case <-timer.C:
			}

			item.attempts++
			if err := p.inner.Publish(ctx, item.event); err != nil {
				item.lastErr = err
				if item.attempts > p.config.MaxRetries {
					log.Error(LogMsgEventRetryExhausted, "event_type", item.event.Type, "attempts", item.attempts)
					p.toDeadLetter(item)
					continue
				}
				log.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempts, "error", err)
				select {
				case p.queue <- item:
				default:
					p.toDeadLetter(item)
				}
				continue
			}
			log.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempts)
		}
	}
}

func (p *ResilientPublisher) drain() {
	for {
		select {
		case item := <-p.queue:
			p.toDeadLetter(item)
		default:
			return
		}
	}
}

func (p *ResilientPublisher) toDeadLetter(item retryItem) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(item.event, item.attempts, item.lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFail, "event_type", item.event.Type, "error", err)
	}
}
