package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tatyana-ilieva/lev-holdings/internal/apperrors"
	"github.com/tatyana-ilieva/lev-holdings/internal/models"
	"github.com/tatyana-ilieva/lev-holdings/internal/models/dto"
)

const maxWebhookBody = 1 << 20

type WebhookService interface {
	Process(ctx context.Context, event *models.WebhookEvent) (bool, error)
}

// WebhookParser authenticates and decodes provider callbacks.
type WebhookParser interface {
	ParseWebhook(header http.Header, body []byte) (*models.WebhookEvent, error)
}

type WebhookHandler struct {
	Service WebhookService
	Parser  WebhookParser
}

func NewWebhookHandler(s WebhookService, p WebhookParser) *WebhookHandler {
	return &WebhookHandler{Service: s, Parser: p}
}

// POST /api/sumsub-webhook
//
// Every event the provider can deliver is acknowledged with 200 so it is not
// redelivered; processed reports whether it was applied. Unparseable
// identifiers and bad signatures are the exceptions.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable body"})
		return
	}

	event, err := h.Parser.ParseWebhook(c.Request.Header, body)
	if err != nil {
		logrus.Warnf("Rejected webhook: %s", err.Error())
		respondError(c, err)
		return
	}

	processed, err := h.Service.Process(c.Request.Context(), event)
	if errors.Is(err, apperrors.ErrInvalidArgument) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid externalUserId format"})
		return
	}

	ack := dto.WebhookAck{Received: true, Processed: processed, Timestamp: time.Now().UTC()}
	if err != nil {
		logrus.Errorf("Webhook processing error: %s", err.Error())
		ack.Error = apperrors.PublicMessage(err)
	}
	c.JSON(http.StatusOK, ack)
}

// HandleEvents consumes webhook payloads relayed through Kafka. Errors are
// returned so the subscriber can retry or dead-letter the message.
func (h *WebhookHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.WebhookTopic:
		var event models.WebhookEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing webhook event %s", err.Error())
			return apperrors.InvalidArgument("error parsing webhook event: %v", err)
		}

		if _, err := h.Service.Process(ctx, &event); err != nil {
			return fmt.Errorf("error processing webhook event: %w", err)
		}
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return apperrors.InvalidArgument("topic not allowed %s", topic)
	}

	return nil
}
