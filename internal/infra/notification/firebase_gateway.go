// Package notification implements the push gateway over Firebase Cloud Messaging.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// sentTimeLayout is the timestamp format the mobile apps parse out of the payload.
const sentTimeLayout = "2006-01-02T15:04:05"

type firebaseGateway struct {
	client *messaging.Client
}

// NewFirebaseGateway creates the FCM-backed push gateway. When cfg is nil or
// carries no credentials path the gateway starts unconfigured: Configured()
// reports false and every send returns service.ErrGatewayNotConfigured.
func NewFirebaseGateway(ctx context.Context, cfg *config.FirebaseConfig) (service.PushGateway, error) {
	if cfg == nil || cfg.CredentialsPath == "" {
		return &firebaseGateway{}, nil
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseGateway{
		client: client,
	}, nil
}

// Configured reports whether an FCM client is available.
func (g *firebaseGateway) Configured() bool {
	return g.client != nil
}

// SendSurvey delivers one survey notification to one device token.
// Android receives a data-only high-priority message so the app can schedule
// the survey itself; other platforms additionally get a visible notification.
func (g *firebaseGateway) SendSurvey(ctx context.Context, msg *service.SurveyMessage) error {
	if g.client == nil {
		return service.ErrGatewayNotConfigured
	}

	surveyIDs, err := json.Marshal(msg.SurveyIDs)
	if err != nil {
		return errors.Wrap(err, "marshal survey ids")
	}

	data := map[string]string{
		"type":        "survey",
		"survey_ids":  string(surveyIDs),
		"sent_time":   msg.SentTime.Format(sentTimeLayout),
		"nonce":       msg.Nonce,
		"schedule_id": msg.ScheduleID.String(),
	}

	message := &messaging.Message{
		Token: msg.Token,
		Data:  data,
	}
	if msg.OSType == entity.OSAndroid {
		message.Android = &messaging.AndroidConfig{Priority: "high"}
	} else {
		message.Notification = &messaging.Notification{
			Title: "Pulse",
			Body:  notificationBody(msg.SurveyIDs),
		}
	}

	if _, err := g.client.Send(ctx, message); err != nil {
		return classifySendError(err)
	}

	return nil
}

// notificationBody phrases the visible alert for the number of surveys
// batched into the message.
func notificationBody(surveyIDs []string) string {
	if len(surveyIDs) > 1 {
		return "You have surveys to take."
	}

	return "You have a survey to take."
}

// classifySendError maps FCM errors onto the domain gateway sentinels,
// preserving the backend's reason text for the archive record.
func classifySendError(err error) error {
	switch {
	case messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err):
		return errors.Wrap(service.ErrTokenUnregistered, err.Error())
	case messaging.IsQuotaExceeded(err):
		return errors.Wrap(service.ErrQuotaExceeded, err.Error())
	case messaging.IsSenderIDMismatch(err):
		return errors.Wrap(service.ErrSenderMismatch, err.Error())
	case messaging.IsThirdPartyAuthError(err):
		return errors.Wrap(service.ErrAuthMismatch, err.Error())
	default:
		return errors.Wrap(err, "send notification")
	}
}
