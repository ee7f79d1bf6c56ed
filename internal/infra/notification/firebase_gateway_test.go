package notification

import (
	"context"
	"testing"

	"pulse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationBody_SingularAndPlural(t *testing.T) {
	assert.Equal(t, "You have a survey to take.", notificationBody([]string{"survey-a"}))
	assert.Equal(t, "You have surveys to take.", notificationBody([]string{"survey-a", "survey-b"}))
}

func TestNewFirebaseGateway_UnconfiguredWithoutCredentials(t *testing.T) {
	gateway, err := NewFirebaseGateway(context.Background(), nil)

	require.NoError(t, err)
	assert.False(t, gateway.Configured())

	err = gateway.SendSurvey(context.Background(), &service.SurveyMessage{Token: "token-1"})
	assert.ErrorIs(t, err, service.ErrGatewayNotConfigured)
}
