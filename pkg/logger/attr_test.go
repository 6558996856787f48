package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("toast", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "toast", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr  slog.Attr
		key   string
		value any
	}{
		{logger.NotificationID("n-1"), "notification_id", "n-1"},
		{logger.RequestID("req-1"), "request_id", "req-1"},
		{logger.Container("top-left"), "container", "top-left"},
		{logger.ToastType("success"), "toast_type", "success"},
		{logger.Field("timeoutDismiss.duration"), "field", "timeoutDismiss.duration"},
		{logger.File("toasts.yaml"), "file", "toasts.yaml"},
		{logger.Component("cli"), "component", "cli"},
		{logger.Event("validated"), "event", "validated"},
		{logger.Status(422), "status", int64(422)},
		{logger.Duration(time.Second), "duration", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}
}
