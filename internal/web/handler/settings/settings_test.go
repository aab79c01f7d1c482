package settings_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionsinject/optionsinject/internal/config"
	"github.com/optionsinject/optionsinject/internal/injector"
	record "github.com/optionsinject/optionsinject/internal/settings"
	"github.com/optionsinject/optionsinject/internal/storage/memory"
	"github.com/optionsinject/optionsinject/internal/web/handler/settings"
)

type lines struct {
	ch chan string
}

func (l lines) Info(msg string) {
	l.ch <- msg
}

func setup(t *testing.T, applyRate ...int) (*fiber.App, *memory.Store, lines) {
	t.Helper()

	cfg := &config.Config{Storage: config.Storage{Area: "sync"}}
	if len(applyRate) > 0 {
		cfg.Webserver.ApplyRate = applyRate[0]
	}

	store := memory.New()
	logged := lines{ch: make(chan string, 1)}

	app := fiber.New()

	svc := settings.Service{}
	svc.Init(app, cfg, store, injector.New(store, logged))

	return app, store, logged
}

func do(t *testing.T, app *fiber.App, method, target string) (int, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

func TestDefaults(t *testing.T) {
	app, _, _ := setup(t)

	status, body := do(t, app, fiber.MethodGet, settings.DefaultsPath)
	assert.Equal(t, fiber.StatusOK, status)

	want, err := json.Marshal(record.Default())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(body))
}

func TestStoredEmpty(t *testing.T) {
	app, _, _ := setup(t)

	status, body := do(t, app, fiber.MethodGet, settings.Path)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{}`, string(body))
}

func TestStoredOnlyRecordKeys(t *testing.T) {
	app, store, _ := setup(t)

	require.NoError(t, store.SetAll(context.Background(), map[string][]byte{
		"enabled":   []byte(`false`),
		"unrelated": []byte(`1`),
	}))

	status, body := do(t, app, fiber.MethodGet, settings.Path)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"enabled":false}`, string(body))
}

func TestApply(t *testing.T) {
	app, store, logged := setup(t)

	status, body := do(t, app, fiber.MethodPost, settings.ApplyPath)
	assert.Equal(t, fiber.StatusAccepted, status)
	assert.JSONEq(t, `{"area":"sync","status":"started"}`, string(body))

	select {
	case msg := <-logged.ch:
		assert.Equal(t, injector.CompletionMessage, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("injector did not complete")
	}

	want, err := record.Default().Items()
	require.NoError(t, err)
	assert.Equal(t, want, store.Snapshot())

	status, body = do(t, app, fiber.MethodGet, settings.Path)
	assert.Equal(t, fiber.StatusOK, status)

	expected, err := json.Marshal(record.Default())
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(body))
}

func TestApplyRateLimited(t *testing.T) {
	app, store, logged := setup(t, 1)

	status, _ := do(t, app, fiber.MethodPost, settings.ApplyPath)
	assert.Equal(t, fiber.StatusAccepted, status)

	status, _ = do(t, app, fiber.MethodPost, settings.ApplyPath)
	assert.Equal(t, fiber.StatusTooManyRequests, status)

	select {
	case <-logged.ch:
	case <-time.After(5 * time.Second):
		t.Fatal("injector did not complete")
	}

	assert.Equal(t, 1, store.Sets())
}
