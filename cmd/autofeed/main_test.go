package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/autofeed/pkg/config"
	"github.com/umputun/autofeed/pkg/domain"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_CorruptSQLiteStore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "feeds.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("definitely not a sqlite database file content"), 0o600))
	configPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("store:\n  driver: sqlite\n  path: "+dbPath+"\n"), 0o600))
	port := freePort(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Config: configPath, Listen: fmt.Sprintf("127.0.0.1:%d", port), DryRun: true})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond, "service starts with a broken database")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run didn't stop")
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

func TestRun_ServerStartStop(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "feeds.json")
	port := freePort(t)
	base := fmt.Sprintf("http://127.0.0.1:%d", port)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Store: storePath, Listen: fmt.Sprintf("127.0.0.1:%d", port), DryRun: true})
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	body := `{"name":"Ping","intervalMinutes":1,"destination":"chan-1","payload":{"description":"hi"}}`
	resp, err := http.Post(base+"/api/v1/feeds", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var feed domain.Feed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	assert.NotEmpty(t, feed.ID)

	sendResp, err := http.Post(base+"/api/v1/feeds/"+feed.ID+"/send", "application/json", http.NoBody)
	require.NoError(t, err)
	defer sendResp.Body.Close()
	sendBody, err := io.ReadAll(sendResp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`{"feedId":%q,"delivered":true,"skipped":false}`, feed.ID), string(sendBody))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run didn't stop")
	}

	data, err := os.ReadFile(storePath)
	require.NoError(t, err)
	var stored []domain.Feed
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "Ping", stored[0].Name)
	assert.NotNil(t, stored[0].LastDeliveredAt)
}

func TestMakeSender(t *testing.T) {
	cfg := config.Default()
	cfg.Webhook.Hooks = map[string]string{"alerts": "https://example.com/hook"}

	t.Run("routes", func(t *testing.T) {
		s := makeSender(cfg, nil, false)
		ok, err := s.Resolve(context.Background(), "hook:alerts")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Resolve(context.Background(), "hook:unknown")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.Resolve(context.Background(), "anything")
		require.NoError(t, err)
		assert.True(t, ok, "default log sender accepts any destination")
	})

	t.Run("webhook default", func(t *testing.T) {
		c := *cfg
		c.DefaultSender = "webhook"
		s := makeSender(&c, nil, false)
		ok, err := s.Resolve(context.Background(), "alerts")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("dry run", func(t *testing.T) {
		c := *cfg
		c.DefaultSender = "webhook"
		s := makeSender(&c, nil, true)
		ok, err := s.Resolve(context.Background(), "hook:unknown")
		require.NoError(t, err)
		assert.True(t, ok, "everything goes to log sender")
	})
}

func TestSecretsOf(t *testing.T) {
	cfg := config.Default()
	assert.Empty(t, secretsOf(cfg))
	cfg.Telegram.Token = "tok"
	cfg.Server.AuthPassword = "pass"
	assert.Equal(t, []string{"tok", "pass"}, secretsOf(cfg))
}
