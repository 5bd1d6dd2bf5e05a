//go:build integration

package redis_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	repo "github.com/dtroode/videoflix-server/internal/repository/redis"
)

var addr string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		panic(err)
	}
	addr = fmt.Sprintf("%s:%s", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestBlacklist(t *testing.T) {
	ctx := context.Background()
	client, err := repo.NewClient(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	bl := repo.NewBlacklist(client)

	ok, err := bl.Contains(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, bl.Add(ctx, "jti-1", time.Minute))
	ok, err = bl.Contains(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, ok)

	ttl, err := client.TTL(ctx, "blacklist:refresh:jti-1").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, bl.Add(ctx, "jti-expired", 0))
	ok, err = bl.Contains(ctx, "jti-expired")
	require.NoError(t, err)
	require.False(t, ok)
}
