//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront-cart/cmd/bootstrap"
	"storefront-cart/cmd/bootstrap/components"
	"storefront-cart/internal/infra/db"
	"storefront-cart/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container
	redisContainerOnce    sync.Once
	redisTestContainer    testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, driver string) config.Config {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.Storage.Driver = driver

	switch driver {
	case "postgres":
		startPostgreSQLContainerOnce(t)
		info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
		require.NoError(t, err, "PostgreSQLコンテナ情報の取得に失敗")
		cfg.DB = prepareDatabase(t, info)
	case "redis":
		startRedisContainerOnce(t)
		info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
		require.NoError(t, err, "Redisコンテナ情報の取得に失敗")
		cfg.Redis = config.RedisConfig{Addr: info.Host + ":" + info.Port.Port()}
	default:
		require.FailNow(t, "unknown e2e storage driver", driver)
	}

	slog.Info("E2E環境の準備が完了しました", "driver", driver)
	return cfg
}

// ------------------------------------------------------------
// データベース準備関数
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) config.DBConfig {
	// プロセス毎に違うデータベース名を生成
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			// 指数バックオフ
			time.Sleep(min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second))
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempts+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
	require.NoError(t, applyMigrations(t, dbConfig), "データベースマイグレーションに失敗")
	return dbConfig
}

func applyMigrations(t *testing.T, dbConfig config.DBConfig) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	pool, cleanup, err := db.Connect(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer cleanup()

	// Resolve the migrations dir relative to possible working dirs (package dirs during `go test`).
	var files []string
	for _, dir := range []string{"migrations", "../migrations", "../../migrations", "../../../migrations"} {
		files, _ = filepath.Glob(filepath.Join(dir, "*.sql"))
		if len(files) > 0 {
			break
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found")
	}

	for _, file := range files {
		sqlContent, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
		slog.Info("マイグレーション実行完了", "file", file)
	}
	return nil
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns router and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, cfg config.Config) *gin.Engine {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StorageModule,
		bootstrap.EventsModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗しました")
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// ------------------------------------------------------------
// コンテナ起動の共通関数
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func terminateOnCleanup(t *testing.T, name string, c testcontainers.Container) {
	t.Cleanup(func() {
		if c == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Terminate(ctx); err != nil {
			slog.Warn("コンテナの終了に失敗しました", "container", name, "error", err.Error())
		}
	})
}

// ------------------------------------------------------------
// PostgreSQLコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m", // データをRAMに載せてI/O削減
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off", // 耐久性よりパフォーマンスを優先
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
		terminateOnCleanup(t, "postgres", postgresTestContainer)
	})
}

// ------------------------------------------------------------
// Redisコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "Redisコンテナの起動に失敗")
		terminateOnCleanup(t, "redis", redisTestContainer)
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Driver string
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Config = setupE2EEnvironment(s.T(), s.Driver)
	s.Router = buildE2EApp(s.T(), s.Config)
}

// Restart boots a second process against the same backend; carts must come back from snapshots.
func (s *SharedSuite) Restart() *gin.Engine {
	return buildE2EApp(s.T(), s.Config)
}

// NewOwner isolates each subtest; in-process stores outlive any backend reset.
func (s *SharedSuite) NewOwner() string {
	return "e2e-" + uuid.NewString()
}

func (s *SharedSuite) SnapshotKey(owner string) string {
	return s.Config.Cart.StorageKey + ":" + owner
}

// RawSnapshot reads the persisted entry straight from the backend; ok is false when absent.
func (s *SharedSuite) RawSnapshot(owner string) (raw string, ok bool) {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch s.Driver {
	case "postgres":
		pool, cleanup, err := db.Connect(ctx, s.Config.DB)
		require.NoError(t, err)
		defer cleanup()
		var value string
		err = pool.QueryRow(ctx, "SELECT value::text FROM cart_snapshots WHERE key = $1", s.SnapshotKey(owner)).Scan(&value)
		if err != nil {
			return "", false
		}
		return value, true
	default:
		client := redis.NewClient(&redis.Options{Addr: s.Config.Redis.Addr})
		defer client.Close()
		value, err := client.Get(ctx, s.SnapshotKey(owner)).Result()
		if err != nil {
			require.ErrorIs(t, err, redis.Nil)
			return "", false
		}
		return value, true
	}
}
