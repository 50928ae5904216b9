package server_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/bearaujus/bptr"
	"github.com/go-playground/validator/v10"
	"github.com/mcuadros/go-defaults"
	"github.com/stretchr/testify/suite"

	"github.com/goto/engagement/core/engagement"
	"github.com/goto/engagement/domain"
	"github.com/goto/engagement/internal/server"
	"github.com/goto/engagement/internal/store"
	"github.com/goto/engagement/pkg/log"
)

type ServicesTestSuite struct {
	suite.Suite
}

func TestServices(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}

func memoryConfig() *server.Config {
	var cfg server.Config
	defaults.SetDefaults(&cfg)
	cfg.DB.Driver = store.StorageDriverMemory
	cfg.Counter.Driver = store.CounterDriverMemory
	return &cfg
}

func (s *ServicesTestSuite) initServices(cfg *server.Config) (*server.Services, error) {
	return server.InitServices(context.Background(), server.ServiceDeps{
		Config:    cfg,
		Logger:    log.NewNoop(),
		Validator: validator.New(),
	})
}

func (s *ServicesTestSuite) TestInitServices() {
	s.Run("should reject invalid config", func() {
		cfg := memoryConfig()
		cfg.Counter.Driver = "etcd"

		_, err := s.initServices(cfg)

		s.Error(err)
	})

	s.Run("should require postgres storage for postgres counters", func() {
		cfg := memoryConfig()
		cfg.Counter.Driver = store.CounterDriverPostgres

		_, err := s.initServices(cfg)

		s.ErrorContains(err, "requires the postgres storage driver")
	})

	s.Run("should reject invalid hold expression", func() {
		cfg := memoryConfig()
		cfg.Comment.HoldExpression = "content +"

		_, err := s.initServices(cfg)

		s.Error(err)
	})

	s.Run("should wire memory storage end to end", func() {
		services, err := s.initServices(memoryConfig())
		s.Require().NoError(err)
		defer services.Close()
		s.Nil(services.EventService)

		ctx := context.Background()
		actor := domain.Actor{ID: "user-1", CanView: true}
		policy := domain.TargetPolicy{CommentsEnabled: true, ReactionsEnabled: true}

		root, err := services.EngagementService.CreateComment(ctx, actor, policy, engagement.CreateCommentInput{PostID: "post-1", Content: "root"})
		s.Require().NoError(err)
		_, err = services.EngagementService.CreateComment(ctx, actor, policy, engagement.CreateCommentInput{PostID: "post-1", ParentID: bptr.FromString(root.ID), Content: "reply"})
		s.Require().NoError(err)
		result, err := services.EngagementService.React(ctx, actor, policy, domain.ReactionTarget{ID: root.ID, Type: domain.TargetTypeComment}, domain.ReactionTypeLike)
		s.Require().NoError(err)
		s.Equal(domain.ReactionActionAdded, result.Action)

		thread, err := services.CommentService.GetThread(ctx, root.ID)
		s.Require().NoError(err)
		s.Len(thread, 2)
		s.Equal(int64(1), thread[0].RepliesCount)
		s.Equal(int64(1), thread[0].LikesCount)
	})

	s.Run("should keep counters in redis", func() {
		mr := miniredis.RunT(s.T())
		cfg := memoryConfig()
		cfg.Counter.Driver = store.CounterDriverRedis
		cfg.Counter.RedisURL = "redis://" + mr.Addr()

		services, err := s.initServices(cfg)
		s.Require().NoError(err)
		defer services.Close()

		ctx := context.Background()
		key := domain.CommentsCountKey("post-1")
		value, err := services.CounterService.Increment(ctx, key, 2)
		s.NoError(err)
		s.Equal(int64(2), value)
		mr.CheckGet(s.T(), "counter:"+key.String(), "2")
	})

	s.Run("should fail on unreachable redis", func() {
		cfg := memoryConfig()
		cfg.Counter.Driver = store.CounterDriverRedis
		cfg.Counter.RedisURL = "redis://127.0.0.1:1"

		_, err := s.initServices(cfg)

		s.Error(err)
	})
}

func (s *ServicesTestSuite) TestLoadConfig() {
	s.Run("should read values and fill defaults", func() {
		configFile := filepath.Join(s.T().TempDir(), "config.yaml")
		s.Require().NoError(os.WriteFile(configFile, []byte(`
log_level: debug
db:
  driver: memory
counter:
  driver: memory
reaction:
  report_cache_ttl: 30s
jobs:
  reconcile_counters:
    config:
      dry_run: true
`), 0o600))

		cfg, err := server.LoadConfig(configFile)

		s.Require().NoError(err)
		s.Equal("debug", cfg.LogLevel)
		s.Equal(store.StorageDriverMemory, cfg.DB.Driver)
		s.Equal(5, cfg.Comment.MaxDepth)
		s.Equal("30s", cfg.Reaction.ReportCacheTTL.String())
		s.Equal(true, cfg.Jobs["reconcile_counters"].Config["dry_run"])
	})
}
