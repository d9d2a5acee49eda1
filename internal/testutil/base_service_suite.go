package testutil

import (
	"context"

	"github.com/billinglens/billinglens/internal/config"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/schema"
	"github.com/billinglens/billinglens/internal/validator"
	"github.com/stretchr/testify/suite"
)

// BaseServiceSuite provides common setup for service tests: a default
// config, a logger, the schema adapter and an in-memory upstream store.
type BaseServiceSuite struct {
	suite.Suite
	ctx      context.Context
	cfg      *config.Configuration
	logger   *logger.Logger
	adapter  *schema.Adapter
	upstream *InMemoryUpstream
}

// SetupSuite initializes the test environment
func (s *BaseServiceSuite) SetupSuite() {
	validator.NewValidator()
	s.cfg = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
	s.logger = log
	s.adapter = schema.NewAdapter(log)
}

// SetupTest prepares fresh state for each test
func (s *BaseServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.upstream = NewInMemoryUpstream()
}

func (s *BaseServiceSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceSuite) GetAdapter() *schema.Adapter {
	return s.adapter
}

func (s *BaseServiceSuite) GetUpstream() *InMemoryUpstream {
	return s.upstream
}
