package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-relayer/cache"
)

type DepositCacheTestSuite struct {
	suite.Suite

	dc     *cache.DepositCache
	cancel context.CancelFunc
}

func TestRunDepositCacheTestSuite(t *testing.T) {
	suite.Run(t, new(DepositCacheTestSuite))
}

func (s *DepositCacheTestSuite) SetupTest() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.dc = cache.NewDepositCache(ctx, time.Millisecond*100)
}

func (s *DepositCacheTestSuite) TearDownTest() {
	s.cancel()
}

func (s *DepositCacheTestSuite) Test_Seen_FirstTime() {
	s.False(s.dc.Seen("10-1"))
	s.Equal(1, s.dc.Len())
}

func (s *DepositCacheTestSuite) Test_Seen_Duplicate() {
	s.False(s.dc.Seen("10-1"))
	s.True(s.dc.Seen("10-1"))
	s.False(s.dc.Seen("8453-1"))
}

func (s *DepositCacheTestSuite) Test_Seen_Expired() {
	s.False(s.dc.Seen("10-1"))

	time.Sleep(time.Millisecond * 300)

	s.False(s.dc.Seen("10-1"))
}
