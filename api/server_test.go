package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sprintertech/across-relayer/api"
	"github.com/sprintertech/across-relayer/api/handlers"
	"github.com/sprintertech/across-relayer/chains/evm"
)

type RouterTestSuite struct {
	suite.Suite

	server *httptest.Server
}

func TestRunRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	table, err := evm.NewChainTable(nil, nil)
	s.Nil(err)

	s.server = httptest.NewServer(api.NewRouter(
		handlers.NewConfirmationsHandler(map[uint64]map[string]uint64{
			10: {"0": 1},
		}),
		handlers.NewTokensHandler(table),
	))
}

func (s *RouterTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *RouterTestSuite) Test_Health() {
	resp, err := http.Get(s.server.URL + "/health")
	s.Nil(err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", string(body))
}

func (s *RouterTestSuite) Test_Confirmations() {
	resp, err := http.Get(s.server.URL + "/v1/chains/10/confirmations")
	s.Nil(err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("{\"0\":1}", string(body))
}

func (s *RouterTestSuite) Test_UnknownRoute() {
	resp, err := http.Get(s.server.URL + "/v1/chains/10/signatures")
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *RouterTestSuite) Test_MethodNotAllowed() {
	resp, err := http.Post(s.server.URL+"/v1/chains/10/confirmations", "application/json", nil)
	s.Nil(err)
	defer resp.Body.Close()

	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}
