package testutil

import (
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/ruival/obracap/internal/adapter/http"
	"github.com/ruival/obracap/internal/adapter/http/handler"
	"github.com/ruival/obracap/internal/adapter/repository/memory"
	redisrepo "github.com/ruival/obracap/internal/adapter/repository/redis"
	"github.com/ruival/obracap/internal/usecase"
)

// TestServer wires the full HTTP stack over in-memory storage and an
// embedded redis. Each test gets an isolated instance.
type TestServer struct {
	Server  *httptest.Server
	Store   *memory.Store
	Redis   *miniredis.Miniredis
	Payroll *memory.PayrollDirectory
	Supply  *memory.SupplyDirectory
}

// TestServerConfig tweaks optional pieces of the wiring.
type TestServerConfig struct {
	ProjectNames map[string]string
}

// NewTestServer builds a TestServer and registers cleanup with t.
func NewTestServer(t *testing.T, cfg TestServerConfig) *TestServer {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	store := memory.NewStore()
	projects := memory.NewProjectDirectory(cfg.ProjectNames)
	payroll := memory.NewPayrollDirectory()
	supply := memory.NewSupplyDirectory()

	cache := redisrepo.NewCache(redisClient)
	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)

	logger := zerolog.Nop()
	registrarUC := usecase.NewRegistrarUseCase(store, store, &seqIDGenerator{}, nil, cache, nil, nil, logger)
	queryUC := usecase.NewQueryUseCase(store, projects, cache, nil, logger)
	resolverUC := usecase.NewReferenceResolver(payroll, supply, nil, logger)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		MovementHandler:  handler.NewMovementHandler(registrarUC, queryUC, resolverUC),
		SummaryHandler:   handler.NewSummaryHandler(queryUC),
		HealthHandler:    handler.NewHealthHandler(nil, nil),
		IdempotencyStore: idempotencyStore,
		Logger:           logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &TestServer{
		Server:  srv,
		Store:   store,
		Redis:   mr,
		Payroll: payroll,
		Supply:  supply,
	}
}

// seqIDGenerator yields fixed-width increasing ids so insertion order and
// lexicographic order agree, like ULIDs generated in sequence.
type seqIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%08d", g.n)
}
