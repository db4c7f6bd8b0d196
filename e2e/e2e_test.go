package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/soukwatch/pricetracker/cmd/tracker/config"
	"github.com/soukwatch/pricetracker/e2e/helpers"
	"github.com/soukwatch/pricetracker/internal/detector"
	"github.com/soukwatch/pricetracker/internal/handler"
	"github.com/soukwatch/pricetracker/internal/normalizer"
	"github.com/soukwatch/pricetracker/internal/platform/models"
	"github.com/soukwatch/pricetracker/internal/platform/rabbitmq"
	"github.com/soukwatch/pricetracker/internal/platform/storage"
	"github.com/soukwatch/pricetracker/internal/platform/storage/storagetesting"
	"github.com/soukwatch/pricetracker/internal/tracker"
	"github.com/soukwatch/pricetracker/pkg/v1/commander"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	exchange = "pt-e2e"
	source   = "jumia.ma"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	cfg        *config.Config
	connection *amqp.Connection
	channel    *amqp.Channel
	db         *sql.DB
}

func (s *E2ETestSuite) SetupSuite() {
	var err error

	var cfg config.Config
	if err = env.Parse(&cfg); err != nil {
		s.Require().FailNow("can't parse env variables", err)
	}
	s.cfg = &cfg

	if s.connection, err = amqp.Dial(cfg.RabbitMQ.URL); err != nil {
		s.Require().FailNow("can't open RabbitMQ connection", err)
	}

	if s.channel, err = s.connection.Channel(); err != nil {
		s.Require().FailNow("can't open RabbitMQ channel", err)
	}

	helpers.DeclareRMQExchange(s.T(), s.channel, exchange)

	if s.db, err = sql.Open("postgres", cfg.DatabaseURL); err != nil {
		s.Require().FailNow("can't open Postgres connection", err)
	}
}

func (s *E2ETestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.db)
	if err := s.db.Close(); err != nil {
		s.FailNow("can't close Postgres connection", err)
	}

	if err := s.channel.Close(); err != nil {
		s.FailNow("can't close RabbitMQ channel", err)
	}

	if err := s.connection.Close(); err != nil {
		s.FailNow("can't close RabbitMQ connection", err)
	}
}

func (s *E2ETestSuite) TestPriceTracking() {
	ctx, cancel := context.WithCancel(context.Background())

	// Prepare test RMQ queue
	queue := fmt.Sprintf("pt-e2e-test-%d", rand.Int63n(100000))
	routingKey := fmt.Sprintf("pt.cmd.e2e.%d", rand.Int63n(100000))
	helpers.DeclareRMQQueue(s.T(), s.channel, queue, exchange, routingKey)

	// Prepare tracker
	store := storage.NewPostgres(s.db)
	tra := tracker.NewTracker(
		normalizer.NewNormalizer(),
		detector.NewDetector(store),
		store,
		lo.ToPtr(zerolog.Nop()),
	)

	// Prepare RMQ client and commander
	rmq, err := rabbitmq.NewRabbitMQ(s.connection, exchange)
	if err != nil {
		s.Require().FailNow("can't create RabbitMQ client", err)
	}
	publisher := commander.NewSaveCommander(commander.NewRabbitMQSender(rmq, routingKey))

	// Prepare test logger
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	// Prepare and run handler
	han := handler.NewHandler(rmq, tra, &logger)
	handlerErr := han.Start(ctx, queue)
	s.Require().NoError(handlerErr, "handler shouldn't return any error")

	// First batch introduces two products
	firstBatch := []normalizer.Record{
		{
			ProductID: "SKU-1",
			Name:      lo.ToPtr("Galaxy A15"),
			Brand:     lo.ToPtr("Samsung"),
			Category:  lo.ToPtr("Smartphones"),
			Price:     normalizer.FlexPriceOf(199),
		},
		{
			ProductID: "SKU-2",
			Name:      lo.ToPtr("Redmi Note 13"),
			Brand:     lo.ToPtr("Xiaomi"),
			Category:  lo.ToPtr("Smartphones"),
			Price:     normalizer.FlexPriceOf(299),
		},
	}

	if err := publisher.SendSaveCommand(ctx, source, helpers.RecordsToRaw(s.T(), firstBatch)); err != nil {
		s.Require().FailNow("can't publish save command", err)
	}

	helpers.WaitForSnapshots(s.T(), s.db, 2)
	helpers.WaitForChanges(s.T(), s.db, 2)

	products := storagetesting.GetProducts(s.T(), s.db)
	s.Require().Len(products, 2, "should create both products")
	s.Equal("SKU-1", products[0].ProductID, "should keep the scraped product ID")
	s.Equal(int32(1), products[0].PriceHistoryCount, "first batch should count one snapshot")

	changes := storagetesting.GetChanges(s.T(), s.db)
	s.Require().Len(changes, 2, "both products should be recorded as new")
	s.Equal(string(models.ChangeNewProduct), changes[0].ChangeType, "first sighting should be a new product change")
	s.Equal(string(models.ChangeNewProduct), changes[1].ChangeType, "first sighting should be a new product change")

	// Second batch drops SKU-1's price, SKU-2 stays unchanged
	secondBatch := []normalizer.Record{
		{
			ProductID: "SKU-1",
			Price:     normalizer.FlexPriceOf(149),
		},
		{
			ProductID: "SKU-2",
			Price:     normalizer.FlexPriceOf(299),
		},
	}

	if err := publisher.SendSaveCommand(ctx, source, helpers.RecordsToRaw(s.T(), secondBatch)); err != nil {
		s.Require().FailNow("can't publish save command", err)
	}

	helpers.WaitForSnapshots(s.T(), s.db, 4)
	helpers.WaitForChanges(s.T(), s.db, 3)

	// Cancel context to stop consumer
	cancel()

	// Check results
	logs := strings.Split(buf.String(), "\n")
	logs = lo.Filter(logs, func(log string, _ int) bool { return strings.TrimSpace(log) != "" })
	assertLogsMessages(s.T(), []string{
		"saving batch started", "saving batch finished",
		"saving batch started", "saving batch finished",
	}, logs)

	product := storagetesting.GetProduct(s.T(), s.db, "SKU-1", source)
	s.Require().NotNil(product, "product should still exist")
	s.Equal(lo.ToPtr("Galaxy A15"), product.Name, "missing fields shouldn't blank stored values")
	s.Equal(int32(2), product.PriceHistoryCount, "aggregates should count both snapshots")
	s.Require().NotNil(product.LastPrice, "last price should be set")
	s.InDelta(149, *product.LastPrice, 0.0001, "last price should follow the newest snapshot")
	s.Require().NotNil(product.MinPrice, "min price should be set")
	s.InDelta(149, *product.MinPrice, 0.0001, "min price should be the drop")
	s.Require().NotNil(product.MaxPrice, "max price should be set")
	s.InDelta(199, *product.MaxPrice, 0.0001, "max price should be the launch price")
	s.Require().NotNil(product.AvgPrice, "avg price should be set")
	s.InDelta(174, *product.AvgPrice, 0.0001, "avg price should fold in both snapshots")

	changes = storagetesting.GetChanges(s.T(), s.db)
	s.Require().Len(changes, 3, "unchanged price shouldn't produce a change")
	drop := changes[2]
	s.Equal("SKU-1", drop.ProductID, "change should reference the dropped product")
	s.Equal(string(models.ChangeDecrease), drop.ChangeType, "price drop should be a decrease")
	s.Equal(string(models.SignificanceHigh), drop.Significance, "25% drop should be highly significant")
	s.InDelta(-50, drop.PriceDifference, 0.0001, "should record the absolute difference")
	s.InDelta(-25.1256, drop.PercentageChange, 0.001, "should record the relative difference")
}

// assertLogsMessages is helper function which unmarshals log json and asserts message.
func assertLogsMessages(t *testing.T, expected []string, actual []string) {
	t.Helper()

	require.Len(t, actual, len(expected), "incorrect number of logs")

	for ix, exp := range expected {
		var log struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(actual[ix]), &log); err != nil {
			require.FailNow(t, "can't unmarshal json log", err)
		}

		assert.Equalf(t, exp, log.Message, "log at index %d is incorrect", ix)
	}
}
