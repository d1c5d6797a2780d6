package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/you-humble/shape-shop/internal/classifier/onnx"
	"github.com/you-humble/shape-shop/internal/config"
	"github.com/you-humble/shape-shop/internal/converter"
	cartrepo "github.com/you-humble/shape-shop/internal/repository/cart"
	catalogrepo "github.com/you-humble/shape-shop/internal/repository/catalog"
	predictionrepo "github.com/you-humble/shape-shop/internal/repository/prediction"
	purchaserepo "github.com/you-humble/shape-shop/internal/repository/purchase"
	userrepo "github.com/you-humble/shape-shop/internal/repository/user"
	cartsvc "github.com/you-humble/shape-shop/internal/service/cart"
	catalogsvc "github.com/you-humble/shape-shop/internal/service/catalog"
	checkoutconsumer "github.com/you-humble/shape-shop/internal/service/consumer/checkout"
	predictionsvc "github.com/you-humble/shape-shop/internal/service/prediction"
	checkoutproducer "github.com/you-humble/shape-shop/internal/service/producer/checkout"
	purchasesvc "github.com/you-humble/shape-shop/internal/service/purchase"
	sessionsvc "github.com/you-humble/shape-shop/internal/service/session"
	usersvc "github.com/you-humble/shape-shop/internal/service/user"
	"github.com/you-humble/shape-shop/internal/transport/http/middleware"
	thttp "github.com/you-humble/shape-shop/internal/transport/http/shop/v1"
	"github.com/you-humble/shape-shop/platform/closer"
	"github.com/you-humble/shape-shop/platform/db/migrator"
	"github.com/you-humble/shape-shop/platform/kafka"
	"github.com/you-humble/shape-shop/platform/kafka/consumer"
	kafkamw "github.com/you-humble/shape-shop/platform/kafka/middleware"
	"github.com/you-humble/shape-shop/platform/kafka/producer"
	"github.com/you-humble/shape-shop/platform/logger"
)

type SessionManager interface {
	usersvc.SessionIssuer
	middleware.TokenParser
}

type Converter interface {
	checkoutproducer.Converter
	checkoutconsumer.CheckoutCompletedDecoder
}

type PurchaseService interface {
	thttp.PurchaseService
	checkoutconsumer.PurchaseRecorder
}

type CheckoutCompletedConsumer interface {
	RunCheckoutCompletedConsume(ctx context.Context) error
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	classifier *onnx.Classifier

	predictionRepo predictionsvc.PredictionRepository
	catalogRepo    catalogsvc.CatalogRepository
	cartRepo       cartsvc.CartRepository
	userRepo       usersvc.UserRepository
	purchaseRepo   purchasesvc.PurchaseRepository

	syncProducer     sarama.SyncProducer
	checkoutProducer kafka.Producer
	checkoutSender   cartsvc.CheckoutSender
	kafkaConverter   Converter

	checkoutConsumerGroup     sarama.ConsumerGroup
	checkoutKafkaConsumer     kafka.Consumer
	checkoutCompletedConsumer CheckoutCompletedConsumer

	sessions SessionManager

	predictionService thttp.PredictionService
	catalogService    thttp.CatalogService
	cartService       thttp.CartService
	userService       thttp.UserService
	purchaseService   PurchaseService

	handler http.Handler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		poolCfg, err := pgxpool.ParseConfig(config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to parse pg dsn: %v\n", err))
		}
		poolCfg.MaxConns = config.C().Postgres.MaxConns()

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		m, err := migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create migrator: %v\n", err))
		}
		d.migrator = m

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

// Classifier loads the model once. The app refuses to start on a missing or
// incompatible artifact.
func (d *di) Classifier(_ context.Context) (*onnx.Classifier, error) {
	if d.classifier == nil {
		cfg := config.C().Model

		c, err := onnx.New(onnx.Config{
			ModelPath:    cfg.Path(),
			MetadataPath: cfg.MetadataPath(),
			LibraryPath:  cfg.RuntimeLibraryPath(),
		})
		if err != nil {
			return nil, err
		}

		closer.AddNamed("ONNX session",
			func(ctx context.Context) error {
				return c.Close()
			})

		d.classifier = c
	}

	return d.classifier, nil
}

func (d *di) PredictionRepository(ctx context.Context) predictionsvc.PredictionRepository {
	if d.predictionRepo == nil {
		d.predictionRepo = predictionrepo.NewPredictionRepository(d.DBPool(ctx))
	}

	return d.predictionRepo
}

func (d *di) CatalogRepository(ctx context.Context) catalogsvc.CatalogRepository {
	if d.catalogRepo == nil {
		d.catalogRepo = catalogrepo.NewCatalogRepository(d.DBPool(ctx))
	}

	return d.catalogRepo
}

func (d *di) CartRepository(ctx context.Context) cartsvc.CartRepository {
	if d.cartRepo == nil {
		d.cartRepo = cartrepo.NewCartRepository(d.DBPool(ctx))
	}

	return d.cartRepo
}

func (d *di) UserRepository(ctx context.Context) usersvc.UserRepository {
	if d.userRepo == nil {
		d.userRepo = userrepo.NewUserRepository(d.DBPool(ctx))
	}

	return d.userRepo
}

func (d *di) PurchaseRepository(ctx context.Context) purchasesvc.PurchaseRepository {
	if d.purchaseRepo == nil {
		d.purchaseRepo = purchaserepo.NewPurchaseRepository(d.DBPool(ctx))
	}

	return d.purchaseRepo
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.CheckoutCompletedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

// CheckoutProducer is a no-op when no brokers are configured.
func (d *di) CheckoutProducer(ctx context.Context) kafka.Producer {
	if d.checkoutProducer == nil {
		if !config.C().Kafka.Enabled() {
			logger.Warn(ctx, "kafka disabled, checkout events are dropped")
			d.checkoutProducer = producer.NewNopProducer()
			return d.checkoutProducer
		}

		d.checkoutProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.CheckoutCompletedTopic(),
			logger.L(),
		)
	}

	return d.checkoutProducer
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.kafkaConverter == nil {
		d.kafkaConverter = converter.NewKafkaConverter()
	}

	return d.kafkaConverter
}

func (d *di) CheckoutSender(ctx context.Context) cartsvc.CheckoutSender {
	if d.checkoutSender == nil {
		d.checkoutSender = checkoutproducer.NewCheckoutProducer(
			d.CheckoutProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.checkoutSender
}

func (d *di) CheckoutConsumerGroup(ctx context.Context) sarama.ConsumerGroup {
	if d.checkoutConsumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.CheckoutCompletedConsumerGroupID(),
			cfg.Kafka.CheckoutCompletedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create checkout completed consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka checkout completed consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.checkoutConsumerGroup = consumerGroup
	}

	return d.checkoutConsumerGroup
}

func (d *di) CheckoutKafkaConsumer(ctx context.Context) kafka.Consumer {
	if d.checkoutKafkaConsumer == nil {
		d.checkoutKafkaConsumer = consumer.NewConsumer(
			d.CheckoutConsumerGroup(ctx),
			[]string{
				config.C().Kafka.CheckoutCompletedTopic(),
			},
			logger.L(),
			kafkamw.Recovery(logger.L()),
			kafkamw.RequestID(),
			kafkamw.Logging(logger.L()),
		)
	}

	return d.checkoutKafkaConsumer
}

func (d *di) CheckoutCompletedConsumer(ctx context.Context) CheckoutCompletedConsumer {
	if d.checkoutCompletedConsumer == nil {
		d.checkoutCompletedConsumer = checkoutconsumer.NewCheckoutCompletedConsumer(
			d.CheckoutKafkaConsumer(ctx),
			d.KafkaConverter(ctx),
			d.PurchaseService(ctx),
		)
	}

	return d.checkoutCompletedConsumer
}

func (d *di) Sessions(_ context.Context) SessionManager {
	if d.sessions == nil {
		cfg := config.C().Auth
		d.sessions = sessionsvc.NewSessionManager(cfg.SessionSecret(), cfg.SessionTTL())
	}

	return d.sessions
}

func (d *di) PredictionService(ctx context.Context) (thttp.PredictionService, error) {
	if d.predictionService == nil {
		classifier, err := d.Classifier(ctx)
		if err != nil {
			return nil, err
		}

		cfg := config.C()
		d.predictionService = predictionsvc.NewPredictionService(
			classifier,
			d.PredictionRepository(ctx),
			cfg.Model.ClassifyTimeout(),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.predictionService, nil
}

func (d *di) CatalogService(ctx context.Context) thttp.CatalogService {
	if d.catalogService == nil {
		d.catalogService = catalogsvc.NewCatalogService(
			d.CatalogRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.catalogService
}

func (d *di) CartService(ctx context.Context) thttp.CartService {
	if d.cartService == nil {
		d.cartService = cartsvc.NewCartService(
			d.CartRepository(ctx),
			d.CatalogRepository(ctx),
			d.CheckoutSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.cartService
}

func (d *di) UserService(ctx context.Context) thttp.UserService {
	if d.userService == nil {
		d.userService = usersvc.NewUserService(
			d.UserRepository(ctx),
			d.Sessions(ctx),
			config.C().Auth.AdminEmails(),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.userService
}

func (d *di) PurchaseService(ctx context.Context) PurchaseService {
	if d.purchaseService == nil {
		d.purchaseService = purchasesvc.NewPurchaseService(
			d.PurchaseRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.purchaseService
}

func (d *di) ShopHandler(ctx context.Context) (http.Handler, error) {
	if d.handler == nil {
		predictions, err := d.PredictionService(ctx)
		if err != nil {
			return nil, err
		}

		h := thttp.NewShopHandler(
			predictions,
			d.CatalogService(ctx),
			d.CartService(ctx),
			d.UserService(ctx),
			d.PurchaseService(ctx),
		)

		d.handler = h.Routes(
			middleware.Authenticate(d.Sessions(ctx)),
			httprate.LimitByIP(config.C().Server.PredictRateLimit(), time.Minute),
		)
	}

	return d.handler, nil
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
