//go:build integration

package checkoutconsumer_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/you-humble/shape-shop/internal/converter"
	"github.com/you-humble/shape-shop/internal/model"
	purchaserepo "github.com/you-humble/shape-shop/internal/repository/purchase"
	checkoutconsumer "github.com/you-humble/shape-shop/internal/service/consumer/checkout"
	checkoutproducer "github.com/you-humble/shape-shop/internal/service/producer/checkout"
	purchasesvc "github.com/you-humble/shape-shop/internal/service/purchase"
	"github.com/you-humble/shape-shop/platform/kafka/consumer"
	"github.com/you-humble/shape-shop/platform/kafka/middleware"
	"github.com/you-humble/shape-shop/platform/kafka/producer"
	"github.com/you-humble/shape-shop/platform/logger"
	tckafka "github.com/you-humble/shape-shop/platform/testcontainers/kafka"
	"github.com/you-humble/shape-shop/platform/testcontainers/path"
	tcpostgres "github.com/you-humble/shape-shop/platform/testcontainers/postgres"
)

const topic = "cart.checkout.completed"

type PurchaseService interface {
	checkoutconsumer.PurchaseRecorder
	History(ctx context.Context, userID int64) ([]model.Purchase, error)
}

type CheckoutSender interface {
	SendCheckoutCompleted(ctx context.Context, event model.CheckoutCompleted) error
}

var (
	ctx         context.Context
	stopConsume context.CancelFunc
	consumeDone chan error

	pg *tcpostgres.Container
	kc *tckafka.Container

	syncProducer sarama.SyncProducer
	group        sarama.ConsumerGroup

	sender    CheckoutSender
	purchases PurchaseService
)

func TestLedger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Purchase Ledger Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting postgres and applying migrations")
	var err error
	pg, err = tcpostgres.NewContainer(ctx,
		tcpostgres.WithDatabase("shape_shop", "shop", "shop-pass"),
		tcpostgres.WithMigrations(filepath.Join(path.ProjectRoot(), "migrations")),
	)
	Expect(err).NotTo(HaveOccurred())

	By("starting kafka")
	kc, err = tckafka.NewContainer(ctx, tckafka.WithTopics(topic))
	Expect(err).NotTo(HaveOccurred())

	By("wiring the checkout producer")
	producerCfg := sarama.NewConfig()
	producerCfg.Version = sarama.V4_0_0_0
	producerCfg.Producer.Return.Successes = true
	producerCfg.Producer.RequiredAcks = sarama.WaitForAll

	syncProducer, err = sarama.NewSyncProducer(kc.Brokers(), producerCfg)
	Expect(err).NotTo(HaveOccurred())

	conv := converter.NewKafkaConverter()
	sender = checkoutproducer.NewCheckoutProducer(
		producer.NewProducer(syncProducer, topic, logger.L()),
		conv,
	)

	By("starting the ledger consumer")
	consumerCfg := sarama.NewConfig()
	consumerCfg.Version = sarama.V4_0_0_0
	consumerCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	consumerCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err = sarama.NewConsumerGroup(kc.Brokers(), "shape-shop-purchases-it", consumerCfg)
	Expect(err).NotTo(HaveOccurred())

	purchases = purchasesvc.NewPurchaseService(
		purchaserepo.NewPurchaseRepository(pg.Pool()),
		5*time.Second,
		5*time.Second,
	)

	ledger := checkoutconsumer.NewCheckoutCompletedConsumer(
		consumer.NewConsumer(group, []string{topic}, logger.L(),
			middleware.Recovery(logger.L()),
			middleware.RequestID(),
			middleware.Logging(logger.L()),
		),
		conv,
		purchases,
	)

	var consumeCtx context.Context
	consumeCtx, stopConsume = context.WithCancel(ctx)
	consumeDone = make(chan error, 1)
	go func() {
		consumeDone <- ledger.RunCheckoutCompletedConsume(consumeCtx)
	}()
})

var _ = AfterSuite(func() {
	if stopConsume != nil {
		stopConsume()
		Eventually(consumeDone, 30*time.Second).Should(Receive(BeNil()))
	}
	if group != nil {
		Expect(group.Close()).To(Succeed())
	}
	if syncProducer != nil {
		Expect(syncProducer.Close()).To(Succeed())
	}
	if kc != nil {
		Expect(kc.Terminate(context.Background())).To(Succeed())
	}
	if pg != nil {
		Expect(pg.Terminate(context.Background())).To(Succeed())
	}
})

var _ = Describe("CheckoutCompleted ledger", func() {
	It("records a redelivered checkout once and skips poison messages", func() {
		userID := int64(gofakeit.IntRange(1, 1_000_000))
		event := model.CheckoutCompleted{
			EventID:       uuid.New(),
			UserID:        userID,
			TransactionID: uuid.New(),
			Total:         decimal.RequireFromString("59.97"),
			LineCount:     1,
			Units:         3,
		}

		By("publishing garbage first")
		_, _, err := syncProducer.SendMessage(&sarama.ProducerMessage{
			Topic: topic,
			Value: sarama.ByteEncoder([]byte{0xff, 0xff, 0xff}),
		})
		Expect(err).NotTo(HaveOccurred())

		By("publishing the same event twice")
		Expect(sender.SendCheckoutCompleted(ctx, event)).To(Succeed())
		Expect(sender.SendCheckoutCompleted(ctx, event)).To(Succeed())

		Eventually(func(g Gomega) {
			history, err := purchases.History(ctx, userID)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(history).To(HaveLen(1))
			g.Expect(history[0].EventID).To(Equal(event.EventID))
			g.Expect(history[0].Total.StringFixed(2)).To(Equal("59.97"))
		}, 60*time.Second, 500*time.Millisecond).Should(Succeed())

		Consistently(func() int {
			history, _ := purchases.History(ctx, userID)
			return len(history)
		}, 3*time.Second, 500*time.Millisecond).Should(Equal(1))
	})
})
