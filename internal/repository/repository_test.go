//go:build integration

package repository_test

import (
	"context"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/you-humble/shape-shop/internal/model"
	cartrepo "github.com/you-humble/shape-shop/internal/repository/cart"
	catalogrepo "github.com/you-humble/shape-shop/internal/repository/catalog"
	predictionrepo "github.com/you-humble/shape-shop/internal/repository/prediction"
	purchaserepo "github.com/you-humble/shape-shop/internal/repository/purchase"
	userrepo "github.com/you-humble/shape-shop/internal/repository/user"
)

var _ = Describe("UserRepository", func() {
	It("creates users and rejects duplicate emails", func() {
		c, cancel := withTimeout()
		defer cancel()

		repo := userrepo.NewUserRepository(pg.Pool())
		u := newUser()

		id, err := repo.Create(c, u)
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(BeNumerically(">", 0))

		got, err := repo.UserByEmail(c, u.Email)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ID).To(Equal(id))
		Expect(got.PasswordHash).To(Equal(u.PasswordHash))

		_, err = repo.Create(c, &model.User{Email: u.Email, PasswordHash: []byte("x")})
		Expect(err).To(MatchError(model.ErrUserExists))

		_, err = repo.UserByEmail(c, "nobody@shop.test")
		Expect(err).To(MatchError(model.ErrUserNotFound))
	})
})

var _ = Describe("CatalogRepository", func() {
	It("serves seeded items for every shape", func() {
		c, cancel := withTimeout()
		defer cancel()

		repo := catalogrepo.NewCatalogRepository(pg.Pool())
		for _, shape := range model.Shapes() {
			items, err := repo.List(c, model.CatalogFilter{Shapes: []model.Shape{shape}})
			Expect(err).NotTo(HaveOccurred())
			Expect(items).NotTo(BeEmpty(), shape.String())
			for _, it := range items {
				Expect(it.Shape).To(Equal(shape))
			}
		}
	})

	It("creates, updates and deletes an item", func() {
		c, cancel := withTimeout()
		defer cancel()

		repo := catalogrepo.NewCatalogRepository(pg.Pool())
		item := &model.CatalogItem{
			Shape: model.ShapePear,
			Name:  "A-line skirt",
			Image: "/static/a-line.jpg",
			Price: decimal.RequireFromString("19.99"),
		}

		id, err := repo.Create(c, item)
		Expect(err).NotTo(HaveOccurred())

		got, err := repo.ItemByID(c, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Price.StringFixed(2)).To(Equal("19.99"))

		item.Price = decimal.RequireFromString("24.50")
		Expect(repo.Update(c, item)).To(Succeed())

		got, err = repo.ItemByID(c, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Price.StringFixed(2)).To(Equal("24.50"))

		Expect(repo.Delete(c, id)).To(Succeed())
		Expect(repo.Delete(c, id)).To(MatchError(model.ErrItemNotFound))

		_, err = repo.ItemByID(c, id)
		Expect(err).To(MatchError(model.ErrItemNotFound))
	})
})

var _ = Describe("CartRepository", func() {
	var (
		userID int64
		item   *model.CatalogItem
		repo   interface {
			AddOne(c context.Context, userID, itemID int64) (int64, error)
		}
	)

	BeforeEach(func() {
		c, cancel := withTimeout()
		defer cancel()

		var err error
		userID, err = userrepo.NewUserRepository(pg.Pool()).Create(c, newUser())
		Expect(err).NotTo(HaveOccurred())

		item = &model.CatalogItem{
			Shape: model.ShapeHourglass,
			Name:  "Wrap dress",
			Image: "/static/wrap.jpg",
			Price: decimal.RequireFromString("19.99"),
		}
		_, err = catalogrepo.NewCatalogRepository(pg.Pool()).Create(c, item)
		Expect(err).NotTo(HaveOccurred())

		repo = cartrepo.NewCartRepository(pg.Pool())
	})

	It("increments quantity and totals the cart", func() {
		c, cancel := withTimeout()
		defer cancel()

		carts := cartrepo.NewCartRepository(pg.Pool())
		for want := int64(1); want <= 3; want++ {
			qty, err := carts.AddOne(c, userID, item.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(qty).To(Equal(want))
		}

		lines, err := carts.Lines(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(HaveLen(1))
		Expect(model.NewCart(userID, lines).Total.StringFixed(2)).To(Equal("59.97"))
	})

	It("does not lose concurrent adds", func() {
		c, cancel := withTimeout()
		defer cancel()

		const n = 20
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				_, err := repo.AddOne(c, userID, item.ID)
				Expect(err).NotTo(HaveOccurred())
			}()
		}
		wg.Wait()

		lines, err := cartrepo.NewCartRepository(pg.Pool()).Lines(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(HaveLen(1))
		Expect(lines[0].Quantity).To(Equal(int64(n)))
	})

	It("rejects unknown items", func() {
		c, cancel := withTimeout()
		defer cancel()

		_, err := repo.AddOne(c, userID, 987654321)
		Expect(err).To(MatchError(model.ErrItemNotFound))
	})

	It("removes only existing lines", func() {
		c, cancel := withTimeout()
		defer cancel()

		carts := cartrepo.NewCartRepository(pg.Pool())
		_, err := carts.AddOne(c, userID, item.ID)
		Expect(err).NotTo(HaveOccurred())

		Expect(carts.Remove(c, userID, item.ID)).To(Succeed())
		Expect(carts.Remove(c, userID, item.ID)).To(MatchError(model.ErrItemNotFound))
	})

	It("clears the cart atomically and returns the lines", func() {
		c, cancel := withTimeout()
		defer cancel()

		carts := cartrepo.NewCartRepository(pg.Pool())
		_, err := carts.AddOne(c, userID, item.ID)
		Expect(err).NotTo(HaveOccurred())
		_, err = carts.AddOne(c, userID, item.ID)
		Expect(err).NotTo(HaveOccurred())

		cleared, err := carts.Clear(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(cleared).To(HaveLen(1))
		Expect(cleared[0].Quantity).To(Equal(int64(2)))
		Expect(cleared[0].Item.Price.StringFixed(2)).To(Equal("19.99"))

		again, err := carts.Clear(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(BeEmpty())
	})

	It("clears only the given user's cart", func() {
		c, cancel := withTimeout()
		defer cancel()

		otherID, err := userrepo.NewUserRepository(pg.Pool()).Create(c, newUser())
		Expect(err).NotTo(HaveOccurred())

		carts := cartrepo.NewCartRepository(pg.Pool())
		_, err = carts.AddOne(c, userID, item.ID)
		Expect(err).NotTo(HaveOccurred())
		for range 2 {
			_, err = carts.AddOne(c, otherID, item.ID)
			Expect(err).NotTo(HaveOccurred())
		}

		before, err := carts.Lines(c, otherID)
		Expect(err).NotTo(HaveOccurred())

		cleared, err := carts.Clear(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(cleared).To(HaveLen(1))

		after, err := carts.Lines(c, otherID)
		Expect(err).NotTo(HaveOccurred())
		Expect(after).To(HaveLen(1))
		Expect(after[0].UserID).To(Equal(otherID))
		Expect(after[0].Quantity).To(Equal(int64(2)))
		Expect(after).To(Equal(before))

		mine, err := carts.Lines(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(mine).To(BeEmpty())
	})

	It("drops lines of a deleted catalog item", func() {
		c, cancel := withTimeout()
		defer cancel()

		carts := cartrepo.NewCartRepository(pg.Pool())
		_, err := carts.AddOne(c, userID, item.ID)
		Expect(err).NotTo(HaveOccurred())

		Expect(catalogrepo.NewCatalogRepository(pg.Pool()).Delete(c, item.ID)).To(Succeed())

		lines, err := carts.Lines(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(BeEmpty())
	})
})

var _ = Describe("PredictionRepository", func() {
	It("stores predictions per user", func() {
		c, cancel := withTimeout()
		defer cancel()

		userID, err := userrepo.NewUserRepository(pg.Pool()).Create(c, newUser())
		Expect(err).NotTo(HaveOccurred())

		repo := predictionrepo.NewPredictionRepository(pg.Pool())
		p := &model.Prediction{
			UserID: userID,
			Measurements: model.Measurements{
				DressSize: 38, Breasts: 92.5, Waist: 64, Hips: 95.25, Shoe: 39, Height: 168, Weight: 60.75,
			},
			Shape: model.ShapeHourglass,
		}

		id, err := repo.Create(c, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(BeNumerically(">", 0))

		history, err := repo.ListByUser(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(history).To(HaveLen(1))
		Expect(history[0].Shape).To(Equal(model.ShapeHourglass))
		Expect(history[0].Measurements).To(Equal(p.Measurements))
		Expect(history[0].CreatedAt).NotTo(BeZero())
	})
})

var _ = Describe("PurchaseRepository", func() {
	It("records each event once", func() {
		c, cancel := withTimeout()
		defer cancel()

		repo := purchaserepo.NewPurchaseRepository(pg.Pool())
		userID := int64(gofakeit.IntRange(1_000_000, 2_000_000))
		p := &model.Purchase{
			EventID:       uuid.New(),
			UserID:        userID,
			TransactionID: uuid.New(),
			Total:         decimal.RequireFromString("59.97"),
			LineCount:     1,
			Units:         3,
		}

		recorded, err := repo.Record(c, p)
		Expect(err).NotTo(HaveOccurred())
		Expect(recorded).To(BeTrue())
		Expect(p.RecordedAt).NotTo(BeZero())

		again := *p
		recorded, err = repo.Record(c, &again)
		Expect(err).NotTo(HaveOccurred())
		Expect(recorded).To(BeFalse())

		history, err := repo.ListByUser(c, userID)
		Expect(err).NotTo(HaveOccurred())
		Expect(history).To(HaveLen(1))
		Expect(history[0].EventID).To(Equal(p.EventID))
		Expect(history[0].TransactionID).To(Equal(p.TransactionID))
		Expect(history[0].Total.StringFixed(2)).To(Equal("59.97"))
		Expect(history[0].Units).To(Equal(int64(3)))

		all, err := repo.List(c)
		Expect(err).NotTo(HaveOccurred())
		Expect(len(all)).To(BeNumerically(">=", 1))
	})
})
