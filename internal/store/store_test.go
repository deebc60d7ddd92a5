package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hellok1tta/bakery-shop/internal/db"
	"github.com/hellok1tta/bakery-shop/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// одна :memory:-база на все соединения
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() { _ = sqlDB.Close() })

	return New(gdb)
}

func uniqueEmail() string {
	return "u_" + uuid.NewString() + "@example.com"
}

func TestStore_Register_SuccessAndDuplicate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	email := uniqueEmail()

	user, err := st.Register(ctx, "Иван", email, "hashed")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Equal(t, email, user.Email)

	_, err = st.Register(ctx, "Другой Иван", email, "hashed2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestStore_Register_Validation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
		pw    string
	}{
		{name: "empty email", email: "", pw: "hashed"},
		{name: "empty password", email: uniqueEmail(), pw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.Register(ctx, "Иван", tt.email, tt.pw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestStore_Login(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	email := uniqueEmail()

	created, err := st.Register(ctx, "Иван", email, "hashed")
	require.NoError(t, err)

	user, err := st.Login(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "hashed", user.PasswordHash)

	_, err = st.Login(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ProductByID_NotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.ProductByID(context.Background(), 99999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_PopularProducts_FilterAndLimit(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := st.CreateProduct(ctx, &models.Product{
			Name:      fmt.Sprintf("Хлеб %d", i),
			Price:     100 + float64(i),
			IsPopular: i%2 == 0,
		})
		require.NoError(t, err)
	}

	popular, err := st.PopularProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	for _, p := range popular {
		assert.True(t, p.IsPopular)
	}

	// limit <= 0 откатывается к значению по умолчанию
	popular, err = st.PopularProducts(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, popular, 3)
}

func TestStore_CreateProduct_Validation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.CreateProduct(ctx, &models.Product{Price: 100})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.CreateProduct(ctx, &models.Product{Name: "Хлеб"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStore_ListEmployees_OrderedByPositionThenName(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, e := range []models.Employee{
		{Name: "Борис", Position: "Пекарь"},
		{Name: "Анна", Position: "Кондитер"},
		{Name: "Алексей", Position: "Пекарь"},
	} {
		e := e
		_, err := st.CreateEmployee(ctx, &e)
		require.NoError(t, err)
	}

	got, err := st.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Анна", got[0].Name)
	assert.Equal(t, "Алексей", got[1].Name)
	assert.Equal(t, "Борис", got[2].Name)
}

func TestStore_CreateShop_RequiresAddress(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreateShop(context.Background(), &models.Shop{Phone: "+7 900"})
	assert.ErrorIs(t, err, ErrValidation)
}

func newTestUser(t *testing.T, st *Store) *models.User {
	t.Helper()
	user, err := st.Register(context.Background(), "Иван", uniqueEmail(), "hashed")
	require.NoError(t, err)
	return user
}

func TestStore_UserOrders_NewestFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, st)

	older := models.Order{UserID: user.ID, Items: `[{"id":1}]`, TotalAmount: 100}
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, st.DB.Create(&older).Error)

	newer, err := st.CreateOrder(ctx, &models.Order{UserID: user.ID, Items: `[{"id":2}]`, TotalAmount: 200})
	require.NoError(t, err)

	orders, err := st.UserOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestStore_CreateOrder_DefaultsToProcessing(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st)

	order, err := st.CreateOrder(context.Background(), &models.Order{
		UserID:      user.ID,
		Items:       `[{"id":1,"name":"Хлеб","price":150,"quantity":2}]`,
		TotalAmount: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
}

func TestStore_CreateOrder_Validation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, st)

	_, err := st.CreateOrder(ctx, &models.Order{UserID: user.ID, TotalAmount: 100})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.CreateOrder(ctx, &models.Order{UserID: user.ID, Items: `[]`})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStore_UserStats_ZeroOrders(t *testing.T) {
	st := newTestStore(t)
	user := newTestUser(t, st)

	stats, err := st.UserStats(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalAmount)
	assert.Zero(t, stats.AverageOrder)
	require.NotNil(t, stats.StatusStats)
	assert.Empty(t, stats.StatusStats)
}

func TestStore_UserStats_Aggregates(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, st)
	stranger := newTestUser(t, st)

	amounts := []float64{100, 250, 400}
	statuses := []string{models.OrderStatusProcessing, models.OrderStatusProcessing, models.OrderStatusCompleted}
	for i := range amounts {
		_, err := st.CreateOrder(ctx, &models.Order{
			UserID:      user.ID,
			Items:       `[{"id":1}]`,
			TotalAmount: amounts[i],
			Status:      statuses[i],
		})
		require.NoError(t, err)
	}

	// чужой заказ в сводку не попадает
	_, err := st.CreateOrder(ctx, &models.Order{UserID: stranger.ID, Items: `[{"id":9}]`, TotalAmount: 999})
	require.NoError(t, err)

	stats, err := st.UserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.Equal(t, 750.0, stats.TotalAmount)
	assert.Equal(t, 250.0, stats.AverageOrder)

	byStatus := map[string]int64{}
	for _, s := range stats.StatusStats {
		byStatus[s.Status] = s.Count
	}
	assert.EqualValues(t, 2, byStatus[models.OrderStatusProcessing])
	assert.EqualValues(t, 1, byStatus[models.OrderStatusCompleted])
}

func TestStore_UpdateOrderStatus(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, st)
	stranger := newTestUser(t, st)

	order, err := st.CreateOrder(ctx, &models.Order{UserID: user.ID, Items: `[{"id":1}]`, TotalAmount: 100})
	require.NoError(t, err)

	updated, err := st.UpdateOrderStatus(ctx, order.ID, user.ID, models.OrderStatusDelivery)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivery, updated.Status)

	_, err = st.UpdateOrderStatus(ctx, order.ID, user.ID, "shipped")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.UpdateOrderStatus(ctx, order.ID, stranger.ID, models.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeleteOrder_OwnerScoped(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, st)
	stranger := newTestUser(t, st)

	order, err := st.CreateOrder(ctx, &models.Order{UserID: user.ID, Items: `[{"id":1}]`, TotalAmount: 100})
	require.NoError(t, err)

	err = st.DeleteOrder(ctx, order.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.DeleteOrder(ctx, order.ID, user.ID))

	orders, err := st.UserOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStore_CreateReview_StarsBounds(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, st)

	product, err := st.CreateProduct(ctx, &models.Product{Name: "Хлеб", Price: 150})
	require.NoError(t, err)

	tests := []struct {
		name    string
		stars   int
		wantErr bool
	}{
		{name: "zero stars", stars: 0, wantErr: true},
		{name: "one star", stars: 1},
		{name: "five stars", stars: 5},
		{name: "six stars", stars: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.CreateReview(ctx, &models.Review{
				UserID:    user.ID,
				ProductID: product.ID,
				Review:    "Очень вкусно",
				Stars:     tt.stars,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
