package services

import (
	"context"
	"sync"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"
	"food_ordering/pkg/logger"
	"food_ordering/pkg/payment"
)

// In-memory fakes for the repository interfaces. They mirror the real
// repositories' error contracts so service tests exercise the same paths.

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...logger.Field)    {}
func (nopLogger) Error(msg string, fields ...logger.Field)   {}
func (nopLogger) Warning(msg string, fields ...logger.Field) {}

type fakeUserRepo struct {
	users     map[uint]*models.User
	addresses map[uint]*models.Address
	nextID    uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[uint]*models.User),
		addresses: make(map[uint]*models.Address),
		nextID:    1,
	}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) CreateAddress(address *models.Address) error {
	address.ID = f.nextID
	f.nextID++
	f.addresses[address.ID] = address
	return nil
}

func (f *fakeUserRepo) GetAddress(id uint) (*models.Address, error) {
	if address, ok := f.addresses[id]; ok {
		return address, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) ListAddresses(userID uint) ([]models.Address, error) {
	var out []models.Address
	for _, address := range f.addresses {
		if address.UserID == userID {
			out = append(out, *address)
		}
	}
	return out, nil
}

type fakeRestaurantRepo struct {
	restaurants map[uint]*models.Restaurant
	nextID      uint
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: make(map[uint]*models.Restaurant), nextID: 1}
}

func (f *fakeRestaurantRepo) Create(restaurant *models.Restaurant) error {
	restaurant.ID = f.nextID
	f.nextID++
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeRestaurantRepo) GetByID(id uint) (*models.Restaurant, error) {
	if restaurant, ok := f.restaurants[id]; ok {
		return restaurant, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeRestaurantRepo) GetByOwner(userID uint) (*models.Restaurant, error) {
	for _, restaurant := range f.restaurants {
		if restaurant.UserID == userID {
			return restaurant, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRestaurantRepo) List(page, limit int, search string, status models.RestaurantStatus) ([]models.RestaurantSummary, int64, error) {
	var out []models.RestaurantSummary
	for _, restaurant := range f.restaurants {
		if restaurant.Status == status {
			out = append(out, models.RestaurantSummary{Restaurant: *restaurant})
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRestaurantRepo) Update(restaurant *models.Restaurant) error {
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

type fakeCatalogRepo struct {
	items      map[uint]*models.MenuItem
	categories map[uint]*models.Category
	nextID     uint
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		items:      make(map[uint]*models.MenuItem),
		categories: make(map[uint]*models.Category),
		nextID:     1,
	}
}

func (f *fakeCatalogRepo) GetMenuItem(id uint) (*models.MenuItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeCatalogRepo) ListMenuItems(restaurantID uint, filter repository.MenuFilter) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, item := range f.items {
		if item.RestaurantID != restaurantID {
			continue
		}
		if filter.AvailableOnly && !item.Available {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateMenuItem(item *models.MenuItem) error {
	item.ID = f.nextID
	f.nextID++
	f.items[item.ID] = item
	return nil
}

func (f *fakeCatalogRepo) UpdateMenuItem(item *models.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeCatalogRepo) ListCategories(restaurantID uint) ([]models.Category, error) {
	var out []models.Category
	for _, category := range f.categories {
		if category.RestaurantID == restaurantID {
			out = append(out, *category)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateCategory(category *models.Category) error {
	category.ID = f.nextID
	f.nextID++
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCatalogRepo) ListPromotions(restaurantID uint) ([]models.Promotion, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) CreatePromotion(promotion *models.Promotion) error {
	return nil
}

type fakeOrderRepo struct {
	orders map[uint]*models.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	order.ID = f.nextID
	f.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	if order, ok := f.orders[id]; ok {
		return order, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeOrderRepo) ListByUser(userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByRestaurant(restaurantID uint) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.RestaurantID == restaurantID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByStatus(status models.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.Status == status {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := f.orders[order.ID]; !ok {
		return models.ErrNotFound
	}
	f.orders[order.ID] = order
	return nil
}

type fakeLoyaltyRepo struct {
	balances map[uint]int
	ledger   []models.LoyaltyReward
	nextID   uint
}

func newFakeLoyaltyRepo() *fakeLoyaltyRepo {
	return &fakeLoyaltyRepo{balances: make(map[uint]int), nextID: 1}
}

func (f *fakeLoyaltyRepo) Apply(userID uint, delta int, reward *models.LoyaltyReward) (int, error) {
	balance, ok := f.balances[userID]
	if !ok {
		return 0, models.ErrNotFound
	}
	if balance+delta < 0 {
		return 0, models.ErrInsufficientPoints
	}
	f.balances[userID] = balance + delta
	reward.ID = f.nextID
	f.nextID++
	f.ledger = append(f.ledger, *reward)
	return f.balances[userID], nil
}

func (f *fakeLoyaltyRepo) Balance(userID uint) (int, error) {
	balance, ok := f.balances[userID]
	if !ok {
		return 0, models.ErrNotFound
	}
	return balance, nil
}

func (f *fakeLoyaltyRepo) History(userID uint, limit int) ([]models.LoyaltyReward, error) {
	var out []models.LoyaltyReward
	for i := len(f.ledger) - 1; i >= 0 && len(out) < limit; i-- {
		if f.ledger[i].UserID == userID {
			out = append(out, f.ledger[i])
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
	nextID        uint
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) Create(notification *models.Notification) error {
	notification.ID = f.nextID
	f.nextID++
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			out = append(out, notification)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(id, userID uint) error {
	for i := range f.notifications {
		if f.notifications[i].ID == id && f.notifications[i].UserID == userID {
			f.notifications[i].Read = true
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations map[uint]*models.Reservation
	nextID       uint
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[uint]*models.Reservation), nextID: 1}
}

// CreateWithCapacity holds a single lock across the count and the insert,
// mirroring the real repository's per-slot advisory lock.
func (f *fakeReservationRepo) CreateWithCapacity(reservation *models.Reservation, capacity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	active := 0
	for _, existing := range f.reservations {
		if existing.Date.Equal(reservation.Date) && existing.Time == reservation.Time &&
			(existing.Status == models.ReservationPending || existing.Status == models.ReservationConfirmed) {
			active++
		}
	}
	if active >= capacity {
		return models.ErrSlotFull
	}
	reservation.ID = f.nextID
	f.nextID++
	f.reservations[reservation.ID] = reservation
	return nil
}

func (f *fakeReservationRepo) GetByID(id uint) (*models.Reservation, error) {
	if reservation, ok := f.reservations[id]; ok {
		return reservation, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeReservationRepo) ListByUser(userID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, reservation := range f.reservations {
		if reservation.UserID == userID {
			out = append(out, *reservation)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Update(reservation *models.Reservation) error {
	if _, ok := f.reservations[reservation.ID]; !ok {
		return models.ErrNotFound
	}
	f.reservations[reservation.ID] = reservation
	return nil
}

type fakeReviewRepo struct {
	reviews []models.Review
	ratings []models.Rating
	nextID  uint
	failOn  error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{nextID: 1}
}

func (f *fakeReviewRepo) Create(review *models.Review) error {
	if f.failOn != nil {
		return f.failOn
	}
	review.ID = f.nextID
	f.nextID++
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) FindByUserAndOrder(userID, orderID uint) (*models.Review, error) {
	for i := range f.reviews {
		review := f.reviews[i]
		if review.UserID == userID && review.OrderID != nil && *review.OrderID == orderID {
			return &review, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeReviewRepo) FindByUserAndReservation(userID, reservationID uint) (*models.Review, error) {
	for i := range f.reviews {
		review := f.reviews[i]
		if review.UserID == userID && review.ReservationID != nil && *review.ReservationID == reservationID {
			return &review, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeReviewRepo) List(filter repository.ReviewFilter) ([]models.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) CreateRating(rating *models.Rating) error {
	rating.ID = f.nextID
	f.nextID++
	f.ratings = append(f.ratings, *rating)
	return nil
}

func (f *fakeReviewRepo) FindRating(userID, restaurantID uint) (*models.Rating, error) {
	for i := range f.ratings {
		rating := f.ratings[i]
		if rating.ByUserID == userID && rating.RestaurantID == restaurantID {
			return &rating, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeReviewRepo) ListRatings(restaurantID uint) ([]models.Rating, error) {
	return f.ratings, nil
}

type fakePaymentRepo struct {
	payments []models.Payment
	nextID   uint
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{nextID: 1}
}

func (f *fakePaymentRepo) Create(payment *models.Payment) error {
	payment.ID = f.nextID
	f.nextID++
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentRepo) ListByUser(userID uint) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubPaymentProvider struct {
	configured bool
}

func (p *stubPaymentProvider) Configured() bool {
	return p.configured
}

func (p *stubPaymentProvider) CreateIntent(ctx context.Context, userID uint, amount float64, currency string, orderID *uint) (*payment.Intent, error) {
	return &payment.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}
