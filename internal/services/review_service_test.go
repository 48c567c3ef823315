package services

import (
	"testing"
	"time"

	"food_ordering/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	svc          ReviewService
	reviews      *fakeReviewRepo
	orders       *fakeOrderRepo
	reservations *fakeReservationRepo
	restaurants  *fakeRestaurantRepo
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	reviews := newFakeReviewRepo()
	orders := newFakeOrderRepo()
	reservations := newFakeReservationRepo()
	restaurants := newFakeRestaurantRepo()
	return &reviewFixture{
		svc:          NewReviewService(reviews, orders, reservations, restaurants),
		reviews:      reviews,
		orders:       orders,
		reservations: reservations,
		restaurants:  restaurants,
	}
}

func (f *reviewFixture) addOrder(t *testing.T, userID uint, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{UserID: userID, RestaurantID: 1, Status: status}
	require.NoError(t, f.orders.Create(order))
	return order
}

func (f *reviewFixture) addReservation(t *testing.T, userID uint, status models.ReservationStatus) *models.Reservation {
	t.Helper()
	reservation := &models.Reservation{
		UserID: userID,
		Date:   time.Now().AddDate(0, 0, -1),
		Time:   "19:00",
		Status: status,
	}
	// Insert directly; capacity rules are not under test here.
	reservation.ID = f.reservations.nextID
	f.reservations.nextID++
	f.reservations.reservations[reservation.ID] = reservation
	return reservation
}

func TestReviewDeliveredOrder(t *testing.T) {
	f := newReviewFixture(t)
	order := f.addOrder(t, 1, models.OrderDelivered)

	review, err := f.svc.Create(1, CreateReviewRequest{Rating: 5, Comment: "excellent", OrderID: &order.ID})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	require.NotNil(t, review.OrderID)
	assert.Equal(t, order.ID, *review.OrderID)
}

func TestReviewRequiresDeliveredStatus(t *testing.T) {
	f := newReviewFixture(t)

	for _, status := range []models.OrderStatus{
		models.OrderCreated, models.OrderConfirmed, models.OrderPreparing,
		models.OrderReadyForPickup, models.OrderPickedUp, models.OrderEnRoute,
		models.OrderCancelled,
	} {
		order := f.addOrder(t, 1, status)
		_, err := f.svc.Create(1, CreateReviewRequest{Rating: 4, OrderID: &order.ID})
		assert.ErrorIs(t, err, models.ErrReviewNotEligible, "status %s", status)
	}
}

func TestDuplicateOrderReviewRejected(t *testing.T) {
	f := newReviewFixture(t)
	order := f.addOrder(t, 1, models.OrderDelivered)

	_, err := f.svc.Create(1, CreateReviewRequest{Rating: 5, OrderID: &order.ID})
	require.NoError(t, err)

	_, err = f.svc.Create(1, CreateReviewRequest{Rating: 3, OrderID: &order.ID})
	assert.ErrorIs(t, err, models.ErrDuplicateReview)
}

func TestReviewSomeoneElsesOrder(t *testing.T) {
	f := newReviewFixture(t)
	order := f.addOrder(t, 2, models.OrderDelivered)

	// Not-found, not forbidden: order ids must not leak.
	_, err := f.svc.Create(1, CreateReviewRequest{Rating: 5, OrderID: &order.ID})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestReviewCompletedReservation(t *testing.T) {
	f := newReviewFixture(t)
	reservation := f.addReservation(t, 1, models.ReservationCompleted)

	review, err := f.svc.Create(1, CreateReviewRequest{Rating: 4, ReservationID: &reservation.ID})
	require.NoError(t, err)
	require.NotNil(t, review.ReservationID)
	assert.Equal(t, reservation.ID, *review.ReservationID)

	// One review per (user, reservation).
	_, err = f.svc.Create(1, CreateReviewRequest{Rating: 2, ReservationID: &reservation.ID})
	assert.ErrorIs(t, err, models.ErrDuplicateReview)
}

func TestReviewPendingReservationRejected(t *testing.T) {
	f := newReviewFixture(t)
	reservation := f.addReservation(t, 1, models.ReservationPending)

	_, err := f.svc.Create(1, CreateReviewRequest{Rating: 4, ReservationID: &reservation.ID})
	assert.ErrorIs(t, err, models.ErrReviewNotEligible)
}

func TestReviewTargetValidation(t *testing.T) {
	f := newReviewFixture(t)
	order := f.addOrder(t, 1, models.OrderDelivered)
	reservation := f.addReservation(t, 1, models.ReservationCompleted)

	// Neither target.
	_, err := f.svc.Create(1, CreateReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, models.ErrReviewTarget)

	// Both targets.
	_, err = f.svc.Create(1, CreateReviewRequest{Rating: 4, OrderID: &order.ID, ReservationID: &reservation.ID})
	assert.ErrorIs(t, err, models.ErrReviewTarget)
}

func TestReviewRatingBounds(t *testing.T) {
	f := newReviewFixture(t)
	order := f.addOrder(t, 1, models.OrderDelivered)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := f.svc.Create(1, CreateReviewRequest{Rating: rating, OrderID: &order.ID})
		assert.ErrorIs(t, err, models.ErrInvalidRating, "rating %d", rating)
	}
}

func TestRateRestaurant(t *testing.T) {
	f := newReviewFixture(t)
	restaurant := &models.Restaurant{UserID: 9, Name: "Falafel Corner", Phone: "1", Address: "x", Status: models.RestaurantActive}
	require.NoError(t, f.restaurants.Create(restaurant))

	rating, err := f.svc.RateRestaurant(1, restaurant.ID, 5, "great")
	require.NoError(t, err)
	assert.Equal(t, 5, rating.Score)

	_, err = f.svc.RateRestaurant(1, restaurant.ID, 4, "again")
	assert.ErrorIs(t, err, models.ErrDuplicateRating)

	_, err = f.svc.RateRestaurant(1, 404, 4, "")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = f.svc.RateRestaurant(2, restaurant.ID, 0, "")
	assert.ErrorIs(t, err, models.ErrInvalidRating)
}
