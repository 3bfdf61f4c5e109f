// Package checkout computes order summaries and turns a cart's venue
// lines into an immutable order-history snapshot.
package checkout

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"campus-eats-api/cart"
	"campus-eats-api/inbox"
	"campus-eats-api/models"
	"campus-eats-api/promo"
	"campus-eats-api/session"
)

// DeliveryFee is the flat campus delivery fee in RM.
const DeliveryFee = 2.50

// TimeSlots a customer can schedule delivery for.
var TimeSlots = []string{
	"ASAP (15-20 min)",
	"30 minutes",
	"1 hour",
	"1.5 hours",
	"2 hours",
}

// TipOptions offered at checkout, in RM.
var TipOptions = []float64{0, 2, 5, 8, 10}

var ErrEmptyCart = errors.New("no cart items for this venue")

const fallbackImage = "https://images.unsplash.com/photo-1677921755291-c39158477b8e?q=80&w=1080"

// Request carries the checkout form.
type Request struct {
	Venue                string
	DeliveryInstructions string
	ScheduledTime        string
	ContactFree          bool
	DriverTip            float64
	PromoCode            string
}

// Summary is the priced breakdown shown before payment and recorded
// into the order total.
type Summary struct {
	Venue       string            `json:"venue"`
	Items       []models.CartItem `json:"items"`
	Subtotal    float64           `json:"subtotal"`
	DeliveryFee float64           `json:"delivery_fee"`
	DriverTip   float64           `json:"driver_tip"`
	Discount    float64           `json:"discount"`
	Total       float64           `json:"total"`
}

type Service struct {
	sessions *session.Store
	carts    *cart.Store
	inbox    *inbox.Store
	promos   *promo.Catalog
	log      *zap.Logger
}

func NewService(sessions *session.Store, carts *cart.Store, in *inbox.Store, promos *promo.Catalog, log *zap.Logger) *Service {
	return &Service{sessions: sessions, carts: carts, inbox: in, promos: promos, log: log}
}

// Summarize prices the active account's cart lines for one venue.
func (s *Service) Summarize(req Request) (Summary, error) {
	account, ok := s.sessions.Current()
	if !ok {
		return Summary{}, session.ErrNoSession
	}
	return s.summarize(account, req)
}

func (s *Service) summarize(account models.Account, req Request) (Summary, error) {
	items := s.carts.VenueItems(account.ID, req.Venue)
	if len(items) == 0 {
		return Summary{}, ErrEmptyCart
	}

	sum := Summary{
		Venue:       req.Venue,
		Items:       items,
		DeliveryFee: DeliveryFee,
		DriverTip:   req.DriverTip,
	}
	for _, it := range items {
		sum.Subtotal += it.Price * float64(it.Quantity)
	}
	if req.PromoCode != "" {
		d, err := s.promos.Apply(req.PromoCode, sum.Subtotal, account.Type)
		if err != nil {
			return Summary{}, err
		}
		sum.Discount = d.Amount
		if d.FreeDelivery {
			sum.DeliveryFee = 0
		}
	}
	sum.Total = sum.Subtotal + sum.DeliveryFee + sum.DriverTip - sum.Discount
	if sum.Total < 0 {
		sum.Total = 0
	}
	return sum, nil
}

// Complete finishes a checkout: the venue's cart lines become an
// immutable order record prepended to the account's history, and only
// that venue's lines are cleared from the cart. The demo jumps straight
// to the Delivered label — there is no live order lifecycle.
func (s *Service) Complete(req Request) (models.Order, error) {
	account, ok := s.sessions.Current()
	if !ok {
		return models.Order{}, session.ErrNoSession
	}

	sum, err := s.summarize(account, req)
	if err != nil {
		return models.Order{}, err
	}

	now := time.Now()
	order := models.Order{
		ID:     fmt.Sprintf("#%04d", 1000+rand.Intn(9000)),
		Date:   now.Format("Jan 2, 2006"),
		Time:   now.Format("3:04 PM"),
		Status: "Delivered",
		Total:  sum.Total,
		Venue:  sum.Venue,
		Image:  fallbackImage,
	}
	for _, it := range sum.Items {
		order.Items = append(order.Items, models.OrderItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}
	if len(sum.Items) > 0 && sum.Items[0].Image != "" {
		order.Image = sum.Items[0].Image
	}

	s.sessions.RecordOrder(order)
	s.carts.ClearVenue(account.ID, req.Venue)

	s.inbox.Append(account.ID, models.Notification{
		Kind:    models.NotificationOrder,
		Title:   "Order " + order.ID + " delivered",
		Message: fmt.Sprintf("Your order from %s has been delivered. Enjoy!", order.Venue),
		Image:   order.Image,
	})

	s.log.Info("checkout completed",
		zap.String("account", account.ID),
		zap.String("order", order.ID),
		zap.String("venue", order.Venue),
		zap.Float64("total", order.Total),
	)
	return order, nil
}
