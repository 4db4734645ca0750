package usecase

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"familymarket/internal/domain/entity"
	"familymarket/internal/domain/repository"
	"familymarket/internal/domain/service"
	"familymarket/pkg/errors"
)

// In-memory repository fakes. They are not safe for concurrent mutation
// beyond what the tests exercise.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = "user-" + strconv.Itoa(len(r.users)+1)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, user := range r.users {
		if status, ok := filter["accountStatus"]; ok && string(user.AccountStatus) != status {
			continue
		}
		if role, ok := filter["role"]; ok && user.Role != role {
			continue
		}
		clone := *user
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) AddFCMToken(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.FCMTokens = append(user.FCMTokens, token)
	return nil
}

func (r *fakeUserRepo) RemoveFCMToken(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	kept := user.FCMTokens[:0]
	for _, t := range user.FCMTokens {
		if t != token {
			kept = append(kept, t)
		}
	}
	user.FCMTokens = kept
	return nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store // keyed by slug
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[string]*entity.Store{}}
}

func (r *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	if store.ID == "" {
		store.ID = store.Slug
	}
	clone := *store
	r.stores[store.Slug] = &clone
	return nil
}

func (r *fakeStoreRepo) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	store, ok := r.stores[slug]
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}
	clone := *store
	return &clone, nil
}

func (r *fakeStoreRepo) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error) {
	for _, store := range r.stores {
		if store.OwnerID == ownerID {
			clone := *store
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *fakeStoreRepo) Update(ctx context.Context, store *entity.Store) error {
	if _, ok := r.stores[store.Slug]; !ok {
		return errors.NotFound("Store", nil)
	}
	clone := *store
	r.stores[store.Slug] = &clone
	return nil
}

func (r *fakeStoreRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, ok := r.stores[slug]
	return ok, nil
}

type fakeListingRepo struct {
	listings map[string]*entity.Listing
	seq      int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[string]*entity.Listing{}}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		r.seq++
		listing.ID = "listing-" + strconv.Itoa(r.seq)
	}
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	clone := *listing
	return &clone, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	clone := *listing
	r.listings[listing.ID] = &clone
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("Listing", nil)
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) List(ctx context.Context, filter repository.ListingFilter, sortKey string, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, listing := range r.listings {
		if filter.Type != "" && listing.Type != filter.Type {
			continue
		}
		if filter.Status != "" && listing.Status != filter.Status {
			continue
		}
		if filter.OwnerID != "" && listing.OwnerID != filter.OwnerID {
			continue
		}
		if filter.StoreSlug != "" && (listing.StoreInfo == nil || listing.StoreInfo.Slug != filter.StoreSlug) {
			continue
		}
		if !listing.MatchesTerm(filter.Term) {
			continue
		}
		clone := *listing
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.listings[id]
	return ok, nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id string) error {
	listing, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.Views++
	return nil
}

func (r *fakeListingRepo) SetFeatured(ctx context.Context, id string, until time.Time) error {
	listing, ok := r.listings[id]
	if !ok {
		return errors.NotFound("Listing", nil)
	}
	listing.Featured = true
	listing.FeaturedUntil = &until
	return nil
}

func (r *fakeListingRepo) ClearExpiredFeatured(ctx context.Context, now time.Time) (int, error) {
	cleared := 0
	for _, listing := range r.listings {
		if listing.Featured && listing.FeaturedUntil != nil && listing.FeaturedUntil.Before(now) {
			listing.Featured = false
			listing.FeaturedUntil = nil
			cleared++
		}
	}
	return cleared, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	seq      int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.seq++
		product.ID = "product-" + strconv.Itoa(r.seq)
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

func (r *fakeProductRepo) IncrementViews(ctx context.Context, id string) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Views++
	return nil
}

func (r *fakeProductRepo) ListByStore(ctx context.Context, storeSlug string, limit, offset int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, product := range r.products {
		if product.StoreSlug == storeSlug {
			clone := *product
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Search(ctx context.Context, term, storeSlug string, limit int) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, product := range r.products {
		if storeSlug != "" && product.StoreSlug != storeSlug {
			continue
		}
		clone := *product
		out = append(out, &clone)
	}
	return out, nil
}

type fakeServiceRepo struct {
	services map[string]*entity.Service
	seq      int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]*entity.Service{}}
}

func (r *fakeServiceRepo) Create(ctx context.Context, svc *entity.Service) error {
	if svc.ID == "" {
		r.seq++
		svc.ID = "service-" + strconv.Itoa(r.seq)
	}
	clone := *svc
	r.services[svc.ID] = &clone
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}
	clone := *svc
	return &clone, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, svc *entity.Service) error {
	if _, ok := r.services[svc.ID]; !ok {
		return errors.NotFound("Service", nil)
	}
	clone := *svc
	r.services[svc.ID] = &clone
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.services[id]
	return ok, nil
}

func (r *fakeServiceRepo) IncrementViews(ctx context.Context, id string) error {
	svc, ok := r.services[id]
	if !ok {
		return errors.NotFound("Service", nil)
	}
	svc.Views++
	return nil
}

func (r *fakeServiceRepo) ListByStore(ctx context.Context, storeSlug string, limit, offset int) ([]*entity.Service, int64, error) {
	var out []*entity.Service
	for _, svc := range r.services {
		if svc.StoreSlug == storeSlug {
			clone := *svc
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeServiceRepo) Search(ctx context.Context, term, storeSlug string, limit int) ([]*entity.Service, error) {
	out := []*entity.Service{}
	for _, svc := range r.services {
		if storeSlug != "" && svc.StoreSlug != storeSlug {
			continue
		}
		clone := *svc
		out = append(out, &clone)
	}
	return out, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[entity.CommentItemType]map[string]*entity.Comment
	seq      int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[entity.CommentItemType]map[string]*entity.Comment{
		entity.CommentOnProduct: {},
		entity.CommentOnService: {},
		entity.CommentOnListing: {},
	}}
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == "" {
		r.seq++
		comment.ID = "comment-" + strconv.Itoa(r.seq)
	}
	clone := *comment
	r.comments[comment.ItemType][comment.ID] = &clone
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, itemType entity.CommentItemType, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[itemType][id]
	if !ok {
		return nil, errors.NotFound("Comment", nil)
	}
	clone := *comment
	return &clone, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, itemType entity.CommentItemType, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments[itemType], id)
	return nil
}

func (r *fakeCommentRepo) list(itemType entity.CommentItemType, match func(*entity.Comment) bool) []*entity.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Comment{}
	for _, comment := range r.comments[itemType] {
		if match(comment) {
			clone := *comment
			out = append(out, &clone)
		}
	}
	return out
}

func (r *fakeCommentRepo) ListByItem(ctx context.Context, itemType entity.CommentItemType, itemID string) ([]*entity.Comment, error) {
	return r.list(itemType, func(c *entity.Comment) bool { return c.ItemID == itemID }), nil
}

func (r *fakeCommentRepo) ListByAuthor(ctx context.Context, itemType entity.CommentItemType, authorID string) ([]*entity.Comment, error) {
	return r.list(itemType, func(c *entity.Comment) bool { return c.AuthorID == authorID }), nil
}

func (r *fakeCommentRepo) ListByTarget(ctx context.Context, itemType entity.CommentItemType, targetUserID string) ([]*entity.Comment, error) {
	return r.list(itemType, func(c *entity.Comment) bool { return c.TargetUserID == targetUserID }), nil
}

func (r *fakeCommentRepo) ListAll(ctx context.Context, itemType entity.CommentItemType) ([]*entity.Comment, error) {
	return r.list(itemType, func(c *entity.Comment) bool { return true }), nil
}

func (r *fakeCommentRepo) DeleteBatch(ctx context.Context, itemType entity.CommentItemType, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.comments[itemType], id)
	}
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
	seq      int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		r.seq++
		payment.ID = "payment-" + strconv.Itoa(r.seq)
	}
	clone := *payment
	r.payments[payment.ID] = &clone
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	payment, ok := r.payments[id]
	if !ok {
		return nil, errors.NotFound("Payment", nil)
	}
	clone := *payment
	return &clone, nil
}

func (r *fakePaymentRepo) GetByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*entity.Payment, error) {
	for _, payment := range r.payments {
		if payment.GatewayPaymentID == gatewayPaymentID {
			clone := *payment
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Payment", nil)
}

func (r *fakePaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return errors.NotFound("Payment", nil)
	}
	clone := *payment
	r.payments[payment.ID] = &clone
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if notification.ID == "" {
		notification.ID = "notification-" + strconv.Itoa(r.seq)
	}
	clone := *notification
	r.notifications = append(r.notifications, &clone)
	return nil
}

func (r *fakeNotificationRepo) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	for _, n := range notifications {
		if err := r.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Notification{}
	for _, n := range r.notifications {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.UserID != userID {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

// fakeGateway scripts the checkout provider.
type fakeGateway struct {
	preferences  int
	getCalls     int
	status       string // returned by GetPayment
	lastRequest  service.PreferenceRequest
	externalRefs map[string]string // gateway payment id -> order id
}

func newFakeGateway(status string) *fakeGateway {
	return &fakeGateway{status: status, externalRefs: map[string]string{}}
}

func (g *fakeGateway) CreatePreference(ctx context.Context, req service.PreferenceRequest) (*service.PreferenceResponse, error) {
	g.preferences++
	g.lastRequest = req
	return &service.PreferenceResponse{
		PreferenceID: "pref-" + strconv.Itoa(g.preferences),
		InitPoint:    "https://checkout.example/pref-" + strconv.Itoa(g.preferences),
	}, nil
}

func (g *fakeGateway) GetPayment(ctx context.Context, paymentID string) (*service.PaymentInfo, error) {
	g.getCalls++
	ref, ok := g.externalRefs[paymentID]
	if !ok {
		return nil, errors.NotFound("Payment", nil)
	}
	return &service.PaymentInfo{
		PaymentID:         paymentID,
		Status:            g.status,
		ExternalReference: ref,
	}, nil
}

// fakePushSender records sends and reports scripted stale tokens.
type fakePushSender struct {
	mu    sync.Mutex
	sends [][]string
	stale []string
}

func (p *fakePushSender) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sends = append(p.sends, tokens)
	return p.stale, nil
}

// fakeRealtimePusher records websocket deliveries per user.
type fakeRealtimePusher struct {
	mu       sync.Mutex
	messages map[string][][]byte
}

func newFakeRealtimePusher() *fakeRealtimePusher {
	return &fakeRealtimePusher{messages: map[string][][]byte{}}
}

func (p *fakeRealtimePusher) SendToUser(userID string, message []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[userID] = append(p.messages[userID], message)
}

func (p *fakeRealtimePusher) Broadcast(message []byte) {}
