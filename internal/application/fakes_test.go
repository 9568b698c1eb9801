package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/designershaven/marketplace-api/internal/domain/entity"
)

var errFakeNotFound = errors.New("not found")

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return errFakeNotFound
	}
	r.users[u.ID] = u
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = fmt.Sprintf("product-%d", len(r.products)+1)
	}
	p.CreatedAt = time.Now()
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeLikeRepo struct {
	mu    sync.Mutex
	likes map[string]map[string]bool // productID -> userID set
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[string]map[string]bool{}}
}

func (r *fakeLikeRepo) Toggle(productID, userID string) (bool, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := r.likes[productID]
	if set == nil {
		set = map[string]bool{}
		r.likes[productID] = set
	}
	liked := !set[userID]
	if liked {
		set[userID] = true
	} else {
		delete(set, userID)
	}
	return liked, len(set), nil
}

func (r *fakeLikeRepo) Count(productID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.likes[productID]), nil
}

type fakeFollowRepo struct {
	mu    sync.Mutex
	edges map[[2]string]bool // [follower, followee]
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[[2]string]bool{}}
}

func (r *fakeFollowRepo) Toggle(followerID, followeeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{followerID, followeeID}
	if r.edges[key] {
		delete(r.edges, key)
		return false, nil
	}
	r.edges[key] = true
	return true, nil
}

func (r *fakeFollowRepo) IsFollowing(followerID, followeeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.edges[[2]string{followerID, followeeID}], nil
}

func (r *fakeFollowRepo) CountFollowers(userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for edge := range r.edges {
		if edge[1] == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFollowRepo) CountFollowing(userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for edge := range r.edges {
		if edge[0] == userID {
			count++
		}
	}
	return count, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	seq      int
	comments map[string]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[string]*entity.Comment{}}
}

func (r *fakeCommentRepo) Create(c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c.ID = fmt.Sprintf("comment-%d", r.seq)
	c.CreatedAt = time.Now()
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return c, nil
}

func (r *fakeCommentRepo) ListByProduct(productID string) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCommentRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return errFakeNotFound
	}
	delete(r.comments, id)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	seq    int
	orders []*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	return &fakeOrderRepo{orders: orders}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	o.ID = fmt.Sprintf("order-%d", r.seq)
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) ListAll() ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

type fakeNotificationRepo struct {
	mu     sync.Mutex
	seq    int
	notifs []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	n.ID = fmt.Sprintf("notif-%d", r.seq)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	}
	r.notifs = append(r.notifs, n)
	return nil
}

func (r *fakeNotificationRepo) ListRecent(recipientID string, limit int) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.notifs {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkAllRead(recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifs {
		if n.RecipientID == recipientID {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) countFor(recipientID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, n := range r.notifs {
		if n.RecipientID == recipientID {
			count++
		}
	}
	return count
}

type fakePublisher struct {
	mu     sync.Mutex
	events []entity.NotificationEvent
	err    error
}

func (p *fakePublisher) PublishJSON(ctx context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	if ev, ok := body.(entity.NotificationEvent); ok {
		p.events = append(p.events, ev)
	}
	return nil
}
