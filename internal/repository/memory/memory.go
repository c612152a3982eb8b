// Package memory provides in-memory implementations of the repository
// interfaces. They back the service and handler tests; all three stores
// share one Store so cascade deletes behave like the real schema.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"vendlink/internal/models"
	"vendlink/internal/repository"
)

type Store struct {
	mu          sync.Mutex
	users       map[uint]models.User
	products    map[uint]models.Product
	votes       map[uint]models.Vote
	nextUser    uint
	nextProduct uint
	nextVote    uint
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uint]models.User),
		products: make(map[uint]models.Product),
		votes:    make(map[uint]models.Vote),
	}
}

func (s *Store) Users() repository.UserRepository       { return &userStore{s} }
func (s *Store) Products() repository.ProductRepository { return &productStore{s} }
func (s *Store) Votes() repository.VoteRepository       { return &voteStore{s} }

type userStore struct{ s *Store }

func (r *userStore) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.s.nextUser++
	user.ID = r.s.nextUser
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *userStore) GetByID(id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userStore) GetByEmail(email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userStore) List() ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *userStore) UpdateFlags(id uint, approved, admin bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Approved = approved
	u.Admin = admin
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return &u, nil
}

func (r *userStore) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	// Cascade: owned products, their votes, and the user's own votes.
	for pid, p := range r.s.products {
		if p.UserID == id {
			delete(r.s.products, pid)
			for vid, v := range r.s.votes {
				if v.ProductID == pid {
					delete(r.s.votes, vid)
				}
			}
		}
	}
	for vid, v := range r.s.votes {
		if v.UserID == id {
			pid := v.ProductID
			delete(r.s.votes, vid)
			r.s.recountLocked(pid)
		}
	}
	return nil
}

type productStore struct{ s *Store }

func (r *productStore) Create(product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextProduct++
	product.ID = r.s.nextProduct
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	if owner, ok := r.s.users[product.UserID]; ok {
		product.User = owner
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *productStore) GetByID(id uint) (*models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if owner, ok := r.s.users[p.UserID]; ok {
		p.User = owner
	}
	return &p, nil
}

func (r *productStore) List(limit, skip int, search string) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	products := make([]models.Product, 0, len(r.s.products))
	needle := strings.ToLower(search)
	for _, p := range r.s.products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if owner, ok := r.s.users[p.UserID]; ok {
			p.User = owner
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID > products[j].ID
		}
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	if skip > len(products) {
		skip = len(products)
	}
	products = products[skip:]
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products, nil
}

func (r *productStore) ListByOwner(ownerID uint) ([]models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var products []models.Product
	for _, p := range r.s.products {
		if p.UserID == ownerID {
			if owner, ok := r.s.users[p.UserID]; ok {
				p.User = owner
			}
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *productStore) Update(product *models.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.products[product.ID]
	if !ok {
		return repository.ErrNotFound
	}
	// Writable columns only; the stored VoteCount stays authoritative.
	stored.Name = product.Name
	stored.Price = product.Price
	stored.Description = product.Description
	stored.IsAvailable = product.IsAvailable
	stored.UpdatedAt = time.Now()
	if owner, ok := r.s.users[stored.UserID]; ok {
		stored.User = owner
	}
	r.s.products[product.ID] = stored
	*product = stored
	return nil
}

func (r *productStore) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.products, id)
	for vid, v := range r.s.votes {
		if v.ProductID == id {
			delete(r.s.votes, vid)
		}
	}
	return nil
}

type voteStore struct{ s *Store }

func (r *voteStore) Cast(userID, productID uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.votes {
		if v.UserID == userID && v.ProductID == productID {
			return 0, repository.ErrDuplicate
		}
	}
	r.s.nextVote++
	r.s.votes[r.s.nextVote] = models.Vote{
		ID:        r.s.nextVote,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	return r.s.recountLocked(productID), nil
}

func (r *voteStore) Retract(userID, productID uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for vid, v := range r.s.votes {
		if v.UserID == userID && v.ProductID == productID {
			delete(r.s.votes, vid)
			return r.s.recountLocked(productID), nil
		}
	}
	return 0, repository.ErrNotFound
}

func (r *voteStore) CountForProduct(productID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, v := range r.s.votes {
		if v.ProductID == productID {
			count++
		}
	}
	return count, nil
}

// recountLocked mirrors the transactional counter write-back of the gorm
// implementation. Caller must hold s.mu.
func (s *Store) recountLocked(productID uint) int {
	count := 0
	for _, v := range s.votes {
		if v.ProductID == productID {
			count++
		}
	}
	if p, ok := s.products[productID]; ok {
		p.VoteCount = count
		s.products[productID] = p
	}
	return count
}
