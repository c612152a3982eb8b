package services

import (
	"vendlink/internal/apperr"
	"vendlink/internal/models"
	"vendlink/internal/repository"
)

// VoteService implements the vote toggle. Redundant calls are reported as
// errors, never swallowed: a second up-vote is a conflict, a second
// down-vote has nothing to delete.
type VoteService struct {
	votes    repository.VoteRepository
	products repository.ProductRepository
}

func NewVoteService(votes repository.VoteRepository, products repository.ProductRepository) *VoteService {
	return &VoteService{votes: votes, products: products}
}

// Vote casts (up=true) or retracts (up=false) the caller's vote on a product
// and returns the resulting vote count.
func (s *VoteService) Vote(current *models.User, productID uint, up bool) (int, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		if err == repository.ErrNotFound {
			return 0, apperr.NotFound("product with id %d doesn't exist", productID)
		}
		return 0, err
	}

	if up {
		count, err := s.votes.Cast(current.ID, productID)
		if err != nil {
			if err == repository.ErrDuplicate {
				return 0, apperr.Conflict("user %d has already voted on product %d", current.ID, productID)
			}
			return 0, err
		}
		return count, nil
	}

	count, err := s.votes.Retract(current.ID, productID)
	if err != nil {
		if err == repository.ErrNotFound {
			return 0, apperr.NotFound("vote does not exist")
		}
		return 0, err
	}
	return count, nil
}
