package repository

import (
	"vendlink/internal/models"

	"gorm.io/gorm"
)

// VoteRepository is the vote ledger. Cast and Retract run the vote write and
// the product counter write-back in a single transaction, so the stored
// vote_count always equals the number of vote rows.
type VoteRepository interface {
	// Cast records an up-vote and returns the new vote count.
	// Returns ErrDuplicate when the (user, product) pair already voted.
	Cast(userID, productID uint) (int, error)
	// Retract removes an existing vote and returns the new vote count.
	// Returns ErrNotFound when no vote exists for the pair.
	Retract(userID, productID uint) (int, error)
	CountForProduct(productID uint) (int64, error)
}

type gormVoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &gormVoteRepository{db: db}
}

func (r *gormVoteRepository) Cast(userID, productID uint) (int, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		vote := models.Vote{UserID: userID, ProductID: productID}
		// The unique index arbitrates concurrent casts; the duplicate-key
		// violation comes back even when two requests race past a lookup.
		if err := tx.Create(&vote).Error; err != nil {
			return translate(err)
		}
		return recount(tx, productID, &count)
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *gormVoteRepository) Retract(userID, productID uint) (int, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.Vote{})
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return recount(tx, productID, &count)
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *gormVoteRepository) CountForProduct(productID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Vote{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

// recount recomputes the vote count from the ledger and writes it back to
// the product row, inside the caller's transaction.
func recount(tx *gorm.DB, productID uint, count *int64) error {
	if err := tx.Model(&models.Vote{}).
		Where("product_id = ?", productID).
		Count(count).Error; err != nil {
		return translate(err)
	}
	return translate(tx.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("vote_count", *count).Error)
}
