package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// DefaultLimit is the page size used when a query does not set one.
const DefaultLimit = 10

// Query is the shared filter for board, list and label listings. Nil
// pointers and empty strings mean "no filter".
type Query struct {
	ID       *uint
	BoardID  *uint
	Search   string
	Page     int
	Limit    int
	Filtered bool // lookup mode: no pagination
}

// Offset returns the number of rows to skip in browse mode.
func (q Query) Offset() int {
	if q.Filtered || q.Page <= 0 {
		return 0
	}
	return q.Page * q.PageSize()
}

// PageSize returns the effective limit in browse mode.
func (q Query) PageSize() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}

// scope builds the where/order/paging clauses for q. searchColumn is matched
// case-insensitively against q.Search.
func (q Query) scope(searchColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.ID != nil {
			db = db.Where("id = ?", *q.ID)
		}
		if q.BoardID != nil {
			db = db.Where("board_id = ?", *q.BoardID)
		}
		if q.Search != "" {
			db = db.Where("LOWER("+searchColumn+") LIKE ?", "%"+strings.ToLower(q.Search)+"%")
		}
		db = db.Order("updated_at DESC").Order("id DESC")
		if q.Filtered {
			return db
		}
		return db.Offset(q.Offset()).Limit(q.PageSize())
	}
}

// Repositories groups every repository so a service can run several of them
// inside one transaction.
type Repositories struct {
	Users   UserRepository
	Boards  BoardRepository
	Members MemberRepository
	Likes   LikeRepository
	Lists   ListRepository
	Labels  LabelRepository

	db *gorm.DB
}

// New builds GORM-backed repositories sharing db.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(db),
		Boards:  NewBoardRepository(db),
		Members: NewMemberRepository(db),
		Likes:   NewLikeRepository(db),
		Lists:   NewListRepository(db),
		Labels:  NewLabelRepository(db),
		db:      db,
	}
}

// WithTransaction executes fn within a database transaction; every
// repository handed to fn runs on the transaction. Repositories assembled by
// hand (without a database) run fn directly.
func (r *Repositories) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx *Repositories) error) error {
	if r.db == nil {
		return fn(ctx, r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, New(tx))
	})
}

// updated turns an UPDATE result into gorm.ErrRecordNotFound when no row has
// the id. RowsAffected alone is not enough: MySQL reports changed rows, so a
// write of identical values affects zero rows.
func updated(db *gorm.DB, res *gorm.DB, table interface{}, id uint) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var n int64
	if err := db.Model(table).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
