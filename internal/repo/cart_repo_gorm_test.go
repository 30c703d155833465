package repo

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-commerce-api/internal/domain"
)

func cartColumns() []string {
	return []string{"id", "user_id", "product_id", "quantity", "name", "created_at", "updated_at"}
}

func TestCartRepo_AddOrMerge_UpsertsAndRereads(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewCartRepo(db)

	now := time.Now()
	mock.ExpectExec("INSERT INTO `cart_items` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT \\* FROM `cart_items` WHERE user_id = \\? AND product_id = \\?").
		WithArgs("u-1", "p-1", 1).
		WillReturnRows(sqlmock.NewRows(cartColumns()).
			AddRow("c-1", "u-1", "p-1", 5, "Keyboard", now, now))

	out, err := r.AddOrMerge(&domain.CartItem{ID: "c-new", UserID: "u-1", ProductID: "p-1", Quantity: 3, Name: "Keyboard"})
	require.NoError(t, err)
	assert.Equal(t, "c-1", out.ID) // merged row keeps its original id
	assert.Equal(t, 5, out.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepo_DeleteByUser(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewCartRepo(db)

	mock.ExpectExec("DELETE FROM `cart_items` WHERE user_id = \\?").
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, r.DeleteByUser("u-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepo_DeleteByID_MissingIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewCartRepo(db)

	mock.ExpectExec("DELETE FROM `cart_items` WHERE id = \\?").
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, r.DeleteByID("gone"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
