package repository

import (
	"regexp"
	"testing"

	"coal-erp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestCustomerRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "customers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	customer := &models.Customer{
		Name:          "Tata Power",
		ContactPerson: "Suresh Rao",
		Phone:         "9876543210",
		CreditLimit:   decimal.NewFromInt(500000),
		Status:        models.PartnerActive,
	}
	require.NoError(t, repo.Create(customer))
	assert.Equal(t, uint(1), customer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepositoryGetAllOrdering(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(2, "JSW Energy").
		AddRow(1, "Tata Power")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers" ORDER BY id DESC`)).
		WillReturnRows(rows)

	customers, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "JSW Energy", customers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepositoryUpdateReportsRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "customers" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.Update(42, map[string]interface{}{"name": "Tata Power"})
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "customers" WHERE "customers"."id" = `)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
