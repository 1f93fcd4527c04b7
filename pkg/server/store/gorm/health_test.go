package gorm

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCheckConnectivity(t *testing.T) {
	t.Run("ok when the database answers", func(t *testing.T) {
		mockDB := NewMockDB(t)
		mockDB.Mock.ExpectExec(`SELECT 1`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, NewHealthStore(mockDB.GormDB).CheckConnectivity())
	})

	t.Run("propagates the failure", func(t *testing.T) {
		mockDB := NewMockDB(t)
		mockDB.Mock.ExpectExec(`SELECT 1`).WillReturnError(errors.New("connection refused"))

		assert.Error(t, NewHealthStore(mockDB.GormDB).CheckConnectivity())
	})
}
