package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// sqlite ignores row locks, so the FOR UPDATE clause is checked against the
// mysql dialect instead.
func TestGetByIDForUpdate_MySQLLocksRow(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	added := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
		AddRow(7, "ibm", 400.0, false, added, nil)
	mock.ExpectQuery("SELECT \\* FROM `invoices` WHERE id = \\?.* FOR UPDATE").WillReturnRows(rows)

	inv, err := NewInvoiceRepository(db).GetByIDForUpdate(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if inv.ID != 7 || inv.CompCode != "ibm" || inv.Amt != 400 || inv.PaidDate != nil {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
