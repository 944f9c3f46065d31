package storage

import (
	"github.com/jmoiron/sqlx"

	"github.com/somesh123-ctrl/Job-Portal-Backend/shared/postgresql"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}
