package postgres

import (
	"database/sql"

	"estatedesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PropertyRepository
	repository.MasterDataRepository
	repository.ContentRepository
	repository.InquiryRepository
	repository.UploadRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		PropertyRepository:   NewPropertyRepository(db),
		MasterDataRepository: NewMasterDataRepository(db),
		ContentRepository:    NewContentRepository(db),
		InquiryRepository:    NewInquiryRepository(db),
		UploadRepository:     NewUploadRepository(db),
	}
}
