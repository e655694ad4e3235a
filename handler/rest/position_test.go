package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tenor/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
)

type fakeDueStore struct {
	dues []*core.Due
}

func (s *fakeDueStore) Save(ctx context.Context, tx *db.DB, due *core.Due) error {
	s.dues = append(s.dues, due)
	return nil
}

func (s *fakeDueStore) Find(ctx context.Context, maturity int64, owner string, index int64) (*core.Due, error) {
	for _, due := range s.dues {
		if due.Maturity == maturity && due.Owner == owner && due.DueIndex == index {
			return due, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeDueStore) ListByOwner(ctx context.Context, maturity int64, owner string) ([]*core.Due, error) {
	var rows []*core.Due
	for _, due := range s.dues {
		if due.Maturity == maturity && due.Owner == owner {
			rows = append(rows, due)
		}
	}
	return rows, nil
}

func (s *fakeDueStore) CountByOwner(ctx context.Context, maturity int64, owner string) (int64, error) {
	rows, _ := s.ListByOwner(ctx, maturity, owner)
	return int64(len(rows)), nil
}

func (s *fakeDueStore) Update(ctx context.Context, tx *db.DB, due *core.Due) error {
	return nil
}

func TestDueByIndex(t *testing.T) {
	dues := &fakeDueStore{dues: []*core.Due{
		{Maturity: 1700000000, Owner: "alice", DueIndex: 0, Debt: core.NewUint(101)},
		{Maturity: 1700000000, Owner: "alice", DueIndex: 1, Debt: core.NewUint(55)},
	}}

	router := Handle(&core.Config{}, nil, nil, nil, dues, nil, nil)

	r := httptest.NewRequest("GET", "/pools/1700000000/dues/1?owner=alice", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var due core.Due
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &due))
	require.Equal(t, int64(1), due.DueIndex)
	require.Equal(t, uint64(55), due.Debt.Uint64())
}

func TestDueByIndexNotFound(t *testing.T) {
	dues := &fakeDueStore{}

	router := Handle(&core.Config{}, nil, nil, nil, dues, nil, nil)

	r := httptest.NewRequest("GET", "/pools/1700000000/dues/0?owner=alice", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusNotFound, w.Code)
}
