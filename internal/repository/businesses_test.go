package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eagleinfoservice/directory-api/internal/entity"
)

func newMockRepository(t *testing.T) (pgxmock.PgxPoolIface, *PGXBusinessesRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &PGXBusinessesRepository{pool: mock}
}

// businessRows renders entities as mock result rows through the same scan
// target list the repository uses, so row layout cannot drift from the code
// under test.
func businessRows(t *testing.T, items ...entity.Business) *pgxmock.Rows {
	t.Helper()
	rows := pgxmock.NewRows(businessColumns)
	for i := range items {
		dests := businessScanDests(&items[i])
		values := make([]any, len(dests))
		for j, dest := range dests {
			switch v := dest.(type) {
			case *int64:
				values[j] = *v
			case **string:
				values[j] = *v
			case **int:
				values[j] = *v
			case **float64:
				values[j] = *v
			case **bool:
				values[j] = *v
			case **time.Time:
				values[j] = *v
			default:
				t.Fatalf("unhandled scan destination type %T at column %s", dest, businessColumns[j])
			}
		}
		rows.AddRow(values...)
	}
	return rows
}

func strPtr(s string) *string { return &s }

func TestProjectionAlignment(t *testing.T) {
	var b entity.Business
	assert.Len(t, businessScanDests(&b), len(businessColumns))

	statements := PreparedStatements()
	assert.Len(t, statements, 8)
	seen := make(map[string]struct{}, len(statements))
	for _, sql := range statements {
		assert.Contains(t, sql, baseSelectSQL)
		if _, dup := seen[sql]; dup {
			t.Fatalf("duplicate statement in catalog: %s", sql)
		}
		seen[sql] = struct{}{}
	}
}

func TestFindByDomain(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(findByDomainSQL).
		WithArgs("%//example.com%", "%example.com%").
		WillReturnRows(businessRows(t,
			entity.Business{ID: 1, Name: strPtr("Example Inc"), Site: strPtr("https://example.com")},
			entity.Business{ID: 2, Name: strPtr("Example Shop"), Site: strPtr("http://shop.example.com")},
		))

	businesses, err := repo.FindByDomain(context.Background(), "example.com")
	require.NoError(t, err)
	require.Len(t, businesses, 2)
	assert.Equal(t, int64(1), businesses[0].ID)
	assert.Equal(t, "Example Inc", *businesses[0].Name)
	assert.Nil(t, businesses[0].Email1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByDomainQueryError(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(findByDomainSQL).
		WithArgs("%//example.com%", "%example.com%").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByDomain(context.Background(), "example.com")
	assert.ErrorContains(t, err, "query businesses by domain")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLinkedIn(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(findByLinkedInSQL).
		WithArgs("%linkedin.com/company/example%").
		WillReturnRows(businessRows(t, entity.Business{ID: 7, LinkedIn: strPtr("https://linkedin.com/company/example")}))

	businesses, err := repo.FindByLinkedIn(context.Background(), "linkedin.com/company/example")
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, int64(7), businesses[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPlaceID(t *testing.T) {
	mock, repo := newMockRepository(t)

	record := entity.Business{ID: 42, PlaceID: strPtr("ChIJN1t_tDeuEmsRUsoyG83frY4"), Name: strPtr("Sydney Opera House")}
	mock.ExpectQuery(findByPlaceIDSQL).
		WithArgs("ChIJN1t_tDeuEmsRUsoyG83frY4").
		WillReturnRows(businessRows(t, record))

	business, err := repo.FindByPlaceID(context.Background(), "ChIJN1t_tDeuEmsRUsoyG83frY4")
	require.NoError(t, err)
	require.NotNil(t, business)
	assert.Equal(t, int64(42), business.ID)
	assert.Equal(t, "ChIJN1t_tDeuEmsRUsoyG83frY4", *business.PlaceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPlaceIDNotFound(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(findByPlaceIDSQL).
		WithArgs("ChIJunknown").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByPlaceID(context.Background(), "ChIJunknown")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPlaceIDStorageError(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(findByPlaceIDSQL).
		WithArgs("ChIJN1t_tDeuEmsRUsoyG83frY4").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByPlaceID(context.Background(), "ChIJN1t_tDeuEmsRUsoyG83frY4")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBusinessNotFound)
	assert.ErrorContains(t, err, "query business by place id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmail(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(findByEmailSQL).
		WithArgs("owner@example.com").
		WillReturnRows(businessRows(t, entity.Business{ID: 3, Email1: strPtr("owner@example.com")}))

	businesses, err := repo.FindByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, "owner@example.com", *businesses[0].Email1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailsSingleRoundTrip(t *testing.T) {
	mock, repo := newMockRepository(t)

	emails := []string{"a@example.com", "b@example.com"}
	mock.ExpectQuery(findByEmailsSQL).
		WithArgs(emails).
		WillReturnRows(businessRows(t,
			entity.Business{ID: 1, Email1: strPtr("a@example.com")},
			entity.Business{ID: 2, Email2: strPtr("b@example.com")},
		))

	businesses, err := repo.FindByEmails(context.Background(), emails)
	require.NoError(t, err)
	assert.Len(t, businesses, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByGoogleID(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(findByGoogleIDSQL).
		WithArgs("0x89c25a31e44f1cad:0x2528b9b2769bca6f").
		WillReturnRows(businessRows(t, entity.Business{ID: 9, GoogleID: strPtr("0x89c25a31e44f1cad:0x2528b9b2769bca6f")}))

	businesses, err := repo.FindByGoogleID(context.Background(), "0x89c25a31e44f1cad:0x2528b9b2769bca6f")
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPhone(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(findByPhoneSQL).
		WithArgs("+14155552671").
		WillReturnRows(businessRows(t, entity.Business{ID: 5, Phone: strPtr("+14155552671")}))

	businesses, err := repo.FindByPhone(context.Background(), "+14155552671")
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEnrichedContacts(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(enrichedSQL).
		WithArgs(25, 50).
		WillReturnRows(businessRows(t, entity.Business{ID: 51, Email1: strPtr("contact@example.com")}))

	businesses, err := repo.ListEnrichedContacts(context.Background(), 25, 50)
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanBusinessesTypeMismatch(t *testing.T) {
	mock, repo := newMockRepository(t)

	corrupt := make([]any, len(businessColumns))
	corrupt[0] = "bogus"
	mock.ExpectQuery(findByEmailSQL).
		WithArgs("owner@example.com").
		WillReturnRows(pgxmock.NewRows(businessColumns).AddRow(corrupt...))

	_, err := repo.FindByEmail(context.Background(), "owner@example.com")
	assert.ErrorContains(t, err, "scan business")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema(t *testing.T) {
	mock, repo := newMockRepository(t)

	rows := pgxmock.NewRows([]string{"column_name"})
	for _, col := range businessColumns {
		rows.AddRow(col)
	}
	mock.ExpectQuery(schemaColumnsSQL).WillReturnRows(rows)

	assert.NoError(t, repo.CheckSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchemaMissingColumn(t *testing.T) {
	mock, repo := newMockRepository(t)

	rows := pgxmock.NewRows([]string{"column_name"})
	for _, col := range businessColumns {
		if col == "kgmid" || col == "import_date" {
			continue
		}
		rows.AddRow(col)
	}
	mock.ExpectQuery(schemaColumnsSQL).WillReturnRows(rows)

	err := repo.CheckSchema(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "kgmid")
	assert.ErrorContains(t, err, "import_date")
	assert.NoError(t, mock.ExpectationsWereMet())
}
