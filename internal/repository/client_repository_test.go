package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightechllc/authcore/internal/models"
)

func TestFindByClientID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClientRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"client_id", "client_secret", "name", "client_type", "grant_types", "allowed_scopes", "active", "created_at", "updated_at"}).
		AddRow("web-app", "s3cret", "Web App", string(models.ClientTypeConfidential), "password refresh_token", "read write", true, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT client_id, client_secret, name, client_type, grant_types, allowed_scopes, active, created_at, updated_at FROM oauth_clients WHERE client_id = $1 LIMIT 1")).
		WithArgs("web-app").
		WillReturnRows(rows)

	client, err := repo.FindByClientID(context.Background(), "web-app")
	require.NoError(t, err)
	assert.Equal(t, "web-app", client.ClientID)
	assert.True(t, client.IsConfidential())
	assert.True(t, client.AllowsGrantType(models.GrantTypePassword))
	assert.True(t, client.HasScope("write"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByClientIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClientRepository(db)

	mock.ExpectQuery("SELECT .+ FROM oauth_clients").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByClientID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClient(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClientRepository(db)

	mock.ExpectExec("INSERT INTO oauth_clients").WillReturnResult(sqlmock.NewResult(1, 1))

	client := &models.Client{
		ClientID:      "web-app",
		ClientSecret:  "s3cret",
		Name:          "Web App",
		Type:          models.ClientTypeConfidential,
		GrantTypes:    "password refresh_token",
		AllowedScopes: "read write",
		Active:        true,
	}
	err := repo.Create(context.Background(), client)
	require.NoError(t, err)
	assert.False(t, client.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
