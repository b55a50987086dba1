package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/internal/service/marketplace"
	"github.com/heartmarshall/centralring-backend/internal/transport/dataloader"
)

type staticTypes []domain.EntityType

func (s staticTypes) GetByIDs(_ context.Context, ids []string) ([]domain.EntityType, error) {
	var out []domain.EntityType
	for _, t := range s {
		for _, id := range ids {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func TestParseMarketplaceQuery(t *testing.T) {
	t.Parallel()

	values, err := url.ParseQuery("typeId=car&f[model]=civ&f[color][]=red&f[color][]=blue&f[trim][]=&page=2")
	require.NoError(t, err)

	q, err := parseMarketplaceQuery(values)
	require.NoError(t, err)

	assert.Equal(t, "car", q.TypeID)
	assert.Equal(t, []domain.AttributeFilter{
		{Name: "color", AnyOf: []string{"red", "blue"}},
		{Name: "model", Text: "civ"},
		{Name: "trim", AnyOf: []string{}},
	}, q.Filters)
	assert.False(t, q.Filters[2].IsActive())
}

func TestParseMarketplaceQuery_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"f[]=x", "f[color=x", "f[a][b]=x", "f[color][]x=y"} {
		values, err := url.ParseQuery(raw)
		require.NoError(t, err)

		_, err = parseMarketplaceQuery(values)
		assert.ErrorIs(t, err, domain.ErrValidation, raw)
	}
}

func TestListPublicEntities_AttachesEntityType(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	car := sampleEntity(owner).PublicView()
	orphan := sampleEntity(owner).PublicView()
	orphan.ID, orphan.TypeID = "e2", "boat"

	svc := &marketplaceServiceMock{
		ListPublicEntitiesFunc: func(context.Context, domain.MarketplaceQuery) ([]domain.Entity, error) {
			return []domain.Entity{car, orphan}, nil
		},
	}
	repos := &dataloader.Repos{EntityType: staticTypes{{ID: "car", Name: "Car"}}}
	handler := dataloader.Middleware(repos)(http.HandlerFunc(NewMarketplaceHandler(svc, discardLogger()).ListPublicEntities))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest(http.MethodGet, "/public/entities?typeId=car&f[color][]=red", ""))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	q := svc.ListPublicEntitiesCalls()[0].Q
	assert.Equal(t, "car", q.TypeID)
	assert.Equal(t, []string{"red"}, q.Filters[0].AnyOf)

	rows := decodeList(t, rec)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]any{"id": "car", "name": "Car"}, rows[0]["entityType"])
	assert.Nil(t, rows[1]["entityType"])
	assert.NotContains(t, rows[0], "missingInfoAttributes")
}

func TestFacets(t *testing.T) {
	t.Parallel()

	svc := &marketplaceServiceMock{
		FacetsFunc: func(context.Context, string) ([]marketplace.Domain, error) {
			return []marketplace.Domain{
				{Name: "color", Type: domain.AttributeTypeString, Values: []string{"red", "blue"}, Widget: marketplace.WidgetMultiSelect},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	NewMarketplaceHandler(svc, discardLogger()).Facets(rec, newRequest(http.MethodGet, "/public/entities/facets?typeId=car", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"typeId":"car","domains":[{"name":"color","type":"string","values":["red","blue"],"widget":"multiselect"}]}`, rec.Body.String())
	assert.Equal(t, "car", svc.FacetsCalls()[0].TypeID)
}
