package server

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"droscher.com/BreweryStats/pkg/model"
)

const regionQueryParam = "region"

func (b *BreweryServer) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexPage)
}

func (b *BreweryServer) All(w http.ResponseWriter, r *http.Request) {
	breweries, err := b.repository.ListAll(r.Context())
	if err != nil {
		b.writeError(w, r, err)

		return
	}

	b.writeJSON(w, r, http.StatusOK, breweries)
}

func (b *BreweryServer) CountByRegion(w http.ResponseWriter, r *http.Request) {
	rows, err := b.repository.CountByRegion(r.Context())
	if err != nil {
		b.writeError(w, r, err)

		return
	}

	b.writeJSON(w, r, http.StatusOK, rows)
}

func (b *BreweryServer) CountBy(w http.ResponseWriter, r *http.Request) {
	rows, err := b.repository.CountBy(r.Context(), pathParam(r, "column"), pathParam(r, "column2"), regionFilter(r))
	if err != nil {
		b.writeError(w, r, err)

		return
	}

	b.writeJSON(w, r, http.StatusOK, rows)
}

// Values serves the distinct values of a column, or those values grouped by
// a second column when one is given.
func (b *BreweryServer) Values(w http.ResponseWriter, r *http.Request) {
	column := pathParam(r, "column")

	groupBy := pathParam(r, "groupBy")
	if groupBy == "" {
		values, err := b.repository.DistinctValues(r.Context(), column, regionFilter(r))
		if err != nil {
			b.writeError(w, r, err)

			return
		}

		b.writeJSON(w, r, http.StatusOK, values)

		return
	}

	grouped, err := b.repository.ValuesGrouped(r.Context(), column, groupBy, regionFilter(r))
	if err != nil {
		b.writeError(w, r, err)

		return
	}

	b.writeJSON(w, r, http.StatusOK, grouped)
}

func (b *BreweryServer) Where(w http.ResponseWriter, r *http.Request) {
	rows, err := b.repository.WhereRegion(r.Context(), pathParam(r, "region"))
	if err != nil {
		b.writeError(w, r, err)

		return
	}

	b.writeJSON(w, r, http.StatusOK, rows)
}

func regionFilter(r *http.Request) model.RegionFilter {
	return model.NewRegionFilter(r.URL.Query().Get(regionQueryParam))
}

// pathParam returns the decoded value of a route parameter. chi matches on
// the raw path when the request has one, leaving parameters escaped.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}

	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}
