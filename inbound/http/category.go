package http

import (
	"kerala-tours/catalog"
	"net/http"
)

type CategoryHttp struct {
	Catalog *catalog.Catalog
}

func RegisterCategoryHttp(mux *http.ServeMux, packageCatalog *catalog.Catalog) *CategoryHttp {
	in := &CategoryHttp{Catalog: packageCatalog}

	mux.HandleFunc("GET /api/categories", in.list)
	mux.HandleFunc("GET /api/categories/{category}/packages", in.packages)

	return in
}

func (in *CategoryHttp) list(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, in.Catalog.GetAllCategories())
}

func (in *CategoryHttp) packages(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, in.Catalog.GetPackagesByCategory(r.PathValue("category")))
}
