package http

import (
	"github.com/go-playground/validator/v10"
	"kerala-tours/catalog"
	"kerala-tours/common"
	"kerala-tours/common/constant"
	"kerala-tours/common/errs"
	"kerala-tours/common/otel"
	"kerala-tours/common/vars"
	"kerala-tours/model"
	"kerala-tours/pricing"
	"log/slog"
	"net/http"
	"strings"
)

type PackageHttp struct {
	Catalog  *catalog.Catalog
	Validate *validator.Validate
}

func RegisterPackageHttp(mux *http.ServeMux, packageCatalog *catalog.Catalog, validate *validator.Validate) *PackageHttp {
	in := &PackageHttp{Catalog: packageCatalog, Validate: validate}

	mux.HandleFunc("GET /api/packages", in.list)
	mux.HandleFunc("GET /api/packages/featured", in.featured)
	mux.HandleFunc("GET /api/packages/{id}", in.get)
	mux.HandleFunc("GET /api/packages/{id}/quote", in.quote)

	return in
}

func (in *PackageHttp) list(w http.ResponseWriter, r *http.Request) {
	req, err := in.parseListPackagesRequest(r)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "PackageHttp.list")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.DebugContext(ctx, "list packages receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	sortBy, err := catalog.ParseSortOption(req.SortBy)
	if err != nil {
		writeErrorResponse(w, errs.NewValidationError("SortBy", "oneof"))
		return
	}

	difficulties := make([]model.Difficulty, 0, len(req.Difficulties))
	for _, d := range req.Difficulties {
		difficulties = append(difficulties, model.Difficulty(d))
	}

	page := catalog.Search(in.Catalog.Packages(), catalog.Query{
		Category:     req.Category,
		Search:       req.Search,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		Destinations: req.Destinations,
		Difficulties: difficulties,
		SortBy:       sortBy,
		Page:         req.Page,
	})

	slog.DebugContext(ctx, "list packages success", slog.Any(constant.LogFieldResponse, page.TotalItems), traceIdAttr)

	writeJSONResponse(w, http.StatusOK, page)
}

func (in *PackageHttp) featured(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, in.Catalog.GetFeaturedPackages())
}

func (in *PackageHttp) get(w http.ResponseWriter, r *http.Request) {
	pkg, ok := in.Catalog.GetPackageById(r.PathValue("id"))
	if !ok {
		writeErrorResponse(w, errs.NewNotFoundError("Package not found"))
		return
	}

	writeJSONResponse(w, http.StatusOK, model.PackageDetailResponse{
		TourPackage:     pkg,
		DiscountPercent: pricing.DiscountPercent(pkg.OriginalPrice, pkg.Price),
		BookingsCount:   vars.GetBookingCount(pkg.Id),
	})
}

func (in *PackageHttp) quote(w http.ResponseWriter, r *http.Request) {
	pkg, ok := in.Catalog.GetPackageById(r.PathValue("id"))
	if !ok {
		writeErrorResponse(w, errs.NewNotFoundError("Package not found"))
		return
	}

	query := r.URL.Query()

	tierIndex, err := queryInt(query, "tier", "TierIndex", 0)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	groupSize, err := queryInt(query, "group_size", "GroupSize", 1)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	req := model.QuoteRequest{TierIndex: tierIndex, GroupSize: groupSize}
	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, pricing.Calculate(pkg, req.TierIndex, req.GroupSize))
}

func (in *PackageHttp) parseListPackagesRequest(r *http.Request) (model.ListPackagesRequest, error) {
	query := r.URL.Query()

	req := model.ListPackagesRequest{
		Category:     strings.TrimSpace(query.Get("category")),
		Search:       query.Get("q"),
		Destinations: queryList(query, "destinations"),
		Difficulties: queryList(query, "difficulty"),
		SortBy:       strings.TrimSpace(query.Get("sort")),
	}

	var err error
	if req.MinPrice, err = queryInt(query, "min_price", "MinPrice", 0); err != nil {
		return req, err
	}
	if req.MaxPrice, err = queryInt(query, "max_price", "MaxPrice", 0); err != nil {
		return req, err
	}
	if req.Page, err = queryInt(query, "page", "Page", 1); err != nil {
		return req, err
	}

	if err := in.Validate.Struct(req); err != nil {
		return req, err
	}

	return req, nil
}
