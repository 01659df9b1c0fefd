package handling

import (
	"homifyhub_server/structs"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*structs.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &structs.ProductListOptions{}, nil
	}

	opts := &structs.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	opts.CategorySlug = query.Get("category")
	opts.TagSlug = query.Get("tag")
	opts.SearchTerm = query.Get("search")

	if minPrice := query.Get("min_price"); minPrice != "" {
		val, err := strconv.ParseInt(minPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MinPrice = &val
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		val, err := strconv.ParseInt(maxPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MaxPrice = &val
	}

	if customizable := query.Get("customizable"); customizable != "" {
		if valBool, err = strconv.ParseBool(customizable); err != nil {
			return nil, err
		}
		opts.IsCustomizable = &valBool
	}

	if createdAfter := query.Get("created_after"); createdAfter != "" {
		t, err := time.Parse(time.RFC3339, createdAfter)
		if err != nil {
			return nil, err
		}
		opts.CreatedAfter = &t
	}

	if createdBefore := query.Get("created_before"); createdBefore != "" {
		t, err := time.Parse(time.RFC3339, createdBefore)
		if err != nil {
			return nil, err
		}
		opts.CreatedBefore = &t
	}

	opts.SortBy = query.Get("sort_by")
	opts.SortDirection = query.Get("sort_direction")

	if includeImages := query.Get("include_images"); includeImages != "" {
		if valBool, err = strconv.ParseBool(includeImages); err != nil {
			return nil, err
		}
		opts.IncludeImages = valBool
	}

	if includeVariants := query.Get("include_variants"); includeVariants != "" {
		if valBool, err = strconv.ParseBool(includeVariants); err != nil {
			return nil, err
		}
		opts.IncludeVariants = valBool
	}

	return opts, nil
}

// ParseOrderListOptions parses HTTP query parameters into OrderListOptions
func ParseOrderListOptions(r *http.Request) (*structs.OrderListOptions, error) {
	query := r.URL.Query()

	opts := &structs.OrderListOptions{}
	var err error
	var valInt int

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	opts.Status = query.Get("status")

	if userId := query.Get("user_id"); userId != "" {
		id, err := uuid.Parse(userId)
		if err != nil {
			return nil, err
		}
		opts.UserId = &id
	}

	if createdAfter := query.Get("created_after"); createdAfter != "" {
		t, err := time.Parse(time.RFC3339, createdAfter)
		if err != nil {
			return nil, err
		}
		opts.CreatedAfter = &t
	}

	if createdBefore := query.Get("created_before"); createdBefore != "" {
		t, err := time.Parse(time.RFC3339, createdBefore)
		if err != nil {
			return nil, err
		}
		opts.CreatedBefore = &t
	}

	return opts, nil
}

// ParseSalesReportOptions parses the report period bounds.
func ParseSalesReportOptions(r *http.Request) (*structs.SalesReportOptions, error) {
	query := r.URL.Query()

	opts := &structs.SalesReportOptions{}

	if from := query.Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return nil, err
		}
		opts.From = &t
	}

	if to := query.Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return nil, err
		}
		opts.To = &t
	}

	return opts, nil
}
