package catalog

type CategoryItem struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Type string `json:"type" validate:"required,min=2,max=50"`
}

type CreateCategoriesRequest struct {
	UserID     string         `json:"-"`
	Categories []CategoryItem `json:"categories" validate:"required,min=1,max=50,dive"`
}

type IncomeSourceItem struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreateIncomeSourcesRequest struct {
	UserID        string             `json:"-"`
	IncomeSources []IncomeSourceItem `json:"income_sources" validate:"required,min=1,max=50,dive"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type IncomeSourceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type IncomeSourceListResponse struct {
	IncomeSources []IncomeSourceResponse `json:"income_sources"`
}
